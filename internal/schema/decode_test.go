package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/schema"
)

func TestDecodeNodeDispatchesOnNodeType(t *testing.T) {
	raw := []byte(`{
		"id": 5,
		"nodeType": "Identifier",
		"src": "10:3:0",
		"name": "foo",
		"referencedDeclaration": 4,
		"typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
	}`)

	n, err := schema.DecodeNode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Identifier", n.Kind())
	assert.Equal(t, schema.Src{Offset: 10, Length: 3, FileID: 0}, n.SrcRange())

	id, ok := n.(*schema.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foo", id.Name)
	assert.EqualValues(t, 4, id.ReferencedDeclaration)
}

func TestDecodeNodeUnknownNodeTypeFails(t *testing.T) {
	raw := []byte(`{"id": 1, "nodeType": "SomeFutureNodeKind", "src": "0:1:0"}`)
	_, err := schema.DecodeNode(raw)
	assert.Error(t, err)
}

func TestDecodeNodeRejectsUnknownFields(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"nodeType": "Break",
		"src": "0:1:0",
		"somethingTheSchemaDoesNotKnow": true
	}`)
	_, err := schema.DecodeNode(raw)
	assert.Error(t, err)
}

func TestSrcRoundTrip(t *testing.T) {
	var s schema.Src
	require.NoError(t, s.UnmarshalJSON([]byte(`"12:34:2"`)))
	assert.Equal(t, "12:34:2", s.String())
}

func TestDocumentationAcceptsStringOrStruct(t *testing.T) {
	var d schema.Documentation
	require.NoError(t, d.UnmarshalJSON([]byte(`"a natspec comment"`)))
	assert.Equal(t, "a natspec comment", d.Text)

	var d2 schema.Documentation
	require.NoError(t, d2.UnmarshalJSON([]byte(`{"id":1,"nodeType":"StructuredDocumentation","src":"0:1:0","text":"structured"}`)))
	assert.Equal(t, "structured", d2.Text)
}
