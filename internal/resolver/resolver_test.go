package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/resolver"
)

func TestBindIdentityReportsPreviousBinding(t *testing.T) {
	r := resolver.New()
	key := resolver.Key{File: "A.sol", TraversalIndex: 3}

	_, existed := r.BindIdentity(key, resolver.NodeRef{File: "A.sol", ID: 10})
	assert.False(t, existed)

	prev, existed := r.BindIdentity(key, resolver.NodeRef{File: "A.sol", ID: 11})
	require.True(t, existed)
	assert.Equal(t, int64(10), prev.ID)
}

func TestAddReferenceAndEvictFileDetachesBackref(t *testing.T) {
	r := resolver.New()
	decl := resolver.NodeRef{File: "Lib.sol", ID: 1}
	referrer := resolver.NodeRef{File: "Main.sol", ID: 2}

	r.AddReference(decl, referrer)
	assert.Equal(t, []resolver.NodeRef{referrer}, r.References(decl))

	r.EvictFile("Main.sol")
	assert.Empty(t, r.References(decl))
}

func TestEvictFileDoesNotTouchOtherFilesReferences(t *testing.T) {
	r := resolver.New()
	decl := resolver.NodeRef{File: "Lib.sol", ID: 1}
	a := resolver.NodeRef{File: "A.sol", ID: 2}
	b := resolver.NodeRef{File: "B.sol", ID: 3}

	r.AddReference(decl, a)
	r.AddReference(decl, b)
	r.EvictFile("A.sol")

	refs := r.References(decl)
	require.Len(t, refs, 1)
	assert.Equal(t, b, refs[0])
}

func TestPostProcessQueueRunsInPriorityOrder(t *testing.T) {
	q := resolver.NewPostProcessQueue()
	var order []string

	q.Register(resolver.PriorityUsedEvents, func() error {
		order = append(order, "used-events")
		return nil
	})
	q.Register(resolver.PriorityIdentifiers, func() error {
		order = append(order, "identifiers")
		return nil
	})
	q.Register(resolver.PriorityStructural, func() error {
		order = append(order, "structural")
		return nil
	})

	require.NoError(t, q.Run())
	assert.Equal(t, []string{"identifiers", "structural", "used-events"}, order)
}

func TestLookupGlobalResolvesDottedPaths(t *testing.T) {
	g, ok := resolver.LookupGlobal("msg.sender")
	require.True(t, ok)
	assert.Equal(t, resolver.GlobalMsgSender, g)

	_, ok = resolver.LookupGlobal("notaglobal")
	assert.False(t, ok)
}

func TestDriftKindTolerated(t *testing.T) {
	assert.True(t, resolver.DriftNone.Tolerated())
	assert.True(t, resolver.DriftDocumentation.Tolerated())
	assert.True(t, resolver.DriftTypeNameVsPath.Tolerated())
	assert.False(t, resolver.DriftMismatch.Tolerated())
}

