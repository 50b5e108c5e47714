package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/visit"
)

const visitAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0",
  "absolutePath": "A.sol", "license": "MIT", "exportedSymbols": {},
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:1:0",
      "name": "A", "contractKind": "contract", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [10], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": true,
      "nodes": [
        {
          "id": 20, "nodeType": "VariableDeclaration", "src": "0:1:0",
          "name": "x", "constant": false, "stateVariable": true, "indexed": false,
          "mutability": "mutable", "visibility": "public", "storageLocation": "default",
          "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
        }
      ]
    }
  ]
}`

func TestWalkVisitsEveryDeclaration(t *testing.T) {
	b := ir.NewBuilder(resolver.New(), ir.NewRegistry(), "cu", "A.sol", []byte("x"))
	su, err := b.BuildSourceUnit([]byte(visitAST))
	require.NoError(t, err)

	var names []string
	v := declVisitor{fn: func(d *ir.Declaration) { names = append(names, d.Name) }}
	for _, n := range su.Nodes {
		visit.Walk(v, n)
	}
	assert.Equal(t, []string{"A", "x"}, names)
}

func TestInspectStopsDescendingWhenFnReturnsFalse(t *testing.T) {
	b := ir.NewBuilder(resolver.New(), ir.NewRegistry(), "cu", "A.sol", []byte("x"))
	su, err := b.BuildSourceUnit([]byte(visitAST))
	require.NoError(t, err)

	var visited int
	visit.Inspect(su.Nodes[0], func(n ir.Any) bool {
		visited++
		return false // never descend past the contract itself
	})
	assert.Equal(t, 1, visited)
}

type declVisitor struct {
	visit.NoopVisitor
	fn func(*ir.Declaration)
}

func (v declVisitor) VisitDeclaration(d *ir.Declaration) bool {
	v.fn(d)
	return true
}
