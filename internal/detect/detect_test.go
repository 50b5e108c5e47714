package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/binder"
	"github.com/solidity-ir/engine/internal/detect"
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
	"github.com/solidity-ir/engine/internal/visit"
)

// Same fixture internal/ir/builder_test.go and internal/pipeline use,
// describing:
//
//	contract Counter {
//	    function get() external pure returns (uint256) {
//	        return 1;
//	    }
//	}
const counterSource = `contract Counter {
    function get() external pure returns (uint256) {
        return 1;
    }
}
`

const counterAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:98:0",
  "absolutePath": "Counter.sol", "license": "MIT",
  "exportedSymbols": {"Counter": [10]},
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:97:0",
      "name": "Counter", "nameLocation": "9:7:0",
      "contractKind": "contract", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [10], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": true,
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "23:72:0",
          "name": "get", "nameLocation": "32:3:0",
          "kind": "function", "stateMutability": "pure", "visibility": "external",
          "virtual": false, "implemented": true,
          "functionSelector": "6d4ce63c",
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "35:2:0", "parameters": []},
          "returnParameters": {
            "id": 25, "nodeType": "ParameterList", "src": "60:9:0",
            "parameters": [
              {
                "id": 24, "nodeType": "VariableDeclaration", "src": "61:7:0",
                "name": "", "constant": false, "stateVariable": false, "indexed": false,
                "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
                "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
              }
            ]
          },
          "modifiers": [],
          "baseFunctions": [],
          "body": {
            "id": 30, "nodeType": "Block", "src": "70:25:0",
            "statements": [
              {
                "id": 29, "nodeType": "Return", "src": "80:9:0",
                "functionReturnParameters": 25,
                "expression": {
                  "id": 28, "nodeType": "Literal", "src": "87:1:0",
                  "kind": "number", "value": "1", "hexValue": "31",
                  "typeDescriptions": {"typeIdentifier": "t_rational_1_by_1", "typeString": "int_const 1"}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

// returnCounter is a minimal Analyzer exercising Pass.Walk and
// Pass.Report: it reports one Finding per Return statement in the
// function it is given.
type returnCounter struct {
	visit.NoopVisitor
	pass *detect.Pass
}

func (r *returnCounter) VisitStatement(s *ir.Statement) bool {
	if s.Kind == ir.KindReturn {
		r.pass.Report(detect.NewFinding(r.pass.SourceUnit, s, "return statement"))
	}
	return true
}

func (r *returnCounter) Run(p *detect.Pass) {
	r.pass = p
	p.Walk(r)
}

func TestRunAppliesAnalyzerToEveryImplementedFunction(t *testing.T) {
	res := resolver.New()
	reg := ir.NewRegistry()
	b := ir.NewBuilder(res, reg, "cu1", "Counter.sol", []byte(counterSource))

	su, err := b.BuildSourceUnit([]byte(counterAST))
	require.NoError(t, err)
	binder.Enqueue(su, res, reg)
	require.NoError(t, res.Queue().Run())

	findings := detect.Run([]*ir.SourceUnit{su}, res, []detect.Analyzer{&returnCounter{}})

	require.Len(t, findings, 1)
	assert.Equal(t, "Counter.sol", findings[0].File)
	assert.Equal(t, "return statement", findings[0].Message)
}

func TestPassCFGBuildsAndCaches(t *testing.T) {
	res := resolver.New()
	reg := ir.NewRegistry()
	b := ir.NewBuilder(res, reg, "cu1", "Counter.sol", []byte(counterSource))

	su, err := b.BuildSourceUnit([]byte(counterAST))
	require.NoError(t, err)
	binder.Enqueue(su, res, reg)
	require.NoError(t, res.Queue().Run())

	contract := su.Nodes[0].(*ir.Declaration)
	fn := contract.Members[0].(*ir.Declaration)

	pass := &detect.Pass{SourceUnit: su, Function: fn, Resolver: res}
	graph, err := pass.CFG()
	require.NoError(t, err)
	assert.NotNil(t, graph)

	again, err := pass.CFG()
	require.NoError(t, err)
	assert.Same(t, graph, again)
}
