package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/pipeline"
)

// Same fixture internal/ir/builder_test.go uses, describing:
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

func TestBuildIngestFansOutAndResolvesPostProcess(t *testing.T) {
	b := pipeline.NewBuild(nil)
	cu := pipeline.CU{
		Hash:            "cu1",
		SolidityVersion: "0.8.20",
		Files: []pipeline.FileInput{
			{Path: "Counter.sol", AST: []byte(counterAST), Source: []byte(counterSource)},
		},
	}

	require.NoError(t, b.Ingest(context.Background(), cu, 2))

	su, ok := b.SourceUnit("Counter.sol")
	require.True(t, ok)
	require.Len(t, su.Nodes, 1)

	contract := su.Nodes[0].(*ir.Declaration)
	assert.Equal(t, "Counter", contract.Name)
	assert.Equal(t, []int64{10}, contract.LinearizedBaseContracts)
}

// otherAST reuses every node id counterAST uses (1, 10, 20, 21, 24, 25,
// 28, 29, 30) for an unrelated contract in an unrelated file, as if two
// independent solc --standard-json invocations each started their own
// id space from scratch. Registry is scoped per CU precisely so this
// collision is harmless.
const otherAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:90:0",
  "absolutePath": "Other.sol", "license": "MIT",
  "exportedSymbols": {"Other": [10]},
  "nodes": [
    {
      "id": 10, "nodeType": "ContractDefinition", "src": "0:90:0",
      "name": "Other", "nameLocation": "9:5:0",
      "contractKind": "contract", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [10], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": true,
      "nodes": [
        {
          "id": 20, "nodeType": "FunctionDefinition", "src": "24:64:0",
          "name": "getOther", "nameLocation": "33:8:0",
          "kind": "function", "stateMutability": "pure", "visibility": "external",
          "virtual": false, "implemented": true,
          "functionSelector": "00000000",
          "parameters": {"id": 21, "nodeType": "ParameterList", "src": "36:2:0", "parameters": []},
          "returnParameters": {
            "id": 25, "nodeType": "ParameterList", "src": "62:9:0",
            "parameters": [
              {
                "id": 24, "nodeType": "VariableDeclaration", "src": "62:7:0",
                "name": "", "constant": false, "stateVariable": false, "indexed": false,
                "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
                "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
              }
            ]
          },
          "modifiers": [],
          "baseFunctions": [],
          "body": {
            "id": 30, "nodeType": "Block", "src": "72:16:0",
            "statements": [
              {
                "id": 29, "nodeType": "Return", "src": "78:9:0",
                "functionReturnParameters": 25,
                "expression": {
                  "id": 28, "nodeType": "Literal", "src": "85:1:0",
                  "kind": "number", "value": "2", "hexValue": "32",
                  "typeDescriptions": {"typeIdentifier": "t_rational_2_by_1", "typeString": "int_const 2"}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

// TestBuildIngestScopesRegistryPerCU ingests two CUs whose ASTs reuse
// the exact same compiler node ids for two unrelated contracts, as
// independent solc invocations naturally would. A Registry shared
// across CUs would let the second CU's Register(10, ...) silently
// replace the first CU's, corrupting any lookup still pending against
// the first CU's declarations; scoping a fresh Registry per Ingest
// call keeps the two builds from ever seeing each other's ids.
func TestBuildIngestScopesRegistryPerCU(t *testing.T) {
	b := pipeline.NewBuild(nil)

	cu1 := pipeline.CU{
		Hash: "cu1",
		Files: []pipeline.FileInput{
			{Path: "Counter.sol", AST: []byte(counterAST), Source: []byte(counterSource)},
		},
	}
	require.NoError(t, b.Ingest(context.Background(), cu1, 0))

	const otherSource = `contract Other {
    function getOther() external pure returns (uint256) {
        return 2;
    }
}
`
	cu2 := pipeline.CU{
		Hash: "cu2",
		Files: []pipeline.FileInput{
			{Path: "Other.sol", AST: []byte(otherAST), Source: []byte(otherSource)},
		},
	}
	require.NoError(t, b.Ingest(context.Background(), cu2, 0))

	counter, ok := b.SourceUnit("Counter.sol")
	require.True(t, ok)
	require.Len(t, counter.Nodes, 1)
	counterContract := counter.Nodes[0].(*ir.Declaration)
	assert.Equal(t, "Counter", counterContract.Name)

	other, ok := b.SourceUnit("Other.sol")
	require.True(t, ok)
	require.Len(t, other.Nodes, 1)
	otherContract := other.Nodes[0].(*ir.Declaration)
	assert.Equal(t, "Other", otherContract.Name)
}

func TestBuildEvictRemovesSourceUnitAndFiresDestroyCallbacks(t *testing.T) {
	b := pipeline.NewBuild(nil)
	cu := pipeline.CU{
		Hash: "cu1",
		Files: []pipeline.FileInput{
			{Path: "Counter.sol", AST: []byte(counterAST), Source: []byte(counterSource)},
		},
	}
	require.NoError(t, b.Ingest(context.Background(), cu, 0))

	_, ok := b.SourceUnit("Counter.sol")
	require.True(t, ok)

	b.Evict("Counter.sol")

	_, ok = b.SourceUnit("Counter.sol")
	assert.False(t, ok)
}
