package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/binder"
	"github.com/solidity-ir/engine/internal/cfg"
	"github.com/solidity-ir/engine/internal/ir"
	"github.com/solidity-ir/engine/internal/resolver"
)

// buildFunction decodes a single-function, single-contract source
// unit from raw and returns the function's ir.Declaration, fully
// bound (binder.Enqueue + a queue drain already ran), ready to feed
// cfg.Build. Mirrors internal/ir's own builder_test.go literal-JSON
// style: the JSON stands in for what solc would emit, so the whole
// pipeline except actual solc invocation is exercised.
func buildFunction(t *testing.T, raw string) *ir.Declaration {
	t.Helper()
	res := resolver.New()
	reg := ir.NewRegistry()
	b := ir.NewBuilder(res, reg, "cu1", "T.sol", []byte(raw))

	su, err := b.BuildSourceUnit([]byte(raw))
	require.NoError(t, err)
	binder.Enqueue(su, res, reg)
	require.NoError(t, res.Queue().Run())

	require.Len(t, su.Nodes, 1)
	contract, ok := su.Nodes[0].(*ir.Declaration)
	require.True(t, ok)
	require.Len(t, contract.Members, 1)
	fn, ok := contract.Members[0].(*ir.Declaration)
	require.True(t, ok)
	return fn
}

// requireAST is:
//
//	contract C {
//	    function f(uint256 x) public {
//	        require(x > 0);
//	        x += 1;
//	    }
//	}
//
// matching spec.md §8's S3 scenario.
const requireAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:10:0",
  "absolutePath": "T.sol", "license": "MIT",
  "exportedSymbols": {"C": [2]},
  "nodes": [
    {
      "id": 2, "nodeType": "ContractDefinition", "src": "0:10:0",
      "name": "C", "nameLocation": "9:1:0",
      "contractKind": "contract", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [2], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": true,
      "nodes": [
        {
          "id": 10, "nodeType": "FunctionDefinition", "src": "0:10:0",
          "name": "f", "nameLocation": "0:1:0",
          "kind": "function", "stateMutability": "nonpayable", "visibility": "public",
          "virtual": false, "implemented": true,
          "functionSelector": "",
          "parameters": {
            "id": 11, "nodeType": "ParameterList", "src": "0:1:0",
            "parameters": [
              {
                "id": 12, "nodeType": "VariableDeclaration", "src": "0:1:0",
                "name": "x", "nameLocation": "0:1:0",
                "constant": false, "stateVariable": false, "indexed": false,
                "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
                "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
              }
            ]
          },
          "returnParameters": {"id": 13, "nodeType": "ParameterList", "src": "0:0:0", "parameters": []},
          "modifiers": [],
          "baseFunctions": [],
          "body": {
            "id": 20, "nodeType": "Block", "src": "0:10:0",
            "statements": [
              {
                "id": 21, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 22, "nodeType": "FunctionCall", "src": "0:1:0",
                  "kind": "functionCall", "names": [],
                  "typeDescriptions": {"typeIdentifier": "t_tuple$__$", "typeString": "tuple()"},
                  "expression": {
                    "id": 23, "nodeType": "Identifier", "src": "0:1:0",
                    "name": "require", "referencedDeclaration": -18,
                    "typeDescriptions": {"typeIdentifier": "t_function_require_pure$_t_bool_$returns$__$", "typeString": "function (bool) pure"}
                  },
                  "arguments": [
                    {
                      "id": 24, "nodeType": "BinaryOperation", "src": "0:1:0",
                      "operator": ">",
                      "typeDescriptions": {"typeIdentifier": "t_bool", "typeString": "bool"},
                      "leftExpression": {
                        "id": 25, "nodeType": "Identifier", "src": "0:1:0",
                        "name": "x", "referencedDeclaration": 12,
                        "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
                      },
                      "rightExpression": {
                        "id": 26, "nodeType": "Literal", "src": "0:1:0",
                        "kind": "number", "value": "0", "hexValue": "30",
                        "typeDescriptions": {"typeIdentifier": "t_rational_0_by_1", "typeString": "int_const 0"}
                      }
                    }
                  ]
                }
              },
              {
                "id": 27, "nodeType": "ExpressionStatement", "src": "0:1:0",
                "expression": {
                  "id": 28, "nodeType": "Assignment", "src": "0:1:0",
                  "operator": "+=",
                  "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"},
                  "leftHandSide": {
                    "id": 29, "nodeType": "Identifier", "src": "0:1:0",
                    "name": "x", "referencedDeclaration": 12,
                    "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
                  },
                  "rightHandSide": {
                    "id": 30, "nodeType": "Literal", "src": "0:1:0",
                    "kind": "number", "value": "1", "hexValue": "31",
                    "typeDescriptions": {"typeIdentifier": "t_rational_1_by_1", "typeString": "int_const 1"}
                  }
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestBuildRequireSplitsBlockAndRevertsOnFalse(t *testing.T) {
	fn := buildFunction(t, requireAST)
	g := cfg.Build(fn)

	nonEnd := 0
	for _, blk := range g.Blocks {
		if blk != g.SuccessEnd && blk != g.RevertEnd {
			nonEnd++
		}
	}
	assert.Equal(t, 3, nonEnd, "start + require-block + continuation")

	require.Len(t, g.Start.Out, 1)
	requireBlk := g.Start.Out[0].To
	require.Len(t, requireBlk.Out, 2)
	var sawTrue, sawFalse bool
	var cont *cfg.Block
	for _, e := range requireBlk.Out {
		switch e.Condition {
		case cfg.IsTrue:
			sawTrue = true
			cont = e.To
		case cfg.IsFalse:
			sawFalse = true
			assert.Same(t, g.RevertEnd, e.To)
		}
	}
	assert.True(t, sawTrue)
	assert.True(t, sawFalse)

	require.NotNil(t, cont)
	require.Len(t, cont.Statements, 1)
	require.Len(t, cont.Out, 1)
	assert.Equal(t, cfg.Always, cont.Out[0].Condition)
	assert.Same(t, g.SuccessEnd, cont.Out[0].To)
}

func TestNormalizationStripsNeverEdges(t *testing.T) {
	fn := buildFunction(t, requireAST)
	g := cfg.Build(fn)
	for _, blk := range g.Blocks {
		for _, e := range blk.Out {
			assert.NotEqual(t, cfg.Never, e.Condition)
		}
	}
}

func TestEveryReachableBlockCanReachAnEnd(t *testing.T) {
	fn := buildFunction(t, requireAST)
	g := cfg.Build(fn)

	seen := map[*cfg.Block]bool{}
	queue := []*cfg.Block{g.Start}
	var reachable []*cfg.Block
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			continue
		}
		seen[n] = true
		reachable = append(reachable, n)
		for _, e := range n.Out {
			queue = append(queue, e.To)
		}
	}

	for _, blk := range reachable {
		assert.True(t,
			reachesBlock(blk, g.SuccessEnd) || reachesBlock(blk, g.RevertEnd),
			"block %d must reach success or revert end", blk.Index)
	}
}

// reachesBlock reports whether to is from itself or lies on a path of
// Out edges starting at from. The end blocks are always empty, so they
// have no statement IsReachable could be asked about.
func reachesBlock(from, to *cfg.Block) bool {
	seen := map[*cfg.Block]bool{}
	queue := []*cfg.Block{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == to {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		for _, e := range n.Out {
			queue = append(queue, e.To)
		}
	}
	return false
}

// tryAST is:
//
//	interface Foo {
//	    function bar() external returns (uint);
//	}
//	contract C {
//	    Foo foo;
//	    function f() public {
//	        try foo.bar() returns (uint v) {
//	        } catch Error(string memory e) {
//	        } catch {
//	        }
//	    }
//	}
//
// matching spec.md §8's S4 scenario.
const tryAST = `{
  "id": 1, "nodeType": "SourceUnit", "src": "0:1:0",
  "absolutePath": "Try.sol", "license": "MIT",
  "exportedSymbols": {"Foo": [300], "C": [400]},
  "nodes": [
    {
      "id": 300, "nodeType": "ContractDefinition", "src": "0:1:0",
      "name": "Foo", "contractKind": "interface", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [300], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": false,
      "nodes": [
        {
          "id": 310, "nodeType": "FunctionDefinition", "src": "0:1:0",
          "name": "bar", "kind": "function", "stateMutability": "nonpayable", "visibility": "external",
          "virtual": true, "implemented": false,
          "parameters": {"id": 311, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {
            "id": 312, "nodeType": "ParameterList", "src": "0:1:0",
            "parameters": [
              {
                "id": 313, "nodeType": "VariableDeclaration", "src": "0:1:0",
                "name": "", "constant": false, "stateVariable": false, "indexed": false,
                "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
                "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
              }
            ]
          },
          "modifiers": [], "baseFunctions": []
        }
      ]
    },
    {
      "id": 400, "nodeType": "ContractDefinition", "src": "0:1:0",
      "name": "C", "contractKind": "contract", "abstract": false,
      "baseContracts": [], "contractDependencies": [],
      "linearizedBaseContracts": [400], "usedErrors": [], "usedEvents": [],
      "fullyImplemented": true,
      "nodes": [
        {
          "id": 410, "nodeType": "VariableDeclaration", "src": "0:1:0",
          "name": "foo", "constant": false, "stateVariable": true, "indexed": false,
          "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
          "typeDescriptions": {"typeIdentifier": "t_contract$_Foo_$300", "typeString": "contract Foo"}
        },
        {
          "id": 420, "nodeType": "FunctionDefinition", "src": "0:1:0",
          "name": "f", "kind": "function", "stateMutability": "nonpayable", "visibility": "public",
          "virtual": false, "implemented": true,
          "parameters": {"id": 421, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "returnParameters": {"id": 422, "nodeType": "ParameterList", "src": "0:1:0", "parameters": []},
          "modifiers": [], "baseFunctions": [],
          "body": {
            "id": 425, "nodeType": "Block", "src": "0:1:0",
            "statements": [
              {
                "id": 460, "nodeType": "TryStatement", "src": "0:1:0",
                "externalCall": {
                  "id": 461, "nodeType": "FunctionCall", "src": "0:1:0",
                  "kind": "functionCall", "names": [], "arguments": [],
                  "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"},
                  "expression": {
                    "id": 462, "nodeType": "MemberAccess", "src": "0:1:0",
                    "memberName": "bar",
                    "expression": {
                      "id": 463, "nodeType": "Identifier", "src": "0:1:0",
                      "name": "foo", "referencedDeclaration": 410,
                      "typeDescriptions": {"typeIdentifier": "t_contract$_Foo_$300", "typeString": "contract Foo"}
                    },
                    "typeDescriptions": {"typeIdentifier": "t_function_external_nonpayable$__$returns$_t_uint256_$", "typeString": "function () external returns (uint256)"}
                  }
                },
                "clauses": [
                  {
                    "id": 430, "nodeType": "TryCatchClause", "src": "0:1:0",
                    "errorName": "",
                    "parameters": {
                      "id": 431, "nodeType": "ParameterList", "src": "0:1:0",
                      "parameters": [
                        {
                          "id": 432, "nodeType": "VariableDeclaration", "src": "0:1:0",
                          "name": "v", "constant": false, "stateVariable": false, "indexed": false,
                          "mutability": "mutable", "visibility": "internal", "storageLocation": "default",
                          "typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
                        }
                      ]
                    },
                    "block": {"id": 433, "nodeType": "Block", "src": "0:1:0", "statements": []}
                  },
                  {
                    "id": 440, "nodeType": "TryCatchClause", "src": "0:1:0",
                    "errorName": "Error",
                    "parameters": {
                      "id": 441, "nodeType": "ParameterList", "src": "0:1:0",
                      "parameters": [
                        {
                          "id": 442, "nodeType": "VariableDeclaration", "src": "0:1:0",
                          "name": "e", "constant": false, "stateVariable": false, "indexed": false,
                          "mutability": "mutable", "visibility": "internal", "storageLocation": "memory",
                          "typeDescriptions": {"typeIdentifier": "t_string_memory_ptr", "typeString": "string"}
                        }
                      ]
                    },
                    "block": {"id": 443, "nodeType": "Block", "src": "0:1:0", "statements": []}
                  },
                  {
                    "id": 450, "nodeType": "TryCatchClause", "src": "0:1:0",
                    "errorName": "", "parameters": null,
                    "block": {"id": 451, "nodeType": "Block", "src": "0:1:0", "statements": []}
                  }
                ]
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestBuildTryCatchEdgesWithoutPanicClause(t *testing.T) {
	res := resolver.New()
	reg := ir.NewRegistry()
	b := ir.NewBuilder(res, reg, "cu1", "Try.sol", []byte(tryAST))

	su, err := b.BuildSourceUnit([]byte(tryAST))
	require.NoError(t, err)
	binder.Enqueue(su, res, reg)
	require.NoError(t, res.Queue().Run())

	c := su.Nodes[1].(*ir.Declaration)
	var f *ir.Declaration
	for _, m := range c.Members {
		if d, ok := m.(*ir.Declaration); ok && d.Name == "f" {
			f = d
		}
	}
	require.NotNil(t, f)

	g := cfg.Build(f)
	require.Len(t, g.Start.Out, 1)
	tryBlk := g.Start.Out[0].To
	require.Len(t, tryBlk.Out, 3)

	seen := map[cfg.Condition]bool{}
	for _, e := range tryBlk.Out {
		seen[e.Condition] = true
		assert.NotEqual(t, cfg.TryPanicked, e.Condition)
	}
	assert.True(t, seen[cfg.TrySucceeded])
	assert.True(t, seen[cfg.TryReverted])
	assert.True(t, seen[cfg.TryFailed])
}

// firstAnchor returns a stand-in ir.Any the CFG's stmtBlock index will
// resolve back to blk, for exercising IsReachable in tests: the
// block's own first statement if it has one, else nil (tests on empty
// blocks fall back to direct block identity elsewhere).
func firstAnchor(blk *cfg.Block) ir.Any {
	if len(blk.Statements) > 0 {
		return blk.Statements[0]
	}
	return nil
}
