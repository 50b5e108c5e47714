package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/resolver"
)

func TestReconcileTraceFirstTraversalJustSeeds(t *testing.T) {
	r := resolver.New()
	require.NoError(t, r.ReconcileTrace("A.sol", []string{"SourceUnit", "ContractDefinition"}))
	assert.Empty(t, r.Drift())
}

func TestReconcileTraceExactRepeatIsClean(t *testing.T) {
	r := resolver.New()
	seq := []string{"SourceUnit", "ContractDefinition", "FunctionDefinition"}
	require.NoError(t, r.ReconcileTrace("A.sol", seq))
	require.NoError(t, r.ReconcileTrace("A.sol", seq))
	assert.Empty(t, r.Drift())
}

func TestReconcileTraceToleratesMissingStructuredDocumentation(t *testing.T) {
	r := resolver.New()
	withDoc := []string{"SourceUnit", "StructuredDocumentation", "ContractDefinition"}
	withoutDoc := []string{"SourceUnit", "ContractDefinition"}

	require.NoError(t, r.ReconcileTrace("A.sol", withDoc))
	require.NoError(t, r.ReconcileTrace("A.sol", withoutDoc))

	drift := r.Drift()
	require.Len(t, drift, 1)
	assert.Equal(t, resolver.DriftDocumentation, drift[0].Kind)
	assert.False(t, drift[0].Fatal)

	// Reconciling in the other direction (fewer then more) is
	// tolerated the same way.
	r2 := resolver.New()
	require.NoError(t, r2.ReconcileTrace("A.sol", withoutDoc))
	require.NoError(t, r2.ReconcileTrace("A.sol", withDoc))
}

func TestReconcileTraceToleratesUserDefinedTypeNameVsIdentifierPath(t *testing.T) {
	r := resolver.New()
	withPath := []string{"SourceUnit", "VariableDeclaration", "IdentifierPath"}
	withTypeName := []string{"SourceUnit", "VariableDeclaration", "UserDefinedTypeName"}

	require.NoError(t, r.ReconcileTrace("A.sol", withPath))
	require.NoError(t, r.ReconcileTrace("A.sol", withTypeName))

	drift := r.Drift()
	require.Len(t, drift, 1)
	assert.Equal(t, resolver.DriftTypeNameVsPath, drift[0].Kind)
	assert.False(t, drift[0].Fatal)
}

func TestReconcileTraceFatalOnUnrelatedMismatch(t *testing.T) {
	r := resolver.New()
	first := []string{"SourceUnit", "ContractDefinition", "FunctionDefinition"}
	second := []string{"SourceUnit", "ContractDefinition", "VariableDeclaration"}

	require.NoError(t, r.ReconcileTrace("A.sol", first))
	err := r.ReconcileTrace("A.sol", second)
	require.Error(t, err)

	var typed *ierrors.Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ierrors.StructuralDrift, typed.Kind)
	assert.True(t, typed.Kind.Fatal())

	drift := r.Drift()
	require.NotEmpty(t, drift)
	assert.Equal(t, resolver.DriftMismatch, drift[len(drift)-1].Kind)
	assert.True(t, drift[len(drift)-1].Fatal)
}

func TestReconcileTraceFatalOnUnmatchedTrailingNode(t *testing.T) {
	r := resolver.New()
	shorter := []string{"SourceUnit", "ContractDefinition"}
	longer := []string{"SourceUnit", "ContractDefinition", "FunctionDefinition"}

	require.NoError(t, r.ReconcileTrace("A.sol", shorter))
	err := r.ReconcileTrace("A.sol", longer)
	require.Error(t, err)

	var typed *ierrors.Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ierrors.StructuralDrift, typed.Kind)
}

func TestReconcileTraceIsPerFile(t *testing.T) {
	r := resolver.New()
	require.NoError(t, r.ReconcileTrace("A.sol", []string{"SourceUnit", "ContractDefinition"}))
	require.NoError(t, r.ReconcileTrace("B.sol", []string{"SourceUnit", "FunctionDefinition"}))
	assert.Empty(t, r.Drift())
}
