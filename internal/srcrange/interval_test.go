package srcrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidity-ir/engine/internal/srcrange"
)

func TestTreeQuery(t *testing.T) {
	tr := srcrange.New[string]()
	tr.Insert(srcrange.Range{Start: 0, Length: 10}, "outer")
	tr.Insert(srcrange.Range{Start: 2, Length: 3}, "inner")
	tr.Insert(srcrange.Range{Start: 20, Length: 5}, "disjoint")

	got := tr.Query(3)
	assert.ElementsMatch(t, []string{"outer", "inner"}, got)

	assert.Empty(t, tr.Query(100))
	assert.ElementsMatch(t, []string{"outer"}, tr.Query(9))
}

func TestTreeQueryManyOverlapping(t *testing.T) {
	tr := srcrange.New[int]()
	for i := 0; i < 200; i++ {
		tr.Insert(srcrange.Range{Start: uint32(i), Length: uint32(200 - i)}, i)
	}
	got := tr.Query(150)
	require.Len(t, got, 151) // intervals [0,200) .. [150,200) all cover 150.
}

func TestRangeContainsAndCovers(t *testing.T) {
	outer := srcrange.Range{Start: 0, Length: 10}
	inner := srcrange.Range{Start: 2, Length: 3}

	assert.True(t, outer.Contains(0))
	assert.False(t, outer.Contains(10))
	assert.True(t, outer.Covers(inner))
	assert.False(t, inner.Covers(outer))
}
