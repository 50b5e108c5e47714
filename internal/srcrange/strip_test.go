package srcrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidity-ir/engine/internal/srcrange"
)

func TestStripLineComment(t *testing.T) {
	src := []byte("function foo() {} // contract Bar {}")
	s := srcrange.Strip(src)
	assert.NotContains(t, string(s.Masked), "contract Bar")
	assert.Contains(t, string(s.Masked), "function foo() {}")
	assert.Equal(t, len(src), len(s.Masked))
}

func TestStripBlockComment(t *testing.T) {
	src := []byte("uint /* enum E {} */ x;")
	s := srcrange.Strip(src)
	assert.NotContains(t, string(s.Masked), "enum E")
	assert.Contains(t, string(s.Masked), "uint")
	assert.Contains(t, string(s.Masked), "x;")
}

func TestStripStringLiteralNotMistakenForComment(t *testing.T) {
	src := []byte(`string memory s = "function fake() {}";`)
	s := srcrange.Strip(src)
	assert.NotContains(t, string(s.Masked), "function fake")
	assert.Contains(t, string(s.Masked), "string memory s")
}

func TestStripPreservesNewlinesInBlockComments(t *testing.T) {
	src := []byte("x;/*\n\n*/y;")
	s := srcrange.Strip(src)
	nl := 0
	for _, b := range s.Masked {
		if b == '\n' {
			nl++
		}
	}
	assert.Equal(t, 2, nl)
}
