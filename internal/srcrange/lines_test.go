package srcrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidity-ir/engine/internal/srcrange"
)

func TestLineIndexPosition(t *testing.T) {
	src := []byte("pragma solidity ^0.8.0;\ncontract C {\n    uint x;\n}\n")

	li := srcrange.NewLineIndex(src)

	line, col := li.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	// "contract" starts right after the first newline.
	contractOffset := uint32(len("pragma solidity ^0.8.0;\n"))
	line, col = li.Position(contractOffset)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestLineIndexUTF16Column(t *testing.T) {
	// "é" is 2 bytes in UTF-8 but 1 UTF-16 code unit; "𝌆" is 4 bytes in
	// UTF-8 but a surrogate pair (2 code units) in UTF-16.
	src := []byte("é𝌆x\n")
	li := srcrange.NewLineIndex(src)

	xOffset := uint32(len("é𝌆"))
	_, col := li.Position(xOffset)
	// 1 (é) + 2 (surrogate pair) + 1 (1-indexed) = 4
	assert.Equal(t, 4, col)
}
