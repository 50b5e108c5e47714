package ir

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// FunctionSelector computes the 4-byte selector for a function or
// error signature `name(type,type,...)`, using Keccak-256 exactly as
// original_source/wake computes it (sha3.keccak_256 over the ABI
// canonical signature, first 4 bytes).
func FunctionSelector(name string, paramTypes []string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature(name, paramTypes)))
	sum := h.Sum(nil)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}

// EventSelector computes the full 32-byte topic0 hash for an event
// signature.
func EventSelector(name string, paramTypes []string) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature(name, paramTypes)))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func signature(name string, paramTypes []string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(paramTypes, ","))
}
