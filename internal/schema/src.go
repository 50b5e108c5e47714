// Package schema decodes the Solidity compiler's --standard-json AST
// output into strictly-typed Go values, per spec.md §4.1: strict
// (forbid-extra-fields) and discriminator-tagged (on "nodeType")
// decoding, normalizing the compiler's composite "src" string into a
// (offset, length, fileID) triple.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solidity-ir/engine/internal/ierrors"
)

// Src is the decoded form of the compiler's "<offset>:<length>:<fileId>"
// source-range string.
type Src struct {
	Offset uint32
	Length uint32
	FileID int32
}

// UnmarshalJSON decodes a "src" string into its three components.
// Failure here is always a schema violation — the compiler never
// emits a malformed src string for a node actually present in the
// tree, so the error path is reached only by decoding a node from
// hand-built or corrupted JSON.
func (s *Src) UnmarshalJSON(data []byte) error {
	var raw string
	if err := jsonUnmarshal(data, &raw); err != nil {
		return ierrors.Wrap(ierrors.SchemaViolation, "", fmt.Errorf("src: %w", err))
	}
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return ierrors.New(ierrors.SchemaViolation, "", "src: malformed triple %q", raw)
	}
	offset, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ierrors.Wrap(ierrors.SchemaViolation, "", fmt.Errorf("src offset: %w", err))
	}
	length, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ierrors.Wrap(ierrors.SchemaViolation, "", fmt.Errorf("src length: %w", err))
	}
	fileID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ierrors.Wrap(ierrors.SchemaViolation, "", fmt.Errorf("src fileId: %w", err))
	}
	s.Offset = uint32(offset)
	s.Length = uint32(length)
	s.FileID = int32(fileID)
	return nil
}

func (s Src) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Offset, s.Length, s.FileID)
}
