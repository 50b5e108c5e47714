package ir

import (
	"regexp"

	"github.com/solidity-ir/engine/internal/ierrors"
	"github.com/solidity-ir/engine/internal/srcrange"
)

// nameLocationPatterns gives one regex per declaration kind, matching
// the keyword(s) that precede the declaration's identifier, per
// spec.md §4.3's "small regex per declaration kind" instruction. Each
// pattern's first capture group is the identifier.
var nameLocationPatterns = map[Kind]*regexp.Regexp{
	KindContractDefinition:             regexp.MustCompile(`\b(?:contract|interface|library)\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindEnumDefinition:                 regexp.MustCompile(`\benum\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindStructDefinition:               regexp.MustCompile(`\bstruct\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindEventDefinition:                regexp.MustCompile(`\bevent\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindErrorDefinition:                regexp.MustCompile(`\berror\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindModifierDefinition:             regexp.MustCompile(`\bmodifier\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	KindFunctionDefinition:             regexp.MustCompile(`\b(?:function|constructor|fallback|receive)\s+([A-Za-z_$][A-Za-z0-9_$]*)?`),
	KindUserDefinedValueTypeDefinition: regexp.MustCompile(`\btype\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
	// VariableDeclaration has no leading keyword; the identifier is
	// whatever non-space token follows the type name, so it's matched
	// against the tail of the slice rather than a fixed prefix.
	KindVariableDeclaration: regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)\s*(?:=|;|,|\)|$)`),
}

// DeriveNameLocation recovers a declaration's name-location byte range
// by masking comments/strings out of its source slice (internal/srcrange.Strip)
// and applying the pattern for its Kind. Masking preserves byte
// offsets 1:1 (unlike deleting the comment text), so the match offset
// found in the masked buffer is already the correct offset in decl's
// original source — no prefix-sum correction table is needed, unlike
// the string-deleting approach spec.md §4.3 describes.
func DeriveNameLocation(kind Kind, declSource string, declStart uint32) (*NameLocation, error) {
	pattern, ok := nameLocationPatterns[kind]
	if !ok {
		return nil, ierrors.New(ierrors.UnsupportedConstruct, "", "no name-location pattern for kind %s", kind)
	}

	stripped := srcrange.Strip([]byte(declSource))
	loc := pattern.FindSubmatchIndex(stripped.Masked)
	if loc == nil || loc[2] < 0 {
		return nil, ierrors.New(ierrors.MissingDeclaration, "", "name-location regex found no match for kind %s", kind)
	}

	start := loc[2]
	end := loc[3]
	return &NameLocation{
		Offset: declStart + uint32(start),
		Length: uint32(end - start),
	}, nil
}
