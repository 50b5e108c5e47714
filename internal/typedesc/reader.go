package typedesc

import (
	"fmt"
	"strconv"
	"strings"
)

// Reader is a consuming cursor over a typeIdentifier string, modeled
// directly on original_source's wake.utils.string.StringReader: Read
// asserts and consumes a literal prefix, HasPrefix looks ahead without
// consuming, and Unread pushes a prefix back on for backtracking
// between alternative productions.
type Reader struct {
	original string
	data     string
}

// NewReader wraps s for parsing.
func NewReader(s string) *Reader {
	return &Reader{original: s, data: s}
}

// Done reports whether every byte of the original string was consumed.
func (r *Reader) Done() bool { return r.data == "" }

// Remaining returns the unconsumed suffix.
func (r *Reader) Remaining() string { return r.data }

// HasPrefix reports whether the remaining input starts with prefix,
// without consuming anything.
func (r *Reader) HasPrefix(prefix string) bool {
	return strings.HasPrefix(r.data, prefix)
}

// Read consumes prefix from the front of the remaining input, or
// returns an error if the input does not start with it.
func (r *Reader) Read(prefix string) error {
	if !strings.HasPrefix(r.data, prefix) {
		return fmt.Errorf("typedesc: expected %q, got %q (original: %q)", prefix, r.data, r.original)
	}
	r.data = r.data[len(prefix):]
	return nil
}

// Unread pushes prefix back onto the front of the remaining input.
func (r *Reader) Unread(prefix string) {
	r.data = prefix + r.data
}

// ReadUntil consumes and returns everything up to (excluding) the
// first occurrence of delim, or the whole remainder if delim never
// occurs or is empty.
func (r *Reader) ReadUntil(delim string) string {
	idx := strings.Index(r.data, delim)
	if idx < 0 || delim == "" {
		out := r.data
		r.data = ""
		return out
	}
	out := r.data[:idx]
	r.data = r.data[idx:]
	return out
}

// ReadDigits consumes a run of ASCII digits and returns it parsed as
// an int. It is an error for there to be no digits to consume.
func (r *Reader) ReadDigits() (int, error) {
	i := 0
	for i < len(r.data) && r.data[i] >= '0' && r.data[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("typedesc: expected digits, got %q (original: %q)", r.data, r.original)
	}
	digits := r.data[:i]
	r.data = r.data[i:]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("typedesc: invalid digits %q: %w", digits, err)
	}
	return n, nil
}
