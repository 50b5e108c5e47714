// Package srctext reads Solidity source files off disk, transcoding a
// UTF-16 BOM to UTF-8 when one is present. Grounded on the teacher's
// text.ReadTextFile (text/reader.go): the same decoder composition
// (unicode.UTF8.NewDecoder wrapped in unicode.BOMOverride), adapted
// from "read test fixtures that might be saved by a Windows editor" to
// "read a compilation unit's source files, which solc itself will have
// accepted in whatever encoding it was told to".
package srctext

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads filename, converting UTF-16 LE/BE content to UTF-8 if
// it starts with the matching BOM. Plain UTF-8 sources (the overwhelming
// majority of real-world Solidity) pass through unchanged, since
// BOMOverride only engages the transcoding decoder when a BOM is seen.
func ReadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := unicode.UTF8.NewDecoder()
	reader := transform.NewReader(f, unicode.BOMOverride(decoder))
	return io.ReadAll(reader)
}
