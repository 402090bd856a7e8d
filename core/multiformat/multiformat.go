// Package multiformat reads the varint code that prefixes multiformat values.
package multiformat

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-varint"
)

// Untag checks that b starts with the varint encoding of code and returns the
// remaining bytes.
func Untag(code uint64, b []byte) ([]byte, error) {
	tag, err := varint.ReadUvarint(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("reading multiformat tag: %w", err)
	}
	if tag != code {
		return nil, fmt.Errorf("expected multiformat with 0x%x tag instead got 0x%x", code, tag)
	}
	return b[varint.UvarintSize(tag):], nil
}
