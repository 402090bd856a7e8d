// Package hexdigest renders MD5 digests as hexadecimal text and parses them
// back.
package hexdigest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-md5auth/core/hash/md5"
)

// Length of a hex encoded MD5 digest.
const Length = md5.Size * 2

var ErrInvalidLength = errors.New("hex digest must be 32 characters")

var ErrInvalidCharacter = errors.New("hex digest contains a non hexadecimal character")

// Encode returns the 32 character lowercase hex encoding of d.
func Encode(d md5.Digest) string {
	return hex.EncodeToString(d[:])
}

// Equal reports whether a and b are the same hex digest. The comparison is
// exact: case and length sensitive.
func Equal(a, b string) bool {
	return a == b
}

// Normalize checks that s is a 32 character hex string and returns it in
// lowercase.
func Normalize(s string) (string, error) {
	if len(s) != Length {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
	}
	return strings.ToLower(s), nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Decode parses a 32 character hex string, in either case, into a digest.
func Decode(s string) (md5.Digest, error) {
	var d md5.Digest
	s, err := Normalize(s)
	if err != nil {
		return d, err
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("decoding hex digest: %w", err)
	}
	return d, nil
}

// Format encodes d as a base16 multibase string, the hex digest prefixed with
// "f".
func Format(d md5.Digest) (string, error) {
	str, err := multibase.Encode(multibase.Base16, d[:])
	if err != nil {
		return "", fmt.Errorf("encoding multibase string: %w", err)
	}
	return str, nil
}

// Parse decodes a digest from a multibase string in any supported base.
func Parse(str string) (md5.Digest, error) {
	var d md5.Digest
	_, bytes, err := multibase.Decode(str)
	if err != nil {
		return d, fmt.Errorf("decoding multibase string: %w", err)
	}
	if len(bytes) != md5.Size {
		return d, fmt.Errorf("invalid length: %d wanted: %d", len(bytes), md5.Size)
	}
	copy(d[:], bytes)
	return d, nil
}
