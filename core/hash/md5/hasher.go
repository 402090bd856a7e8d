package md5

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"github.com/storacha/go-md5auth/core/hash"
	"github.com/storacha/go-md5auth/core/multiformat"
)

// md5 multihash code
const Code = uint64(multicodec.Md5)

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Size() uint64 {
	return Size
}

func (hasher) Sum(b []byte) (hash.Digest, error) {
	c := New()
	if _, err := c.Write(b); err != nil {
		return nil, err
	}
	sum, err := c.Finalize()
	if err != nil {
		return nil, err
	}

	d, err := multihash.Encode(sum[:], Code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}

	return hash.NewDigest(Code, Size, d), nil
}

// Hasher produces md5 multihash digests.
var Hasher = hasher{}

var _ hash.Hasher = Hasher

// Decode parses an md5 multihash.
func Decode(b []byte) (hash.Digest, error) {
	rest, err := multiformat.Untag(Code, b)
	if err != nil {
		return nil, fmt.Errorf("reading multihash code: %w", err)
	}

	size, err := varint.ReadUvarint(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("reading multihash length: %w", err)
	}
	if size != Size {
		return nil, fmt.Errorf("invalid digest length: %d wanted: %d", size, Size)
	}

	sum := rest[varint.UvarintSize(size):]
	if len(sum) != Size {
		return nil, fmt.Errorf("invalid length: %d wanted: %d", len(sum), Size)
	}

	encoded := make([]byte, len(b))
	copy(encoded, b)

	return hash.NewDigest(Code, Size, encoded), nil
}
