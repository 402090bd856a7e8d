// Package hash describes multihash digests produced by the hash functions of
// this module.
package hash

// Hasher computes a multihash digest of a byte slice.
type Hasher interface {
	Sum(bytes []byte) (Digest, error)
}

type Digest interface {
	// Code is the multicodec code of the hash function.
	Code() uint64
	// Size is the length of the raw digest in bytes.
	Size() uint64
	// Digest returns the raw digest without the multihash prefix.
	Digest() []byte
	// Bytes returns the multihash encoded digest.
	Bytes() []byte
}

// multihash keeps only the encoded form; the raw digest is its last size
// bytes.
type multihash struct {
	code    uint64
	size    uint64
	encoded []byte
}

func (m multihash) Code() uint64 { return m.code }

func (m multihash) Size() uint64 { return m.size }

func (m multihash) Bytes() []byte { return m.encoded }

func (m multihash) Digest() []byte {
	return m.encoded[uint64(len(m.encoded))-m.size:]
}

// NewDigest wraps an encoded multihash whose trailing size bytes are the raw
// digest. The caller must not modify encoded afterwards.
func NewDigest(code, size uint64, encoded []byte) Digest {
	return multihash{code, size, encoded}
}
