// Package md5 implements the MD5 message digest (RFC 1321) as a streaming
// engine plus a multihash hasher built on it.
//
// MD5 is cryptographically broken. It is provided for compatibility with
// existing reference hashes, not for new designs.
package md5

import (
	"encoding/binary"
	"errors"
	"hash"
)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize is the number of bytes consumed by one compression.
const BlockSize = 64

// ErrFinalized is returned when a context is written to or finalized after
// Finalize without an intervening Reset.
var ErrFinalized = errors.New("md5: context already finalized")

// Digest is the 16 byte MD5 output.
type Digest [Size]byte

var padding = [BlockSize]byte{0x80}

var _ hash.Hash = (*Context)(nil)

// Context accumulates input for a single digest computation. The zero value is
// ready for use and behaves like the result of New.
//
// A Context implements hash.Hash. Write never fails before Finalize.
type Context struct {
	s     State
	buf   [BlockSize]byte
	count uint64 // bits processed, mod 2^64
	ready bool
	done  bool
}

// New returns a context initialised for a fresh digest.
func New() *Context {
	c := new(Context)
	c.Reset()
	return c
}

// Reset returns the context to its initial state. It is the only way to reuse
// a context after Finalize.
func (c *Context) Reset() {
	c.s = initState
	c.count = 0
	c.ready = true
	c.done = false
}

// ensureInit resets a zero value context on first use.
func (c *Context) ensureInit() {
	if !c.ready && !c.done {
		c.Reset()
	}
}

func (c *Context) Size() int { return Size }

func (c *Context) BlockSize() int { return BlockSize }

// Write absorbs p, compressing every complete block. The bit count wraps
// silently for inputs longer than 2^64 bits.
func (c *Context) Write(p []byte) (int, error) {
	if c.done {
		return 0, ErrFinalized
	}
	c.ensureInit()
	c.write(p)
	return len(p), nil
}

func (c *Context) write(p []byte) {
	have := int((c.count >> 3) & (BlockSize - 1))
	need := BlockSize - have

	c.count += uint64(len(p)) << 3

	if len(p) >= need {
		if have != 0 {
			copy(c.buf[have:], p[:need])
			c.s = Compress(c.s, &c.buf)
			p = p[need:]
			have = 0
		}
		for len(p) >= BlockSize {
			c.s = Compress(c.s, (*[BlockSize]byte)(p[:BlockSize]))
			p = p[BlockSize:]
		}
	}

	if len(p) != 0 {
		copy(c.buf[have:], p)
	}
}

// pad appends 0x80, zeros up to 56 mod 64 and the little endian bit count.
func (c *Context) pad() {
	var count [8]byte
	binary.LittleEndian.PutUint64(count[:], c.count)

	padlen := BlockSize - int((c.count>>3)&(BlockSize-1))
	if padlen < 1+8 {
		padlen += BlockSize
	}
	c.write(padding[:padlen-8])
	c.write(count[:])
}

// Finalize pads the input, returns the digest and wipes the context. Further
// calls to Write or Finalize fail with ErrFinalized until Reset is called.
func (c *Context) Finalize() (Digest, error) {
	var d Digest
	if c.done {
		return d, ErrFinalized
	}
	c.ensureInit()
	defer c.wipe()

	c.pad()
	for i, w := range c.s {
		binary.LittleEndian.PutUint32(d[i*4:], w)
	}
	return d, nil
}

func (c *Context) wipe() {
	*c = Context{done: true}
}

// Sum appends the digest of the data written so far to b. Unlike Finalize it
// leaves the context usable. It panics when called on a finalized context.
func (c *Context) Sum(b []byte) []byte {
	cp := *c
	d, err := cp.Finalize()
	if err != nil {
		panic(err)
	}
	return append(b, d[:]...)
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) Digest {
	c := New()
	c.write(data)
	d, _ := c.Finalize()
	return d
}
