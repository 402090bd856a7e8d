package md5

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/storacha/go-md5auth/testing/helpers"
	"github.com/stretchr/testify/require"
)

var vectors = []struct {
	in  string
	out string
}{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
	{strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},
	{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
}

func digestOf(t *testing.T, chunks ...[]byte) Digest {
	t.Helper()
	c := New()
	for _, chunk := range chunks {
		n, err := c.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}
	d, err := c.Finalize()
	require.NoError(t, err)
	return d
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(fmt.Sprintf("%q", v.in), func(t *testing.T) {
			d := digestOf(t, []byte(v.in))
			require.Equal(t, v.out, hex.EncodeToString(d[:]))

			s := Sum([]byte(v.in))
			require.Equal(t, d, s)
		})
	}
}

func TestBlockBoundaries(t *testing.T) {
	// lengths around the 56 byte padding threshold and block edges
	for _, n := range []int{55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129, 1000} {
		t.Run(fmt.Sprintf("%d bytes", n), func(t *testing.T) {
			data := helpers.RandomBytes(n)
			d := digestOf(t, data)
			require.Equal(t, Digest(stdmd5.Sum(data)), d)
		})
	}
}

func TestChunkingInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		data := helpers.RandomBytes(rng.Intn(600))
		want := Sum(data)

		var chunks [][]byte
		rest := data
		for len(rest) > 0 {
			n := rng.Intn(len(rest) + 1)
			chunks = append(chunks, rest[:n])
			rest = rest[n:]
		}

		require.Equal(t, want, digestOf(t, chunks...))
		require.Equal(t, Digest(stdmd5.Sum(data)), want)
	}
}

func TestZeroLengthWrites(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	want := Sum(data)

	t.Run("interleaved", func(t *testing.T) {
		got := digestOf(t, nil, data[:10], []byte{}, nil, data[10:], []byte{})
		require.Equal(t, want, got)
	})

	t.Run("only empty writes", func(t *testing.T) {
		got := digestOf(t, nil, []byte{}, nil)
		require.Equal(t, Sum(nil), got)
	})
}

func TestDeterminism(t *testing.T) {
	data := helpers.RandomBytes(333)
	require.Equal(t, digestOf(t, data), digestOf(t, data))
}

func TestFinalize(t *testing.T) {
	t.Run("wipes the context", func(t *testing.T) {
		c := New()
		_, err := c.Write([]byte("secret passphrase"))
		require.NoError(t, err)

		_, err = c.Finalize()
		require.NoError(t, err)

		require.Equal(t, State{}, c.s)
		require.Equal(t, [BlockSize]byte{}, c.buf)
		require.Zero(t, c.count)
	})

	t.Run("rejects reuse", func(t *testing.T) {
		c := New()
		_, err := c.Finalize()
		require.NoError(t, err)

		n, err := c.Write([]byte("more"))
		require.ErrorIs(t, err, ErrFinalized)
		require.Zero(t, n)

		_, err = c.Finalize()
		require.ErrorIs(t, err, ErrFinalized)
	})

	t.Run("reset after finalize", func(t *testing.T) {
		c := New()
		_, err := c.Write([]byte("first"))
		require.NoError(t, err)
		_, err = c.Finalize()
		require.NoError(t, err)

		c.Reset()
		_, err = c.Write([]byte("abc"))
		require.NoError(t, err)
		d, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(d[:]))
	})
}

func TestZeroValueContext(t *testing.T) {
	t.Run("write then finalize", func(t *testing.T) {
		var c Context
		_, err := c.Write([]byte("abc"))
		require.NoError(t, err)
		d, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(d[:]))
	})

	t.Run("finalize only", func(t *testing.T) {
		var c Context
		d, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, Sum(nil), d)
	})

	t.Run("sum", func(t *testing.T) {
		var c Context
		require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", hex.EncodeToString(c.Sum(nil)))
	})

	t.Run("finalized context stays finalized", func(t *testing.T) {
		var c Context
		_, err := c.Finalize()
		require.NoError(t, err)
		_, err = c.Write([]byte("abc"))
		require.ErrorIs(t, err, ErrFinalized)
	})
}

func TestSum(t *testing.T) {
	t.Run("does not consume the context", func(t *testing.T) {
		c := New()
		_, err := c.Write([]byte("ab"))
		require.NoError(t, err)

		partial := c.Sum(nil)
		require.Equal(t, "187ef4436122d1cc2f40dc2b92f0eba0", hex.EncodeToString(partial))

		_, err = c.Write([]byte("c"))
		require.NoError(t, err)
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(c.Sum(nil)))
	})

	t.Run("appends to b", func(t *testing.T) {
		c := New()
		out := c.Sum([]byte{0xff})
		require.Len(t, out, 1+Size)
		require.Equal(t, byte(0xff), out[0])
	})

	t.Run("panics when finalized", func(t *testing.T) {
		c := New()
		_, err := c.Finalize()
		require.NoError(t, err)
		require.Panics(t, func() { c.Sum(nil) })
	})
}

func TestHashInterface(t *testing.T) {
	c := New()
	require.Equal(t, Size, c.Size())
	require.Equal(t, BlockSize, c.BlockSize())
}

func TestCompress(t *testing.T) {
	// the padded empty message is a single block
	block := [BlockSize]byte{0x80}
	s := Compress(initState, &block)
	require.Equal(t, State{0xd98c1dd4, 0x04b2008f, 0x980980e9, 0x7e42f8ec}, s)

	t.Run("does not modify its input", func(t *testing.T) {
		in := initState
		_ = Compress(in, &block)
		require.Equal(t, initState, in)
	})
}
