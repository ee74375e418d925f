package huffman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/bitio"
	"github.com/honganasu06/ifc1/huffman"
)

func TestBuildEncodeDecodeRoundTrip(t *testing.T) {
	keys := []string{"a", "b", "a", "c", "a", "b"}

	c := huffman.New()
	require.NoError(t, c.Build(keys))

	w := bitio.NewWriter(0)
	require.NoError(t, c.Encode(keys, w))
	w.Close()

	r := bitio.NewReader(w.Bytes())
	decoded, err := huffman.Decode(r, c.Reverse(), c.TokenCount())
	require.NoError(t, err)
	require.Equal(t, keys, decoded)
}

func TestDegenerateSingleSymbol(t *testing.T) {
	keys := []string{"a", "a", "a"}

	c := huffman.New()
	require.NoError(t, c.Build(keys))
	require.Equal(t, map[string]string{"0": "a"}, c.Reverse())

	w := bitio.NewWriter(0)
	require.NoError(t, c.Encode(keys, w))
	w.Close()

	require.Equal(t, []byte{0x00}, w.Bytes())

	r := bitio.NewReader(w.Bytes())
	decoded, err := huffman.Decode(r, c.Reverse(), 3)
	require.NoError(t, err)
	require.Equal(t, keys, decoded)
}

func TestEncodeUnknownTokenFails(t *testing.T) {
	c := huffman.New()
	require.NoError(t, c.Build([]string{"a", "b"}))

	w := bitio.NewWriter(0)
	err := c.Encode([]string{"a", "zzz"}, w)
	require.Error(t, err)
}

func TestEmptyInputProducesEmptyCodebook(t *testing.T) {
	c := huffman.New()
	require.NoError(t, c.Build(nil))
	require.Empty(t, c.Reverse())
	require.Equal(t, 0, c.TokenCount())
}

func TestDecodeTruncatedStreamIsMalformed(t *testing.T) {
	keys := []string{"a", "b", "c"}
	c := huffman.New()
	require.NoError(t, c.Build(keys))

	// No payload bytes at all: the very first bit read fails, so decoding
	// toward a limit > 0 must report the stream as malformed rather than
	// silently returning a short result.
	r := bitio.NewReader(nil)
	_, err := huffman.Decode(r, c.Reverse(), 3)
	require.Error(t, err)
}
