package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/bitio"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	bits := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1}

	w := bitio.NewWriter(0)
	for _, b := range bits {
		w.WriteBit(b)
	}
	w.Close()

	r := bitio.NewReader(w.Bytes())
	for i, want := range bits {
		got, err := r.ReadBit()
		require.NoErrorf(t, err, "bit %d", i)
		require.Equal(t, want, got, "bit %d", i)
	}
}

func TestWritePartialBytePadding(t *testing.T) {
	w := bitio.NewWriter(0)
	w.WriteString("000")
	w.Close()

	require.Equal(t, []byte{0x00}, w.Bytes())
}

func TestWriteBitsHighOrderFirst(t *testing.T) {
	w := bitio.NewWriter(0)
	w.WriteBits(0b1011, 4)
	w.Close()

	r := bitio.NewReader(w.Bytes())
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1011), v)
}

func TestReadPastEndReturnsEndOfStream(t *testing.T) {
	w := bitio.NewWriter(0)
	w.WriteBit(1)
	w.Close()

	r := bitio.NewReader(w.Bytes())
	_, err := r.ReadBit()
	require.NoError(t, err)

	// The remaining 7 bits of the byte are zero padding and still readable.
	_, err = r.ReadBits(7)
	require.NoError(t, err)

	_, err = r.ReadBit()
	require.Error(t, err)
	require.True(t, r.Exhausted())
}

func TestCloseIsIdempotentOnByteAlignedWriter(t *testing.T) {
	w := bitio.NewWriter(0)
	w.WriteString("10101010")
	w.Close()
	before := len(w.Bytes())
	w.Close()
	require.Len(t, w.Bytes(), before)
}
