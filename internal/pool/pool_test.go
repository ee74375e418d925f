package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/internal/pool"
)

func TestByteBufferWriteAndReset(t *testing.T) {
	bb := pool.NewByteBuffer(4)
	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestContainerBufferPoolRoundTrip(t *testing.T) {
	bb := pool.GetContainerBuffer()
	bb.Write([]byte("data"))
	require.Equal(t, 4, bb.Len())

	pool.PutContainerBuffer(bb)

	bb2 := pool.GetContainerBuffer()
	require.Equal(t, 0, bb2.Len())
}
