package container_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/errs"
)

func TestWriteReadRoundTrip(t *testing.T) {
	meta := container.Metadata{
		HuffmanTree:  map[string]string{"0": "a", "10": "b", "11": "c"},
		TokenCount:   5,
		DictMain:     map[string]string{"1": "name"},
		OriginalSize: 42,
	}

	var buf bytes.Buffer
	require.NoError(t, container.Write(&buf, container.JSONStrategyID, meta, []byte{0xAB, 0xCD}))

	hdr, payload, err := container.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, container.JSONStrategyID, hdr.StrategyID)
	require.Equal(t, meta.HuffmanTree, hdr.Metadata.HuffmanTree)
	require.Equal(t, meta.TokenCount, hdr.Metadata.TokenCount)
	require.Equal(t, meta.DictMain, hdr.Metadata.DictMain)
	require.Equal(t, uint64(42), hdr.Metadata.OriginalSize)
	require.Equal(t, []byte{0xAB, 0xCD}, payload)
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX\x01\x01\x00\x00\x00\x00")
	_, _, err := container.Read(buf)
	require.ErrorIs(t, err, errs.ErrInvalidContainer)
}

func TestReadRejectsUnsupportedVersion(t *testing.T) {
	var raw []byte
	raw = append(raw, container.Magic[:]...)
	raw = append(raw, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00)

	_, _, err := container.Read(bytes.NewReader(raw))
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestWriteHeaderThenStreamedPayload(t *testing.T) {
	meta := container.Metadata{
		HuffmanTree: map[string]string{"0": "tok"},
		TokenCount:  2,
	}

	var buf bytes.Buffer
	require.NoError(t, container.WriteHeader(&buf, container.TextStrategyID, meta))
	buf.Write([]byte{0xFF})

	hdr, payload, err := container.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, container.TextStrategyID, hdr.StrategyID)
	require.Equal(t, []byte{0xFF}, payload)
}
