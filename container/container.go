// Package container implements the IFC1 on-disk format: a fixed header, a
// length-prefixed JSON metadata sidecar, and the packed Huffman payload
// that follows it.
//
//	offset  size      field
//	0       4         MAGIC = "IFC1"
//	4       1         VERSION = 1
//	5       1         STRATEGY_ID
//	6       4         META_LEN (uint32, big-endian)
//	10      META_LEN  META (UTF-8 JSON)
//	10+ML   *         PAYLOAD
package container

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coreos/pkg/capnslog"

	"github.com/honganasu06/ifc1/errs"
	"github.com/honganasu06/ifc1/internal/pool"
)

var log = capnslog.NewPackageLogger("github.com/honganasu06/ifc1", "container")

// Magic is the fixed 4-byte identifier at the start of every IFC1 file.
var Magic = [4]byte{'I', 'F', 'C', '1'}

// Version is the only container version this implementation writes or reads.
const Version = 1

// StrategyID identifies which strategy produced (and must reconstruct) a
// container's payload.
type StrategyID uint8

const (
	JSONStrategyID StrategyID = 1
	CSVStrategyID  StrategyID = 2
	LogStrategyID  StrategyID = 3
	TextStrategyID StrategyID = 4
)

func (s StrategyID) String() string {
	switch s {
	case JSONStrategyID:
		return "JSON"
	case CSVStrategyID:
		return "CSV"
	case LogStrategyID:
		return "LOG"
	case TextStrategyID:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// Metadata is the JSON sidecar stored between the header and the payload.
// HuffmanTree, TokenCount and OriginalSize are written for every strategy;
// the dictionary fields are populated as each strategy's tokenization
// requires.
type Metadata struct {
	// HuffmanTree maps a Huffman bit-string code to the token key it decodes to.
	HuffmanTree map[string]string `json:"huffman_tree"`

	// TokenCount bounds decoding: the codec stops after this many tokens
	// even if trailing pad bits remain. Always populated by this
	// implementation (see SPEC_FULL.md §F).
	TokenCount int `json:"token_count"`

	// DictMain is the JSON strategy's key dictionary, id (as a string) -> key.
	DictMain map[string]string `json:"dict_main,omitempty"`

	// DictCols is the CSV strategy's per-column string dictionaries,
	// column index (as a string) -> (id (as a string) -> value).
	DictCols map[string]map[string]string `json:"dict_cols,omitempty"`

	// OriginalSize is the input file's byte length, recorded so stats can
	// report a true compression ratio without decompressing.
	OriginalSize uint64 `json:"original_size"`
}

// WriteHeader writes MAGIC, VERSION, STRATEGY_ID, META_LEN and META to w.
// The caller is responsible for writing the payload bytes immediately
// afterward — this is the entry point both the one-shot and the two-pass
// streaming compress paths share.
func WriteHeader(w io.Writer, strategyID StrategyID, meta Metadata) error {
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	buf.Write(Magic[:])
	buf.Write([]byte{Version, byte(strategyID)})

	var lenBytes [4]byte
	binary.BigEndian.PutUint32(lenBytes[:], uint32(len(metaBytes)))
	buf.Write(lenBytes[:])
	buf.Write(metaBytes)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	log.Infof("wrote IFC1 header: strategy=%s meta_len=%d", strategyID, len(metaBytes))

	return nil
}

// Write writes a complete container: header followed by payload. This is
// the non-streaming compress path.
func Write(w io.Writer, strategyID StrategyID, meta Metadata, payload []byte) error {
	if err := WriteHeader(w, strategyID, meta); err != nil {
		return err
	}

	_, err := w.Write(payload)

	return err
}

// Header is the decoded fixed-size prefix plus metadata of an IFC1 file,
// without the payload.
type Header struct {
	StrategyID StrategyID
	Metadata   Metadata
	MetaLen    int
}

// ReadHeader reads and validates MAGIC/VERSION, then decodes META. It
// leaves r positioned at the start of the payload.
func ReadHeader(r io.Reader) (Header, error) {
	var fixed [10]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return Header{}, fmt.Errorf("%w: %v", errs.ErrInvalidContainer, err)
	}

	if [4]byte(fixed[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidContainer, fixed[0:4])
	}

	version := fixed[4]
	if version != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, version)
	}

	strategyID := StrategyID(fixed[5])
	metaLen := binary.BigEndian.Uint32(fixed[6:10])

	metaBytes := make([]byte, metaLen)
	if _, err := io.ReadFull(r, metaBytes); err != nil {
		return Header{}, fmt.Errorf("%w: short metadata read: %v", errs.ErrInvalidContainer, err)
	}

	var meta Metadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return Header{}, fmt.Errorf("%w: metadata JSON: %v", errs.ErrInvalidContainer, err)
	}

	return Header{StrategyID: strategyID, Metadata: meta, MetaLen: len(metaBytes)}, nil
}

// Read reads an entire container: header plus the remaining payload bytes.
func Read(r io.Reader) (Header, []byte, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: payload read: %v", errs.ErrInvalidContainer, err)
	}

	log.Infof("read IFC1 container: strategy=%s meta_len=%d payload_len=%d", hdr.StrategyID, hdr.MetaLen, len(payload))

	return hdr, payload, nil
}
