// Package strategy implements the four content-aware tokenization and
// reconstruction pipelines: JSON, CSV, log, and plain text. Each Strategy
// owns its dictionaries for the lifetime of a single compress or decompress
// call; instances are never reused across files.
package strategy

import (
	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/token"
)

// Strategy is a format-specific tokenizer/reconstructor pair selected by
// file kind.
type Strategy interface {
	// ID returns the container strategy id this implementation writes and
	// expects on decode.
	ID() container.StrategyID

	// Streaming reports whether this strategy uses the two-pass path
	// (train the codebook, write the header, then re-tokenize and encode).
	// Each pass still materializes the full token list, and the encoded
	// payload is buffered in memory before it is written. Tokenize is a pure
	// function of data for every strategy, so streaming callers simply
	// invoke it twice; non-streaming strategies still work correctly if
	// called this way, they just gain nothing from it.
	Streaming() bool

	// Tokenize parses data and emits its token sequence. Called once for
	// non-streaming strategies, or twice (pass 1 to train, pass 2 to
	// encode) for streaming ones.
	Tokenize(data []byte) ([]token.Token, error)

	// Reconstruct rebuilds the original (or semantically equivalent)
	// output from a decoded key sequence and the container metadata that
	// accompanied it.
	Reconstruct(keys []string, meta container.Metadata) ([]byte, error)

	// DictMain returns the key dictionary to persist in metadata, or nil
	// if this strategy doesn't use one.
	DictMain() map[string]string

	// DictCols returns the per-column string dictionaries to persist in
	// metadata, or nil if this strategy doesn't use them.
	DictCols() map[string]map[string]string
}

// New selects a Strategy for the given container strategy id.
func New(id container.StrategyID) Strategy {
	switch id {
	case container.JSONStrategyID:
		return NewJSONStrategy()
	case container.CSVStrategyID:
		return NewCSVStrategy()
	case container.LogStrategyID:
		return NewLogStrategy()
	case container.TextStrategyID:
		return NewTextStrategy()
	default:
		return nil
	}
}
