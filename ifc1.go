// Package ifc1 is the content-aware lossless file compressor: it detects a
// file's structural kind, applies a format-specific tokenization pipeline,
// entropy-codes the token stream with a canonical Huffman codec, and packs
// the result into a self-describing IFC1 container.
//
// # Basic usage
//
//	if err := ifc1.Compress("access.log", "access.log.ifc"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := ifc1.Decompress("access.log.ifc", "access.log.restored"); err != nil {
//	    log.Fatal(err)
//	}
package ifc1

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coreos/pkg/capnslog"

	"github.com/honganasu06/ifc1/bitio"
	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/detect"
	"github.com/honganasu06/ifc1/errs"
	"github.com/honganasu06/ifc1/huffman"
	"github.com/honganasu06/ifc1/strategy"
	"github.com/honganasu06/ifc1/token"
)

var log = capnslog.NewPackageLogger("github.com/honganasu06/ifc1", "ifc1")

func strategyIDForKind(kind detect.Kind) (container.StrategyID, error) {
	switch kind {
	case detect.JSON:
		return container.JSONStrategyID, nil
	case detect.CSV:
		return container.CSVStrategyID, nil
	case detect.LOG:
		return container.LogStrategyID, nil
	case detect.TEXT:
		return container.TextStrategyID, nil
	default:
		return 0, fmt.Errorf("%w: kind %v", errs.ErrUnsupportedFormat, kind)
	}
}

// Compress detects inputPath's structural kind, tokenizes and entropy-codes
// its contents, and writes an IFC1 container to outputPath.
//
// On any failure, outputPath is left untouched: Compress writes to a
// temporary file in the same directory and renames it into place only on
// success, so a failed compression never leaves a partial or corrupt
// output file behind.
func Compress(inputPath, outputPath string) error {
	kind, err := detect.Detect(inputPath)
	if err != nil {
		return err
	}

	strategyID, err := strategyIDForKind(kind)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	strat := strategy.New(strategyID)

	return writeAtomically(outputPath, func(f *os.File) error {
		if strat.Streaming() {
			return compressStreaming(f, strat, strategyID, data)
		}
		return compressOneShot(f, strat, strategyID, data)
	})
}

func compressOneShot(f *os.File, strat strategy.Strategy, strategyID container.StrategyID, data []byte) error {
	tokens, err := strat.Tokenize(data)
	if err != nil {
		return err
	}
	keys := token.Keys(tokens)

	codec := huffman.New()
	if err := codec.Build(keys); err != nil {
		return err
	}

	w := bitio.NewWriter(len(keys) / 4)
	if err := codec.Encode(keys, w); err != nil {
		return err
	}
	w.Close()

	meta := container.Metadata{
		HuffmanTree:  codec.Reverse(),
		TokenCount:   codec.TokenCount(),
		DictMain:     strat.DictMain(),
		DictCols:     strat.DictCols(),
		OriginalSize: uint64(len(data)),
	}

	log.Infof("compressed %s strategy with %d tokens into %d bits", strategyID, codec.TokenCount(), w.BitLen())

	return container.Write(f, strategyID, meta, w.Bytes())
}

// compressStreaming implements the text strategy's two-pass path: pass 1
// trains the codebook without holding any payload bytes, then the header
// (already carrying token_count) is written, and pass 2 re-tokenizes,
// encodes the full token list into an in-memory payload, and writes it
// straight after the header.
func compressStreaming(f *os.File, strat strategy.Strategy, strategyID container.StrategyID, data []byte) error {
	trainTokens, err := strat.Tokenize(data)
	if err != nil {
		return err
	}
	trainKeys := token.Keys(trainTokens)

	codec := huffman.New()
	if err := codec.Build(trainKeys); err != nil {
		return err
	}

	meta := container.Metadata{
		HuffmanTree:  codec.Reverse(),
		TokenCount:   codec.TokenCount(),
		DictMain:     strat.DictMain(),
		DictCols:     strat.DictCols(),
		OriginalSize: uint64(len(data)),
	}

	if err := container.WriteHeader(f, strategyID, meta); err != nil {
		return err
	}

	encodeTokens, err := strat.Tokenize(data)
	if err != nil {
		return err
	}
	encodeKeys := token.Keys(encodeTokens)

	w := bitio.NewWriter(len(encodeKeys) / 4)
	if err := codec.Encode(encodeKeys, w); err != nil {
		return err
	}
	w.Close()

	log.Infof("streamed %s strategy with %d tokens into %d bits", strategyID, codec.TokenCount(), w.BitLen())

	_, err = f.Write(w.Bytes())

	return err
}

// Decompress reads an IFC1 container from inputPath, decodes its token
// stream, reconstructs the original (or semantically equivalent) content,
// and writes it to outputPath. See Compress for the atomic-write policy on
// failure.
func Decompress(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errs.ErrFileNotFound, inputPath)
		}
		return err
	}
	defer f.Close()

	hdr, payload, err := container.Read(f)
	if err != nil {
		return err
	}

	strat := strategy.New(hdr.StrategyID)
	if strat == nil {
		return fmt.Errorf("%w: unknown strategy id %d", errs.ErrInvalidContainer, hdr.StrategyID)
	}

	r := bitio.NewReader(payload)
	keys, err := huffman.Decode(r, hdr.Metadata.HuffmanTree, hdr.Metadata.TokenCount)
	if err != nil {
		return err
	}

	out, err := strat.Reconstruct(keys, hdr.Metadata)
	if err != nil {
		return err
	}

	log.Infof("decompressed %s strategy: %d tokens, %d output bytes", hdr.StrategyID, len(keys), len(out))

	return writeAtomically(outputPath, func(f *os.File) error {
		_, err := f.Write(out)
		return err
	})
}

// writeAtomically invokes fn with a freshly created temp file in
// outputPath's directory, renaming it into place on success and removing
// it on any failure so outputPath is never left partially written.
func writeAtomically(outputPath string, fn func(f *os.File) error) (err error) {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".ifc1-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		tmp.Close()
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, outputPath)
}
