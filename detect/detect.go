// Package detect classifies an input file's structural kind from its
// extension, the way IFC1 picks a strategy.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/honganasu06/ifc1/errs"
)

// Kind is one of the four structural kinds IFC1 recognizes.
type Kind uint8

const (
	JSON Kind = iota + 1
	CSV
	LOG
	TEXT
)

func (k Kind) String() string {
	switch k {
	case JSON:
		return "json"
	case CSV:
		return "csv"
	case LOG:
		return "log"
	case TEXT:
		return "text"
	default:
		return "unknown"
	}
}

// Detect classifies path by its lowercased extension. Magic-byte sniffing
// is not used.
func Detect(path string) (Kind, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return 0, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return JSON, nil
	case ".csv":
		return CSV, nil
	case ".log":
		return LOG, nil
	case ".txt", ".md":
		return TEXT, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, ext)
	}
}

// QuickHash returns a cheap xxHash64 fingerprint of a file's contents, for
// display in `stats` output only. It is never stored in the container and
// is not used by the decoder to validate anything — IFC1 deliberately
// carries no integrity checksum beyond its magic and version bytes.
func QuickHash(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	return xxhash.Sum64(data), nil
}
