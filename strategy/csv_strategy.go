package strategy

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/delta"
	"github.com/honganasu06/ifc1/dictcodec"
	"github.com/honganasu06/ifc1/errs"
	"github.com/honganasu06/ifc1/token"
)

// CSVStrategy implements columnar transpose tokenization: each column is
// classified as all-integer (delta-encoded) or string (per-column
// dictionary-encoded).
type CSVStrategy struct {
	colDicts map[int]*dictcodec.Codec
}

func NewCSVStrategy() *CSVStrategy {
	return &CSVStrategy{colDicts: make(map[int]*dictcodec.Codec)}
}

func (s *CSVStrategy) ID() container.StrategyID { return container.CSVStrategyID }
func (s *CSVStrategy) Streaming() bool          { return false }

func (s *CSVStrategy) DictMain() map[string]string { return nil }

func (s *CSVStrategy) DictCols() map[string]map[string]string {
	if len(s.colDicts) == 0 {
		return nil
	}

	out := make(map[string]map[string]string, len(s.colDicts))
	for idx, c := range s.colDicts {
		out[strconv.Itoa(idx)] = c.ToDict()
	}

	return out
}

// Tokenize reads data as CSV (first row is headers), transposes it into
// columns, and classifies each column as int or string.
func (s *CSVStrategy) Tokenize(data []byte) ([]token.Token, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty CSV file", errs.ErrUnsupportedFormat)
	}

	headers := rows[0]
	dataRows := rows[1:]
	numCols := len(headers)

	columns := make([][]string, numCols)
	for _, row := range dataRows {
		for i := 0; i < numCols; i++ {
			var v string
			if i < len(row) {
				v = row[i]
			}
			columns[i] = append(columns[i], v)
		}
	}

	s.colDicts = make(map[int]*dictcodec.Codec)

	var tokens []token.Token
	tokens = append(tokens, token.NewHeaders())
	for _, h := range headers {
		tokens = append(tokens, token.NewHeaderLit(h))
	}
	tokens = append(tokens, token.NewData())

	for i := 0; i < numCols; i++ {
		col := columns[i]
		if ints, ok := tryParseAllInts(col); ok {
			tokens = append(tokens, token.NewColInt(i))
			for _, d := range delta.Encode(ints) {
				tokens = append(tokens, token.NewDelta(d))
			}
			tokens = append(tokens, token.NewEndCol())

			continue
		}

		dict := dictcodec.New()
		s.colDicts[i] = dict

		tokens = append(tokens, token.NewColStr(i))
		for _, v := range col {
			tokens = append(tokens, token.NewKeyRef(dict.GetID(v)))
		}
		tokens = append(tokens, token.NewEndCol())
	}

	return tokens, nil
}

func tryParseAllInts(col []string) ([]int64, bool) {
	if len(col) == 0 {
		return nil, false
	}

	ints := make([]int64, len(col))
	for i, v := range col {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, false
		}
		ints[i] = n
	}

	return ints, true
}

// Reconstruct rebuilds the column set from keys and re-emits it as CSV
// with '\n' line terminators.
func (s *CSVStrategy) Reconstruct(keys []string, meta container.Metadata) ([]byte, error) {
	cur := newCursor(keys)

	first, ok := cur.next()
	if !ok || first != "HEADERS" {
		return nil, fmt.Errorf("%w: expected HEADERS", errs.ErrMalformedTokenStream)
	}

	var headers []string
	for {
		peek, ok := cur.peek()
		if !ok {
			return nil, fmt.Errorf("%w: missing DATA marker", errs.ErrMalformedTokenStream)
		}
		if peek == "DATA" {
			cur.next()
			break
		}
		cur.next()
		headers = append(headers, peek)
	}

	columns := make(map[int][]string)
	var order []int

	for cur.more() {
		marker, _ := cur.peek()
		idx, isInt, ok := parseColMarker(marker)
		if !ok {
			return nil, fmt.Errorf("%w: expected column marker, got %q", errs.ErrMalformedTokenStream, marker)
		}
		cur.next()
		order = append(order, idx)

		var col []string
		if isInt {
			var deltas []int64
			for {
				p, ok := cur.peek()
				if !ok {
					return nil, fmt.Errorf("%w: unterminated int column", errs.ErrMalformedTokenStream)
				}
				if p == "END_COL" {
					cur.next()
					break
				}
				d, err := token.ParseDeltaKey(p)
				if err != nil {
					return nil, fmt.Errorf("%w: expected delta in column %d, got %q", errs.ErrMalformedTokenStream, idx, p)
				}
				cur.next()
				deltas = append(deltas, d)
			}

			for _, v := range delta.Decode(deltas) {
				col = append(col, strconv.FormatInt(v, 10))
			}
		} else {
			colDict := meta.DictCols[strconv.Itoa(idx)]
			for {
				p, ok := cur.peek()
				if !ok {
					return nil, fmt.Errorf("%w: unterminated string column", errs.ErrMalformedTokenStream)
				}
				if p == "END_COL" {
					cur.next()
					break
				}
				id, err := token.ParseKeyRefKey(p)
				if err != nil {
					return nil, fmt.Errorf("%w: expected key ref in column %d, got %q", errs.ErrMalformedTokenStream, idx, p)
				}
				cur.next()

				v, ok := colDict[strconv.Itoa(id)]
				if !ok {
					return nil, fmt.Errorf("%w: column %d id %d", errs.ErrDictionaryMiss, idx, id)
				}
				col = append(col, v)
			}
		}

		columns[idx] = col
	}

	rowCount := -1
	for _, idx := range order {
		if rowCount == -1 {
			rowCount = len(columns[idx])
			continue
		}
		if len(columns[idx]) != rowCount {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", errs.ErrColumnLengthMismatch, idx, len(columns[idx]), rowCount)
		}
	}
	if rowCount == -1 {
		rowCount = 0
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for r := 0; r < rowCount; r++ {
		row := make([]string, len(headers))
		for i := range headers {
			row[i] = columns[i][r]
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return []byte(buf.String()), nil
}

func parseColMarker(key string) (idx int, isInt bool, ok bool) {
	switch {
	case strings.HasPrefix(key, "COL_INT_"):
		n, err := strconv.Atoi(strings.TrimPrefix(key, "COL_INT_"))
		return n, true, err == nil
	case strings.HasPrefix(key, "COL_STR_"):
		n, err := strconv.Atoi(strings.TrimPrefix(key, "COL_STR_"))
		return n, false, err == nil
	default:
		return 0, false, false
	}
}
