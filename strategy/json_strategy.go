package strategy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/delta"
	"github.com/honganasu06/ifc1/dictcodec"
	"github.com/honganasu06/ifc1/errs"
	"github.com/honganasu06/ifc1/token"
)

// jsonObject preserves source key order, which Go's map[string]any decoding
// would otherwise discard and JSONStrategy needs for both S2's dictionary
// assignment order and pretty-printed reconstruction.
type jsonObject struct {
	keys []string
	vals []any
}

type jsonArray []any

// JSONStrategy implements structural flattening of a JSON document: object
// keys are interned into a dictionary, and arrays of 3+ strictly increasing
// integers are rewritten as a delta sequence.
type JSONStrategy struct {
	dict *dictcodec.Codec
}

func NewJSONStrategy() *JSONStrategy {
	return &JSONStrategy{dict: dictcodec.New()}
}

func (s *JSONStrategy) ID() container.StrategyID { return container.JSONStrategyID }
func (s *JSONStrategy) Streaming() bool          { return false }

func (s *JSONStrategy) DictMain() map[string]string            { return s.dict.ToDict() }
func (s *JSONStrategy) DictCols() map[string]map[string]string { return nil }

// Tokenize parses data as a single JSON value and walks it depth-first. It
// is a pure function of data: each call starts from a fresh dictionary, so
// results (and dictionary id assignment) are identical across repeated
// calls on the same input.
func (s *JSONStrategy) Tokenize(data []byte) ([]token.Token, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	root, err := parseJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, err)
	}

	s.dict = dictcodec.New()

	var tokens []token.Token
	if err := s.tokenizeValue(root, &tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

func parseJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseJSONFromToken(dec, tok)
}

func parseJSONFromToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &jsonObject{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.keys = append(obj.keys, key)
				obj.vals = append(obj.vals, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var arr jsonArray
			for dec.More() {
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return nil, fmt.Errorf("floats are not a supported input type: %q", t.String())
		}
		return i, nil
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func (s *JSONStrategy) tokenizeValue(v any, tokens *[]token.Token) error {
	switch val := v.(type) {
	case *jsonObject:
		*tokens = append(*tokens, token.NewObjStart())
		for i, k := range val.keys {
			id := s.dict.GetID(k)
			*tokens = append(*tokens, token.NewKeyRef(id))
			if err := s.tokenizeValue(val.vals[i], tokens); err != nil {
				return err
			}
		}
		*tokens = append(*tokens, token.NewObjEnd())
	case jsonArray:
		if isMonotonicIntRun(val) {
			ints := make([]int64, len(val))
			for i, e := range val {
				ints[i] = e.(int64)
			}
			deltas := delta.Encode(ints)

			*tokens = append(*tokens, token.NewArrStart(), token.NewDeltaIntSeq())
			for _, d := range deltas {
				*tokens = append(*tokens, token.NewDelta(d))
			}
			*tokens = append(*tokens, token.NewArrEnd())

			return nil
		}

		*tokens = append(*tokens, token.NewArrStart())
		for _, e := range val {
			if err := s.tokenizeValue(e, tokens); err != nil {
				return err
			}
		}
		*tokens = append(*tokens, token.NewArrEnd())
	case string:
		*tokens = append(*tokens, token.NewStr(val))
	case int64:
		*tokens = append(*tokens, token.NewInt(val))
	case bool:
		*tokens = append(*tokens, token.NewBool(val))
	case nil:
		*tokens = append(*tokens, token.NewNull())
	default:
		return fmt.Errorf("%w: unrecognized JSON value %T", errs.ErrUnsupportedFormat, val)
	}

	return nil
}

// isMonotonicIntRun reports whether arr qualifies for DELTA_INT_SEQ
// rewriting: at least 3 elements, all integers, strictly increasing.
func isMonotonicIntRun(arr jsonArray) bool {
	if len(arr) < 3 {
		return false
	}

	prev, ok := arr[0].(int64)
	if !ok {
		return false
	}

	for _, e := range arr[1:] {
		v, ok := e.(int64)
		if !ok || v <= prev {
			return false
		}
		prev = v
	}

	return true
}

// Reconstruct rebuilds the parsed JSON value from keys and re-serializes it
// with 2-space indentation.
func (s *JSONStrategy) Reconstruct(keys []string, meta container.Metadata) ([]byte, error) {
	dict, err := dictcodec.FromDict(meta.DictMain)
	if err != nil {
		return nil, fmt.Errorf("%w: key dictionary: %v", errs.ErrMalformedTokenStream, err)
	}

	cur := newCursor(keys)
	val, err := reconstructJSONValue(cur, dict)
	if err != nil {
		return nil, err
	}
	if cur.more() {
		return nil, fmt.Errorf("%w: trailing tokens after top-level value", errs.ErrMalformedTokenStream)
	}

	var buf strings.Builder
	renderJSONValue(val, 0, &buf)
	buf.WriteByte('\n')

	return []byte(buf.String()), nil
}

func reconstructJSONValue(cur *cursor, dict *dictcodec.Codec) (any, error) {
	key, ok := cur.next()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of token stream", errs.ErrMalformedTokenStream)
	}

	switch {
	case key == "{":
		obj := &jsonObject{}
		for {
			peek, ok := cur.peek()
			if !ok {
				return nil, fmt.Errorf("%w: unterminated object", errs.ErrMalformedTokenStream)
			}
			if peek == "}" {
				cur.next()
				return obj, nil
			}

			id, err := token.ParseKeyRefKey(peek)
			if err != nil {
				return nil, fmt.Errorf("%w: expected key ref, got %q", errs.ErrMalformedTokenStream, peek)
			}
			cur.next()

			name, ok := dict.GetValue(id)
			if !ok {
				return nil, fmt.Errorf("%w: key id %d", errs.ErrDictionaryMiss, id)
			}

			val, err := reconstructJSONValue(cur, dict)
			if err != nil {
				return nil, err
			}

			obj.keys = append(obj.keys, name)
			obj.vals = append(obj.vals, val)
		}
	case key == "[":
		peek, ok := cur.peek()
		if ok && peek == "DELTA_INT_SEQ" {
			cur.next()

			var deltas []int64
			for {
				p, ok := cur.peek()
				if !ok {
					return nil, fmt.Errorf("%w: unterminated delta array", errs.ErrMalformedTokenStream)
				}
				if p == "]" {
					cur.next()
					break
				}

				d, err := token.ParseDeltaKey(p)
				if err != nil {
					return nil, fmt.Errorf("%w: expected delta, got %q", errs.ErrMalformedTokenStream, p)
				}
				cur.next()
				deltas = append(deltas, d)
			}

			ints := delta.Decode(deltas)
			arr := make(jsonArray, len(ints))
			for i, v := range ints {
				arr[i] = v
			}

			return arr, nil
		}

		var arr jsonArray
		for {
			p, ok := cur.peek()
			if !ok {
				return nil, fmt.Errorf("%w: unterminated array", errs.ErrMalformedTokenStream)
			}
			if p == "]" {
				cur.next()
				return arr, nil
			}

			v, err := reconstructJSONValue(cur, dict)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	case key == "NULL":
		return nil, nil
	case key == "B:True":
		return true, nil
	case key == "B:False":
		return false, nil
	case strings.HasPrefix(key, "S:"):
		return key[len("S:"):], nil
	case strings.HasPrefix(key, "I:"):
		return strconv.ParseInt(key[len("I:"):], 10, 64)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", errs.ErrMalformedTokenStream, key)
	}
}

func renderJSONValue(v any, depth int, buf *strings.Builder) {
	indent := strings.Repeat("  ", depth)
	childIndent := strings.Repeat("  ", depth+1)

	switch val := v.(type) {
	case *jsonObject:
		if len(val.keys) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, k := range val.keys {
			buf.WriteString(childIndent)
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteString(": ")
			renderJSONValue(val.vals[i], depth+1, buf)
			if i < len(val.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent + "}")
	case jsonArray:
		if len(val) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i, e := range val {
			buf.WriteString(childIndent)
			renderJSONValue(e, depth+1, buf)
			if i < len(val)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent + "]")
	case string:
		kb, _ := json.Marshal(val)
		buf.Write(kb)
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case nil:
		buf.WriteString("null")
	}
}
