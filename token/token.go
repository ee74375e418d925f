// Package token defines the tagged token variants emitted by every strategy
// and consumed by the Huffman codec.
//
// Tokens carry a structured payload (Kind plus typed fields) inside the
// pipeline, but are reduced to a single stable string Key only at the
// entropy-coder boundary. Different Kind/payload combinations never
// collide on Key: each strategy's key prefixes are disjoint, and the
// overall key space across one payload's tokens is therefore disjoint too.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which strategy-specific token variant a Token holds.
type Kind uint8

const (
	ObjStart   Kind = iota // "{"
	ObjEnd                 // "}"
	ArrStart               // "["
	ArrEnd                 // "]"
	KeyRef                 // "K<id>"
	Str                    // "S:<value>"
	Int                    // "I:<value>"
	Bool                   // "B:True" / "B:False"
	Null                   // "NULL"
	DeltaIntSeq            // "DELTA_INT_SEQ"
	Delta                  // "D<value>"
	Headers                // "HEADERS"
	HeaderLit              // "<headerLiteral>"
	Data                   // "DATA"
	ColInt                 // "COL_INT_<idx>"
	ColStr                 // "COL_STR_<idx>"
	EndCol                 // "END_COL"
	Severity               // "SEV:<code>" / "SEV:UNKNOWN"
	Message                // "MSG:<value>"
	Raw                    // "RAW:<value>"
	Lexeme                 // literal lexeme, used verbatim as its Key
)

// SeverityUnknown marks a Severity token whose line had no recognized
// severity word.
const SeverityUnknown = -1

// Token is the tagged, strategy-agnostic unit of the inter-stage pipeline.
// Only the fields relevant to Kind are meaningful; the rest are zero.
type Token struct {
	Kind  Kind
	Str   string // Str, HeaderLit, Message, Raw, Lexeme
	Int   int64  // Int
	Bool  bool   // Bool
	ID    int    // KeyRef
	Idx   int    // ColInt, ColStr
	Delta int64  // Delta
	Sev   int    // Severity (SeverityUnknown for SEV:UNKNOWN)
}

func NewObjStart() Token { return Token{Kind: ObjStart} }
func NewObjEnd() Token   { return Token{Kind: ObjEnd} }
func NewArrStart() Token { return Token{Kind: ArrStart} }
func NewArrEnd() Token   { return Token{Kind: ArrEnd} }
func NewKeyRef(id int) Token      { return Token{Kind: KeyRef, ID: id} }
func NewStr(v string) Token       { return Token{Kind: Str, Str: v} }
func NewInt(v int64) Token        { return Token{Kind: Int, Int: v} }
func NewBool(v bool) Token        { return Token{Kind: Bool, Bool: v} }
func NewNull() Token              { return Token{Kind: Null} }
func NewDeltaIntSeq() Token       { return Token{Kind: DeltaIntSeq} }
func NewDelta(v int64) Token      { return Token{Kind: Delta, Delta: v} }
func NewHeaders() Token           { return Token{Kind: Headers} }
func NewHeaderLit(v string) Token { return Token{Kind: HeaderLit, Str: v} }
func NewData() Token              { return Token{Kind: Data} }
func NewColInt(idx int) Token     { return Token{Kind: ColInt, Idx: idx} }
func NewColStr(idx int) Token     { return Token{Kind: ColStr, Idx: idx} }
func NewEndCol() Token            { return Token{Kind: EndCol} }
func NewSeverity(code int) Token  { return Token{Kind: Severity, Sev: code} }
func NewMessage(v string) Token   { return Token{Kind: Message, Str: v} }
func NewRaw(v string) Token       { return Token{Kind: Raw, Str: v} }
func NewLexeme(v string) Token    { return Token{Kind: Lexeme, Str: v} }

// Key returns the token's stable string identity, as used by the Huffman
// codebook and the frequency counter.
func (t Token) Key() string {
	switch t.Kind {
	case ObjStart:
		return "{"
	case ObjEnd:
		return "}"
	case ArrStart:
		return "["
	case ArrEnd:
		return "]"
	case KeyRef:
		return "K" + strconv.Itoa(t.ID)
	case Str:
		return "S:" + t.Str
	case Int:
		return "I:" + strconv.FormatInt(t.Int, 10)
	case Bool:
		if t.Bool {
			return "B:True"
		}
		return "B:False"
	case Null:
		return "NULL"
	case DeltaIntSeq:
		return "DELTA_INT_SEQ"
	case Delta:
		return "D" + strconv.FormatInt(t.Delta, 10)
	case Headers:
		return "HEADERS"
	case HeaderLit:
		return t.Str
	case Data:
		return "DATA"
	case ColInt:
		return "COL_INT_" + strconv.Itoa(t.Idx)
	case ColStr:
		return "COL_STR_" + strconv.Itoa(t.Idx)
	case EndCol:
		return "END_COL"
	case Severity:
		if t.Sev == SeverityUnknown {
			return "SEV:UNKNOWN"
		}
		return "SEV:" + strconv.Itoa(t.Sev)
	case Message:
		return "MSG:" + t.Str
	case Raw:
		return "RAW:" + t.Str
	case Lexeme:
		return t.Str
	default:
		return fmt.Sprintf("?UNKNOWN_KIND_%d", t.Kind)
	}
}

// ParseDeltaKey extracts the integer value from a "D<value>" key.
func ParseDeltaKey(key string) (int64, error) {
	if !strings.HasPrefix(key, "D") {
		return 0, fmt.Errorf("not a delta key: %q", key)
	}
	return strconv.ParseInt(key[1:], 10, 64)
}

// ParseKeyRefKey extracts the dictionary id from a "K<id>" key.
func ParseKeyRefKey(key string) (int, error) {
	if !strings.HasPrefix(key, "K") {
		return 0, fmt.Errorf("not a key-ref key: %q", key)
	}
	return strconv.Atoi(key[1:])
}

// Keys reduces a token slice to its Huffman alphabet: the stable string
// key of each token, in order.
func Keys(tokens []Token) []string {
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = t.Key()
	}
	return keys
}
