package strategy

import (
	"regexp"
	"strings"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/token"
)

var textLexemeRE = regexp.MustCompile(`\w+|[^\w\s]|\s+`)

// TextStrategy implements plain lexical tokenization: word runs,
// single non-word/non-space characters, and whitespace runs, with no
// gaps between matches. Each lexeme is its own token, keyed by its
// literal text, so reconstruction is a plain concatenation.
//
// Tokenize is a pure function of its input, which is what makes this
// strategy's two-pass streaming variant possible: a caller trains a
// codebook on one call and re-tokenizes on a second, identical call,
// without this type holding any state across calls.
type TextStrategy struct{}

func NewTextStrategy() *TextStrategy {
	return &TextStrategy{}
}

func (s *TextStrategy) ID() container.StrategyID { return container.TextStrategyID }
func (s *TextStrategy) Streaming() bool          { return true }

func (s *TextStrategy) DictMain() map[string]string            { return nil }
func (s *TextStrategy) DictCols() map[string]map[string]string { return nil }

func (s *TextStrategy) Tokenize(data []byte) ([]token.Token, error) {
	text := string(data)
	lexemes := textLexemeRE.FindAllString(text, -1)

	tokens := make([]token.Token, len(lexemes))
	for i, lex := range lexemes {
		tokens[i] = token.NewLexeme(lex)
	}

	return tokens, nil
}

// Reconstruct concatenates the lexeme keys verbatim, reproducing the
// original byte sequence exactly.
func (s *TextStrategy) Reconstruct(keys []string, _ container.Metadata) ([]byte, error) {
	var buf strings.Builder
	for _, k := range keys {
		buf.WriteString(k)
	}

	return []byte(buf.String()), nil
}
