package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/strategy"
	"github.com/honganasu06/ifc1/token"
)

func TestJSONStrategyMonotonicIntArray(t *testing.T) {
	s := strategy.NewJSONStrategy()
	tokens, err := s.Tokenize([]byte(`[100,101,102,103]`))
	require.NoError(t, err)

	keys := token.Keys(tokens)
	require.Equal(t, []string{"[", "DELTA_INT_SEQ", "D100", "D1", "D1", "D1", "]"}, keys)

	meta := container.Metadata{DictMain: s.DictMain()}
	out, err := s.Reconstruct(keys, meta)
	require.NoError(t, err)
	require.Equal(t, "[\n  100,\n  101,\n  102,\n  103\n]\n", string(out))
}

func TestJSONStrategySmallObject(t *testing.T) {
	s := strategy.NewJSONStrategy()
	input := `{"name":"Alice","role":"admin"}`
	tokens, err := s.Tokenize([]byte(input))
	require.NoError(t, err)

	keyRefs := 0
	strLits := 0
	for _, tok := range tokens {
		if tok.Kind == token.KeyRef {
			keyRefs++
		}
		if tok.Kind == token.Str {
			strLits++
		}
	}
	require.Equal(t, 2, keyRefs)
	require.Equal(t, 2, strLits)

	dict := s.DictMain()
	require.Equal(t, map[string]string{"1": "name", "2": "role"}, dict)

	keys := token.Keys(tokens)
	meta := container.Metadata{DictMain: dict}
	out, err := s.Reconstruct(keys, meta)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"name\": \"Alice\",\n  \"role\": \"admin\"\n}\n", string(out))
}

func TestJSONStrategyRejectsFloats(t *testing.T) {
	s := strategy.NewJSONStrategy()
	_, err := s.Tokenize([]byte(`3.14`))
	require.Error(t, err)
}

func TestJSONStrategyNestedRoundTrip(t *testing.T) {
	s := strategy.NewJSONStrategy()
	input := `{"a":[1,true,null,"x"],"b":{"c":2}}`
	tokens, err := s.Tokenize([]byte(input))
	require.NoError(t, err)

	keys := token.Keys(tokens)
	meta := container.Metadata{DictMain: s.DictMain()}
	out, err := s.Reconstruct(keys, meta)
	require.NoError(t, err)
	require.Contains(t, string(out), `"a": [`)
	require.Contains(t, string(out), `"c": 2`)
}
