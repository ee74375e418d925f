package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/strategy"
	"github.com/honganasu06/ifc1/token"
)

func TestLogStrategyDelta(t *testing.T) {
	s := strategy.NewLogStrategy()
	input := "2023-01-01 10:00:00 INFO x\n2023-01-01 10:00:01 ERROR y"
	tokens, err := s.Tokenize([]byte(input))
	require.NoError(t, err)

	var deltas []string
	var sevs []string
	var msgs []string
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Delta:
			deltas = append(deltas, tok.Key())
		case token.Severity:
			sevs = append(sevs, tok.Key())
		case token.Message:
			msgs = append(msgs, tok.Key())
		}
	}

	require.Len(t, deltas, 2)
	require.Equal(t, []string{"SEV:1", "SEV:3"}, sevs)
	require.Equal(t, []string{"MSG:x", "MSG:y"}, msgs)

	out, err := s.Reconstruct(token.Keys(tokens), container.Metadata{})
	require.NoError(t, err)
	require.Equal(t,
		"2023-01-01 10:00:00 INFO x\n2023-01-01 10:00:01 ERROR y",
		string(out))
}

func TestLogStrategyRawPassthrough(t *testing.T) {
	s := strategy.NewLogStrategy()
	input := "not a timestamp line\n2023-01-01 10:00:00 DEBUG hi"
	tokens, err := s.Tokenize([]byte(input))
	require.NoError(t, err)

	require.Equal(t, token.Raw, tokens[0].Kind)

	out, err := s.Reconstruct(token.Keys(tokens), container.Metadata{})
	require.NoError(t, err)
	require.Equal(t, "not a timestamp line\n2023-01-01 10:00:00 DEBUG hi", string(out))
}
