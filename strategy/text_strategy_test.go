package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/strategy"
	"github.com/honganasu06/ifc1/token"
)

func TestTextStrategyRoundTrip(t *testing.T) {
	s := strategy.NewTextStrategy()
	input := "Hello, world!\nSecond  line.\t\n"

	tokens, err := s.Tokenize([]byte(input))
	require.NoError(t, err)

	out, err := s.Reconstruct(token.Keys(tokens), container.Metadata{})
	require.NoError(t, err)
	require.Equal(t, input, string(out))
}

func TestTextStrategyIsStreaming(t *testing.T) {
	s := strategy.NewTextStrategy()
	require.True(t, s.Streaming())
	require.Equal(t, container.TextStrategyID, s.ID())
}

func TestTextStrategyTokenizeIsPureAcrossCalls(t *testing.T) {
	s := strategy.NewTextStrategy()
	input := []byte("abc 123!")

	first, err := s.Tokenize(input)
	require.NoError(t, err)
	second, err := s.Tokenize(input)
	require.NoError(t, err)

	require.Equal(t, token.Keys(first), token.Keys(second))
}
