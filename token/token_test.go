package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/token"
)

func TestKeysMatchSpecPrefixes(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.NewObjStart(), "{"},
		{token.NewObjEnd(), "}"},
		{token.NewArrStart(), "["},
		{token.NewArrEnd(), "]"},
		{token.NewKeyRef(3), "K3"},
		{token.NewStr("hi"), "S:hi"},
		{token.NewInt(42), "I:42"},
		{token.NewInt(-7), "I:-7"},
		{token.NewBool(true), "B:True"},
		{token.NewBool(false), "B:False"},
		{token.NewNull(), "NULL"},
		{token.NewDeltaIntSeq(), "DELTA_INT_SEQ"},
		{token.NewDelta(12), "D12"},
		{token.NewDelta(-3), "D-3"},
		{token.NewHeaders(), "HEADERS"},
		{token.NewHeaderLit("id"), "id"},
		{token.NewData(), "DATA"},
		{token.NewColInt(0), "COL_INT_0"},
		{token.NewColStr(1), "COL_STR_1"},
		{token.NewEndCol(), "END_COL"},
		{token.NewSeverity(1), "SEV:1"},
		{token.NewSeverity(token.SeverityUnknown), "SEV:UNKNOWN"},
		{token.NewMessage("boom"), "MSG:boom"},
		{token.NewRaw("raw line"), "RAW:raw line"},
		{token.NewLexeme("hello"), "hello"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, c.tok.Key())
	}
}

func TestParseDeltaKey(t *testing.T) {
	v, err := token.ParseDeltaKey("D100")
	require.NoError(t, err)
	require.Equal(t, int64(100), v)

	v, err = token.ParseDeltaKey("D-5")
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)

	_, err = token.ParseDeltaKey("K1")
	require.Error(t, err)
}

func TestParseKeyRefKey(t *testing.T) {
	id, err := token.ParseKeyRefKey("K7")
	require.NoError(t, err)
	require.Equal(t, 7, id)

	_, err = token.ParseKeyRefKey("D1")
	require.Error(t, err)
}
