package dictcodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganasu06/ifc1/dictcodec"
)

func TestGetIDAssignsMonotonicIDsAndIsIdempotent(t *testing.T) {
	c := dictcodec.New()

	id1 := c.GetID("name")
	id2 := c.GetID("role")
	id1Again := c.GetID("name")

	require.Equal(t, 1, id1)
	require.Equal(t, 2, id2)
	require.Equal(t, id1, id1Again)
}

func TestGetValueRoundTrips(t *testing.T) {
	c := dictcodec.New()
	id := c.GetID("hello")

	v, ok := c.GetValue(id)
	require.True(t, ok)
	require.Equal(t, "hello", v)

	_, ok = c.GetValue(999)
	require.False(t, ok)
}

func TestToDictFromDictRoundTrip(t *testing.T) {
	c := dictcodec.New()
	c.GetID("A")
	c.GetID("B")
	c.GetID("A")

	serialized := c.ToDict()
	restored, err := dictcodec.FromDict(serialized)
	require.NoError(t, err)

	require.Equal(t, 2, restored.Len())

	id := restored.GetID("B")
	require.Equal(t, 2, id)

	next := restored.GetID("C")
	require.Equal(t, 3, next)
}

func TestFromDictEmpty(t *testing.T) {
	restored, err := dictcodec.FromDict(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, 1, restored.GetID("first"))
}
