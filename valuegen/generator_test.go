package valuegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextArrayCarriesFromLastPosition(t *testing.T) {
	g := &Generator[uint8]{MaxValues: []uint8{2, 3}}
	values := []uint8{0, 0}

	require.True(t, g.NextArray(values))
	require.Equal(t, []uint8{0, 1}, values)

	require.True(t, g.NextArray(values))
	require.Equal(t, []uint8{0, 2}, values)

	require.True(t, g.NextArray(values))
	require.Equal(t, []uint8{1, 0}, values)

	require.True(t, g.NextArray(values))
	require.Equal(t, []uint8{1, 1}, values)

	require.True(t, g.NextArray(values))
	require.Equal(t, []uint8{1, 2}, values)

	require.False(t, g.NextArray(values))
	require.Equal(t, []uint8{2, 0}, values)
}

func TestSkipArrayMatchesRepeatedNextArray(t *testing.T) {
	g := &Generator[uint8]{MaxValues: []uint8{2, 3}}
	stepped := []uint8{0, 0}
	for i := 0; i < 4; i++ {
		g.NextArray(stepped)
	}

	skipped := []uint8{0, 0}
	g.SkipArray(skipped, 4)

	require.Equal(t, stepped, skipped)
}

func TestNextVectorInverseCarriesFromFirstPosition(t *testing.T) {
	g := &Generator[uint8]{MaxValues: []uint8{2, 3}}
	values := []uint8{0, 0}

	require.True(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{1, 0}, values)

	require.True(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{0, 1}, values)

	require.True(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{1, 1}, values)

	require.True(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{0, 2}, values)

	require.True(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{1, 2}, values)

	require.False(t, g.NextVectorInverse(values))
	require.Equal(t, []uint8{0, 3}, values)
}

func TestNewReadsParameterLevelsForPcAndJoiningParameter(t *testing.T) {
	parameters := []uint8{3, 2, 4, 5}
	g := New(parameters, 3, []int{0, 2})
	require.Equal(t, []uint8{3, 4, 5}, g.MaxValues)
}
