package trapmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapQueryReturnsNotFoundOutsideBoundingBox(t *testing.T) {
	m, err := Build(sampleSegments(), WithSeed(1))
	require.NoError(t, err)

	_, err = m.Query(&Point{1000, 1000})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMapQueryMatchesBruteForce(t *testing.T) {
	m, err := Build(sampleSegments(), WithSeed(2))
	require.NoError(t, err)

	all := m.Trapezoids()
	pts := []*Point{{2, 4}, {4, 3.5}, {0.5, 0.5}, {6.5, 4.5}}
	for _, p := range pts {
		p := p
		got, err := m.Query(p)
		require.NoError(t, err)
		want := bruteForceLocate(all, p)
		assert.Same(t, want, got)
	}
}
