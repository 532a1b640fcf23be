package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSegments() []*Segment {
	return []*Segment{
		{P: &Point{1, 3}, Q: &Point{5, 4}},
		{P: &Point{3, 2}, Q: &Point{6, 1}},
	}
}

func TestBoundingBoxInflatesByMargin(t *testing.T) {
	r := boundingBox(sampleSegments(), 1.0)
	assert.Equal(t, 0.0, r.LeftP.X)
	assert.Equal(t, 0.0, r.LeftP.Y)
	assert.Equal(t, 7.0, r.RightP.X)
	assert.Equal(t, 5.0, r.Top.Q.Y)
}

func TestBuildRejectsVerticalSegment(t *testing.T) {
	_, err := Build([]*Segment{{P: &Point{1, 1}, Q: &Point{1, 5}}})
	require.Error(t, err)
	var ie *InputError
	assert.ErrorAs(t, err, &ie)
}

func TestBuildRejectsCrossingSegments(t *testing.T) {
	segs := []*Segment{
		{P: &Point{0, 0}, Q: &Point{4, 4}},
		{P: &Point{0, 4}, Q: &Point{4, 0}},
	}
	_, err := Build(segs)
	require.Error(t, err)
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
}

func TestBuildAcceptsNonCrossingSegmentsAndQueriesSucceed(t *testing.T) {
	m, err := Build(sampleSegments(), WithSeed(42))
	require.NoError(t, err)
	require.NotNil(t, m)

	tr, err := m.Query(&Point{2, 4})
	require.NoError(t, err)
	assert.NotNil(t, tr)
}

func TestBuildNormalizesReversedSegments(t *testing.T) {
	forward := []*Segment{
		{P: &Point{1, 3}, Q: &Point{5, 4}},
		{P: &Point{3, 2}, Q: &Point{6, 1}},
	}
	reversed := []*Segment{
		{P: &Point{5, 4}, Q: &Point{1, 3}},
		{P: &Point{6, 1}, Q: &Point{3, 2}},
	}

	mf, err := Build(forward, WithSeed(42))
	require.NoError(t, err)
	mr, err := Build(reversed, WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, len(mf.Trapezoids()), len(mr.Trapezoids()))

	tr, err := mr.Query(&Point{2, 4})
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.True(t, tr.LeftP.X <= 2 && 2 <= tr.RightP.X)
}

func TestBuildIsDeterministicUnderFixedSeed(t *testing.T) {
	segs := sampleSegments()
	m1, err := Build(segs, WithSeed(7))
	require.NoError(t, err)
	m2, err := Build(segs, WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, len(m1.Trapezoids()), len(m2.Trapezoids()))
}

func TestSegmentsCrossDetectsProperCrossing(t *testing.T) {
	a := &Segment{P: &Point{0, 0}, Q: &Point{4, 4}}
	b := &Segment{P: &Point{0, 4}, Q: &Point{4, 0}}
	assert.True(t, segmentsCross(a, b))
}

func TestSegmentsCrossAllowsSharedEndpoint(t *testing.T) {
	a := &Segment{P: &Point{0, 0}, Q: &Point{4, 4}}
	b := &Segment{P: &Point{4, 4}, Q: &Point{8, 0}}
	assert.False(t, segmentsCross(a, b))
}
