package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowSegmentSingleTrapezoid(t *testing.T) {
	r := rectTrapezoid(0, 10, 0, 10)
	ss := newSearchStructure(r)
	s := &Segment{P: &Point{2, 5}, Q: &Point{8, 5}}

	deltas := ss.tmap.followSegment(s)
	assert.Len(t, deltas, 1)
	assert.Same(t, r, deltas[0])
}

func TestFollowSegmentAcrossMultipleTrapezoids(t *testing.T) {
	r := rectTrapezoid(0, 10, 0, 10)
	ss := newSearchStructure(r)

	// Insert a horizontal divider first, then probe with a segment above it
	// that starts left of the divider and ends right of it, so Δ must be
	// walked through the neighbor graph.
	div := &Segment{P: &Point{1, 5}, Q: &Point{9, 5}}
	ss.insert(div)

	probe := &Segment{P: &Point{0.5, 8}, Q: &Point{9.5, 7}}
	deltas := ss.tmap.followSegment(probe)
	assert.GreaterOrEqual(t, len(deltas), 2)
}

func TestNudgeAlongMovesAlongSegmentDirection(t *testing.T) {
	s := &Segment{P: &Point{0, 0}, Q: &Point{1, 0}}
	p := &Point{0, 0}
	nudged := nudgeAlong(p, s)
	assert.Greater(t, nudged.X, p.X)
	assert.InDelta(t, p.Y, nudged.Y, Epsilon)
}

func TestDescendForSegmentStartNudgesOnSharedXNode(t *testing.T) {
	r := rectTrapezoid(0, 10, 0, 10)
	ss := newSearchStructure(r)

	s1 := &Segment{P: &Point{3, 2}, Q: &Point{7, 6}}
	ss.insert(s1)

	s2 := &Segment{P: &Point{3, 2}, Q: &Point{8, 1}}
	tr := descendForSegmentStart(ss.root, s2)
	assert.NotNil(t, tr)
}
