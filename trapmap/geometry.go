// Package trapmap builds a trapezoidal map of non-crossing line segments by
// randomized incremental construction, coupled with a search DAG that
// answers planar point-location queries in expected O(log n) time.
package trapmap

import "math"

// Epsilon is the tolerance used for floating point comparisons throughout
// the package.
const Epsilon = 1e-9

// Point is a point in the plane. Points are immutable after construction;
// two points that happen to share coordinates are still distinct objects
// unless they are literally the same pointer (shared generators from input
// segments are expected to reuse the same *Point).
type Point struct {
	X, Y float64
}

// equal reports approximate coordinate equality, used only for detecting
// shared endpoints that were not passed in as the same pointer.
func (p *Point) equal(q *Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// samePoint reports whether p and q denote the same generator, by identity
// first and coordinate equality as a fallback.
func samePoint(p, q *Point) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	return p.equal(q)
}

// finite reports whether both coordinates are finite.
func (p *Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is an input edge or a bounding-box side, normalized at
// construction so that P.X < Q.X.
type Segment struct {
	P, Q *Point
}

// NewSegment normalizes a and b into a left-to-right Segment (spec §3: P
// always has strictly smaller x than Q). Every predicate in this package
// (Above, followSegment, TrapezoidalMap's update) assumes that ordering.
// Callers that construct Segments to hand to Build should use this rather
// than a bare struct literal; Build also re-normalizes every segment it's
// given, so out-of-order input reaching it some other way is still made
// safe rather than silently corrupting the map. It does not validate
// non-verticality; callers that need that check call validateSegments
// explicitly (construction-time input gets checked, the bounding box's
// horizontal edges do not need to be).
func NewSegment(a, b *Point) *Segment {
	if a.X < b.X {
		return &Segment{P: a, Q: b}
	}
	return &Segment{P: b, Q: a}
}

func (s *Segment) isHorizontal() bool {
	return math.Abs(s.P.Y-s.Q.Y) < Epsilon
}

// LeftOf reports lies_left_of(a, b) per spec §4.1: a.X < b.X, strictly.
func LeftOf(a, b *Point) bool {
	return a.X < b.X
}

// Above reports whether p lies strictly above s: with s.P the left endpoint,
// the cross product (s.Q-s.P) x (s.Q-p) is negative exactly when p is above
// the line through s. Points exactly on s are classified as not above (i.e.
// below, for y-node traversal purposes).
func Above(p *Point, s *Segment) bool {
	v1x, v1y := s.Q.X-s.P.X, s.Q.Y-s.P.Y
	v2x, v2y := s.Q.X-p.X, s.Q.Y-p.Y
	cross := v1x*v2y - v1y*v2x
	return cross < 0
}
