package trapmap

import "math"

// nudgeEpsilon scales the unit-vector nudge applied when descent lands
// exactly on an x-node sharing s.P's generator point (spec §4.4 step 1).
// Fixed rather than derived from trapezoid widths: the nudge moves the point
// 1e-9 along the segment's unit direction whatever the local trapezoid
// widths are, so it stays inside the correct starting trapezoid only when
// that trapezoid is wider than 1e-9.
const nudgeEpsilon = 1e-9

// nudgeAlong returns p moved a hair along the direction of s, used only to
// disambiguate which side of an existing x-node a new segment starts on
// when the segment's own left endpoint is that x-node's generator.
func nudgeAlong(p *Point, s *Segment) *Point {
	dx, dy := s.Q.X-s.P.X, s.Q.Y-s.P.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return p
	}
	return &Point{X: p.X + nudgeEpsilon*dx/norm, Y: p.Y + nudgeEpsilon*dy/norm}
}

// descendForSegmentStart finds the trapezoid containing s.P, applying the
// epsilon-nudge device whenever the descent encounters an x-node whose
// point is exactly s.P (the shared-endpoint case): from that node onward,
// traversal continues using the nudged point instead of s.P itself.
func descendForSegmentStart(root *SearchNode, s *Segment) *Trapezoid {
	cur := root
	p := s.P
	for cur.kind != leafKind {
		switch cur.kind {
		case xNodeKind:
			if samePoint(cur.point, p) {
				p = nudgeAlong(p, s)
			}
			if LeftOf(p, cur.point) {
				cur = cur.left
			} else {
				cur = cur.right
			}
		case yNodeKind:
			if Above(p, cur.segment) {
				cur = cur.left
			} else {
				cur = cur.right
			}
		}
	}
	return cur.trapezoid
}

// followSegment returns Δ, the ordered list of trapezoids s intersects,
// from the one containing s.P to the one containing s.Q.
func followSegment(root *SearchNode, s *Segment) []*Trapezoid {
	start := descendForSegmentStart(root, s)
	deltas := []*Trapezoid{start}
	cur := start
	for LeftOf(cur.RightP, s.Q) {
		var next *Trapezoid
		if Above(cur.RightP, s) {
			next = cur.LRN
		} else {
			next = cur.URN
		}
		if next == nil {
			structuralErrorf("followSegment: ran off the map before reaching s.Q")
		}
		deltas = append(deltas, next)
		cur = next
	}
	return deltas
}
