package trapmap

import "errors"

// ErrNotFound is returned by Map.Query when the point lies outside the
// bounding rectangle the map was built over (spec §6, §7).
var ErrNotFound = errors.New("trapmap: point outside the map's bounding rectangle")

// Map is the built, queryable trapezoidal map and its search structure.
// It is immutable after Build returns: queries are read-only and safe to
// run concurrently across goroutines (spec §5).
type Map struct {
	ss *SearchStructure
}

// Query returns the trapezoid containing p, or ErrNotFound if p lies
// outside the map's bounding rectangle.
func (m *Map) Query(p *Point) (*Trapezoid, error) {
	t := m.ss.Query(p)
	if !withinBounds(t, p) {
		return nil, ErrNotFound
	}
	return t, nil
}

// withinBounds reports whether p lies within t's left/right vertical
// extent and between its top and bottom segments; the DAG traversal
// always lands on some leaf, so this is what actually distinguishes a
// genuine containment from having fallen off the edge of R.
func withinBounds(t *Trapezoid, p *Point) bool {
	if p.X < t.LeftP.X-Epsilon || p.X > t.RightP.X+Epsilon {
		return false
	}
	return !Above(p, t.Top) && Above(p, t.Bottom)
}

// Trapezoids exposes the map's current live trapezoid set, for tests and
// for the brute-force cross-check (spec §8 S5).
func (m *Map) Trapezoids() []*Trapezoid {
	return m.ss.tmap.Trapezoids()
}
