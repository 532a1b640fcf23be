package trapmap

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/arjunv/trapmap/dbg"
)

// Trapezoid is a bounded region of the map: top and bottom are the
// non-vertical segments bounding it, leftp/rightp are the generator points
// whose vertical extensions form its left and right sides, and the four
// neighbor slots name the (at most one each) adjacent trapezoids touching
// the upper/lower half of each vertical side.
//
// No public mutation of Top/Bottom/LeftP/RightP after construction: a new
// boundary means a new Trapezoid (spec I1, I4).
type Trapezoid struct {
	Top, Bottom    *Segment
	LeftP, RightP  *Point
	ULN, LLN       *Trapezoid // upper-left, lower-left
	URN, LRN       *Trapezoid // upper-right, lower-right
	Leaf           *SearchNode
}

// newTrapezoid constructs a trapezoid and its back-linked leaf together, as
// required by the lifecycle rule in spec §3 ("trapezoid and leaf are
// created in pairs").
func newTrapezoid(top, bottom *Segment, leftp, rightp *Point) *Trapezoid {
	t := &Trapezoid{Top: top, Bottom: bottom, LeftP: leftp, RightP: rightp}
	t.Leaf = newLeaf(t)
	return t
}

// SetNeighbors updates all four slots of t and writes the corresponding
// back-pointer into each non-nil argument, preserving I3 (neighbor
// symmetry) in one call.
func (t *Trapezoid) SetNeighbors(uln, lln, urn, lrn *Trapezoid) {
	t.ULN, t.LLN, t.URN, t.LRN = uln, lln, urn, lrn
	if uln != nil {
		uln.URN = t
	}
	if lln != nil {
		lln.LRN = t
	}
	if urn != nil {
		urn.ULN = t
	}
	if lrn != nil {
		lrn.LLN = t
	}
}

// HasPoint reports whether p is one of t's two generators, by the same
// identity-then-coordinate rule used for shared-endpoint detection
// elsewhere in the package.
func (t *Trapezoid) HasPoint(p *Point) bool {
	return samePoint(t.LeftP, p) || samePoint(t.RightP, p)
}

// dbgName colors t's debug name by how degenerate it looks: red if its
// left and right generators are the same point (a bug, since I4 requires a
// genuine vertical extent at each generator), green otherwise.
func (t *Trapezoid) dbgName() string {
	name := dbg.Name(t)
	if samePoint(t.LeftP, t.RightP) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid(%s, left=(%.3f,%.3f) right=(%.3f,%.3f))",
		t.dbgName(), t.LeftP.X, t.LeftP.Y, t.RightP.X, t.RightP.Y)
}
