package trapmap

// SearchStructure is the search DAG (spec §4.2-§4.3): a rooted DAG of
// x-nodes, y-nodes, and leaves, each leaf named to exactly one live
// Trapezoid. It drives TrapezoidalMap so the two structures stay in lock
// step: every call to update replaces the same trapezoids in both at once.
type SearchStructure struct {
	root *SearchNode
	tmap *TrapezoidalMap
}

// newSearchStructure seeds the DAG with a single leaf naming the bounding
// box trapezoid (spec §4.7 step 1).
func newSearchStructure(boundingBoxTrapezoid *Trapezoid) *SearchStructure {
	root := boundingBoxTrapezoid.Leaf
	return &SearchStructure{
		root: root,
		tmap: newTrapezoidalMap(boundingBoxTrapezoid, root),
	}
}

// Query descends the DAG for q and returns the trapezoid containing it.
func (ss *SearchStructure) Query(q *Point) *Trapezoid {
	return ss.root.Traverse(q).Trapezoid()
}

// insert adds segment s to both the trapezoidal map and the search DAG,
// implementing spec §4.6 (and, through TrapezoidalMap, §4.5).
func (ss *SearchStructure) insert(s *Segment) {
	deltas := ss.tmap.followSegment(s)
	if len(deltas) == 1 {
		ss.insertSingle(s, deltas[0])
	} else {
		ss.insertMulti(s, deltas)
	}
	ss.tmap.root = ss.root
}

// insertSingle ports original_source/src/structures.py's single-trapezoid
// SearchStructure.update branch: one y-node for s, an x-node guarding each
// endpoint actually introduced, and leaves for the up-to-four resulting
// trapezoids, spliced in under a single replaceLeaf call against the old
// leaf naming tau.
func (ss *SearchStructure) insertSingle(s *Segment, tau *Trapezoid) {
	r := ss.tmap.updateSingle(s, tau)

	yNode := newYNode(s)
	yNode.SetLeftChild(r.C.Leaf)
	yNode.SetRightChild(r.D.Leaf)
	subRoot := yNode

	if r.B != nil {
		qNode := newXNode(s.Q)
		qNode.SetLeftChild(subRoot)
		qNode.SetRightChild(r.B.Leaf)
		subRoot = qNode
	}
	if r.A != nil {
		pNode := newXNode(s.P)
		pNode.SetLeftChild(r.A.Leaf)
		pNode.SetRightChild(subRoot)
		subRoot = pNode
	}

	replaceLeaf(&ss.root, tau.Leaf, subRoot)
}

// insertMulti implements spec §4.6's multi-trapezoid case: one y-node
// replacing each of the |Δ| old leaves, its two children naming whichever
// merged upper/lower trapezoid that slice of Δ now belongs to (duplicated
// leaves across a merged run are deduplicated by SearchNode's multi-parent
// support, per spec I5), plus x-nodes guarding the two new endpoints at the
// first and last positions when an end sliver was produced.
func (ss *SearchStructure) insertMulti(s *Segment, deltas []*Trapezoid) {
	r := ss.tmap.updateMulti(s, deltas)
	k := len(deltas) - 1

	for i, tau := range deltas {
		yNode := newYNode(s)
		yNode.SetLeftChild(r.UpperOf[i].Leaf)
		yNode.SetRightChild(r.LowerOf[i].Leaf)
		subRoot := yNode

		if i == 0 && r.First != nil {
			pNode := newXNode(s.P)
			pNode.SetLeftChild(r.First.Leaf)
			pNode.SetRightChild(subRoot)
			subRoot = pNode
		}
		if i == k && r.Last != nil {
			qNode := newXNode(s.Q)
			qNode.SetLeftChild(subRoot)
			qNode.SetRightChild(r.Last.Leaf)
			subRoot = qNode
		}

		replaceLeaf(&ss.root, tau.Leaf, subRoot)
	}
}
