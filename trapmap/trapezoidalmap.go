package trapmap

// TrapezoidalMap owns the set of live trapezoids and implements
// follow_segment and update(segment, Δ) (spec §4.4, §4.5). It reads the
// search DAG only to locate the first trapezoid of Δ; SearchStructure
// rewrites the DAG and drives both together.
type TrapezoidalMap struct {
	root  *SearchNode // shared with SearchStructure's root
	all   map[*Trapezoid]struct{}
}

func newTrapezoidalMap(boundingBoxTrapezoid *Trapezoid, root *SearchNode) *TrapezoidalMap {
	t := &TrapezoidalMap{root: root, all: make(map[*Trapezoid]struct{})}
	t.add(boundingBoxTrapezoid)
	return t
}

func (t *TrapezoidalMap) add(tr *Trapezoid) { t.all[tr] = struct{}{} }
func (t *TrapezoidalMap) retire(tr *Trapezoid) { delete(t.all, tr) }

// Trapezoids returns the current live trapezoid set as a slice (undefined
// order), used by tests and by the brute-force cross-check.
func (t *TrapezoidalMap) Trapezoids() []*Trapezoid {
	out := make([]*Trapezoid, 0, len(t.all))
	for tr := range t.all {
		out = append(out, tr)
	}
	return out
}

// followSegment finds Δ for s against the current search structure root.
func (t *TrapezoidalMap) followSegment(s *Segment) []*Trapezoid {
	return followSegment(t.root, s)
}

// singleUpdateResult names the up-to-four trapezoids produced by the
// single-trapezoid case of update, so SearchStructure.insertSingle can wire its
// own subgraph around the same objects without re-deriving them.
type singleUpdateResult struct {
	A, B, C, D *Trapezoid // A, B may be nil
}

// updateSingle implements spec §4.5's single-trapezoid case.
func (t *TrapezoidalMap) updateSingle(s *Segment, tau *Trapezoid) singleUpdateResult {
	var a, b *Trapezoid
	omitA := samePoint(tau.LeftP, s.P)
	omitB := samePoint(tau.RightP, s.Q)

	if !omitA {
		a = newTrapezoid(tau.Top, tau.Bottom, tau.LeftP, s.P)
	}
	if !omitB {
		b = newTrapezoid(tau.Top, tau.Bottom, s.Q, tau.RightP)
	}
	c := newTrapezoid(tau.Top, s, s.P, s.Q)
	d := newTrapezoid(s, tau.Bottom, s.P, s.Q)

	if a != nil {
		a.SetNeighbors(tau.ULN, tau.LLN, c, d)
	}
	if b != nil {
		b.SetNeighbors(c, d, tau.URN, tau.LRN)
	}

	cULN, cURN := tau.ULN, tau.URN
	if a != nil {
		cULN = a
	}
	if b != nil {
		cURN = b
	}
	c.SetNeighbors(cULN, nil, cURN, nil)

	dLLN, dLRN := tau.LLN, tau.LRN
	if a != nil {
		dLLN = a
	}
	if b != nil {
		dLRN = b
	}
	d.SetNeighbors(nil, dLLN, nil, dLRN)

	t.retire(tau)
	if a != nil {
		t.add(a)
	}
	if b != nil {
		t.add(b)
	}
	t.add(c)
	t.add(d)

	return singleUpdateResult{A: a, B: b, C: c, D: d}
}

// multiUpdateResult names the pieces produced by the multi-trapezoid case:
// First/Last are the (possibly nil) end slivers, and UpperOf/LowerOf map
// each original Δ index to its merged upper/lower trapezoid (with
// duplicated pointers across a merged run), mirroring
// original_source/src/util.py's merge_trapezoids return convention.
type multiUpdateResult struct {
	First, Last    *Trapezoid
	UpperOf, LowerOf []*Trapezoid
}

// updateMulti implements spec §4.5's multi-trapezoid case (split, merge,
// end slivers, neighbor stitching) for |Δ| >= 2.
func (t *TrapezoidalMap) updateMulti(s *Segment, deltas []*Trapezoid) multiUpdateResult {
	k := len(deltas) - 1

	// 1. Split: one upper/lower piece per original trapezoid, carrying
	// forward only the genuinely external uln/urn (upper) or lln/lrn
	// (lower) neighbors — nil for every interior piece.
	upperParts := make([]*Trapezoid, len(deltas))
	lowerParts := make([]*Trapezoid, len(deltas))
	for i, tau := range deltas {
		leftp, rightp := tau.LeftP, tau.RightP
		if i == 0 {
			leftp = s.P
		}
		if i == k {
			rightp = s.Q
		}
		upperParts[i] = newTrapezoid(tau.Top, s, leftp, rightp)
		lowerParts[i] = newTrapezoid(s, tau.Bottom, leftp, rightp)

		var uln, urn *Trapezoid
		if i == 0 {
			uln = tau.ULN
		}
		if i == k {
			urn = tau.URN
		}
		upperParts[i].SetNeighbors(uln, nil, urn, nil)

		var lln, lrn *Trapezoid
		if i == 0 {
			lln = tau.LLN
		}
		if i == k {
			lrn = tau.LRN
		}
		lowerParts[i].SetNeighbors(nil, lln, nil, lrn)
	}

	// 2. Merge maximal runs sharing top&bottom.
	upperOf := mergeChain(upperParts)
	lowerOf := mergeChain(lowerParts)
	upperDistinct := distinct(upperOf)
	lowerDistinct := distinct(lowerOf)

	// 3. End slivers.
	var first, last *Trapezoid
	if !samePoint(deltas[0].LeftP, s.P) {
		first = newTrapezoid(deltas[0].Top, deltas[0].Bottom, deltas[0].LeftP, s.P)
	}
	if !samePoint(deltas[k].RightP, s.Q) {
		last = newTrapezoid(deltas[k].Top, deltas[k].Bottom, s.Q, deltas[k].RightP)
	}

	// 4. Neighbor stitching. External neighbors (carried at split time)
	// land only at the two global edges; every run-to-run adjacency is
	// recorded uniformly via lln/lrn on the upper chain and uln/urn
	// (the spec's stated swap) on the lower chain. See DESIGN.md for why
	// this differs from a literal reading of one ambiguous spec sentence.
	stitchUpperChain(upperDistinct, deltas, first, last)
	stitchLowerChain(lowerDistinct, deltas, first, last)

	if first != nil {
		first.SetNeighbors(deltas[0].ULN, deltas[0].LLN, upperDistinct[0], lowerDistinct[0])
	}
	if last != nil {
		last.SetNeighbors(upperDistinct[len(upperDistinct)-1], lowerDistinct[len(lowerDistinct)-1],
			deltas[k].URN, deltas[k].LRN)
	}

	for _, tau := range deltas {
		t.retire(tau)
	}
	if first != nil {
		t.add(first)
	}
	if last != nil {
		t.add(last)
	}
	for _, u := range upperDistinct {
		t.add(u)
	}
	for _, l := range lowerDistinct {
		t.add(l)
	}

	return multiUpdateResult{First: first, Last: last, UpperOf: upperOf, LowerOf: lowerOf}
}

// mergeChain coalesces maximal runs of parts sharing the same Top and
// Bottom into one trapezoid each, returning a slice the same length as
// parts where merged runs repeat the same pointer — ported from
// original_source/src/util.py's merge_trapezoids.
func mergeChain(parts []*Trapezoid) []*Trapezoid {
	res := make([]*Trapezoid, 0, len(parts))
	i := 0
	for i < len(parts) {
		j := i + 1
		for j < len(parts) && parts[j].Top == parts[i].Top && parts[j].Bottom == parts[i].Bottom {
			j++
		}
		merged := newTrapezoid(parts[i].Top, parts[i].Bottom, parts[i].LeftP, parts[j-1].RightP)
		for m := i; m < j; m++ {
			res = append(res, merged)
		}
		i = j
	}
	return res
}

// distinct collapses consecutive duplicate pointers in a merge-mapped
// slice down to the ordered list of distinct merged trapezoids.
func distinct(mapped []*Trapezoid) []*Trapezoid {
	out := make([]*Trapezoid, 0, len(mapped))
	for i, tr := range mapped {
		if i == 0 || mapped[i-1] != tr {
			out = append(out, tr)
		}
	}
	return out
}

// stitchUpperChain wires the distinct merged upper trapezoids: ULN carries
// the external neighbor only at position 0, URN only at the last position,
// and LLN/LRN hold the run-to-run chain adjacency throughout.
func stitchUpperChain(chain []*Trapezoid, deltas []*Trapezoid, first, last *Trapezoid) {
	k := len(deltas) - 1
	m := len(chain)
	for idx, u := range chain {
		var uln, urn *Trapezoid
		if idx == 0 {
			if first != nil {
				uln = first
			} else {
				uln = deltas[0].ULN
			}
		}
		if idx == m-1 {
			if last != nil {
				urn = last
			} else {
				urn = deltas[k].URN
			}
		}
		var lln, lrn *Trapezoid
		if idx > 0 {
			lln = chain[idx-1]
		}
		if idx < m-1 {
			lrn = chain[idx+1]
		}
		u.SetNeighbors(uln, lln, urn, lrn)
	}
}

// stitchLowerChain is stitchUpperChain's spec-mandated swap: uln<->lln,
// urn<->lrn.
func stitchLowerChain(chain []*Trapezoid, deltas []*Trapezoid, first, last *Trapezoid) {
	k := len(deltas) - 1
	m := len(chain)
	for idx, l := range chain {
		var lln, lrn *Trapezoid
		if idx == 0 {
			if first != nil {
				lln = first
			} else {
				lln = deltas[0].LLN
			}
		}
		if idx == m-1 {
			if last != nil {
				lrn = last
			} else {
				lrn = deltas[k].LRN
			}
		}
		var uln, urn *Trapezoid
		if idx > 0 {
			uln = chain[idx-1]
		}
		if idx < m-1 {
			urn = chain[idx+1]
		}
		l.SetNeighbors(uln, lln, urn, lrn)
	}
}
