package trapmap

import (
	"fmt"

	"github.com/arjunv/trapmap/dbg"
)

// nodeKind tags the three variants of a search-DAG node. Using a kind
// discriminant on one struct (rather than an interface hierarchy) keeps
// traverse/replace-leaf as simple switches instead of virtual dispatch, and
// lets every node share one generic left/right child pair the way
// the original implementation's Node base class does.
type nodeKind uint8

const (
	leafKind nodeKind = iota
	xNodeKind
	yNodeKind
)

// SearchNode is one node of the search DAG: an x-node (tests a point's
// x-coordinate against Point), a y-node (tests above/below Segment), or a
// leaf (names Trapezoid). Internal nodes have exactly two children; leaves
// have none and may have more than one parent (spec I5).
type SearchNode struct {
	kind      nodeKind
	point     *Point     // valid when kind == xNodeKind
	segment   *Segment   // valid when kind == yNodeKind
	trapezoid *Trapezoid // valid when kind == leafKind

	left, right *SearchNode
	parents     map[*SearchNode]struct{}
}

func newLeaf(t *Trapezoid) *SearchNode {
	return &SearchNode{kind: leafKind, trapezoid: t}
}

func newXNode(p *Point) *SearchNode {
	return &SearchNode{kind: xNodeKind, point: p}
}

func newYNode(s *Segment) *SearchNode {
	return &SearchNode{kind: yNodeKind, segment: s}
}

// IsLeaf reports whether n is a leaf node.
func (n *SearchNode) IsLeaf() bool { return n.kind == leafKind }

// Trapezoid returns the trapezoid named by a leaf node. It panics if n is
// not a leaf; callers check IsLeaf (or rely on Traverse, which only ever
// returns leaves).
func (n *SearchNode) Trapezoid() *Trapezoid {
	if n.kind != leafKind {
		structuralErrorf("Trapezoid() called on a non-leaf SearchNode")
	}
	return n.trapezoid
}

func (n *SearchNode) addParent(p *SearchNode) {
	if n.parents == nil {
		n.parents = make(map[*SearchNode]struct{}, 1)
	}
	n.parents[p] = struct{}{}
}

// SetLeftChild wires n's left edge to c and registers n as one of c's
// parents.
func (n *SearchNode) SetLeftChild(c *SearchNode) {
	n.left = c
	if c != nil {
		c.addParent(n)
	}
}

// SetRightChild wires n's right edge to c and registers n as one of c's
// parents.
func (n *SearchNode) SetRightChild(c *SearchNode) {
	n.right = c
	if c != nil {
		c.addParent(n)
	}
}

// Traverse descends the DAG rooted at n for point q, per spec §4.3:
// x-nodes route left when q.X < point.X (strict; equal routes right),
// y-nodes route left ("above") when q lies above the segment, right
// ("below") otherwise — a point exactly on the segment routes below.
func (n *SearchNode) Traverse(q *Point) *SearchNode {
	cur := n
	for cur.kind != leafKind {
		switch cur.kind {
		case xNodeKind:
			if LeftOf(q, cur.point) {
				cur = cur.left
			} else {
				cur = cur.right
			}
		case yNodeKind:
			if Above(q, cur.segment) {
				cur = cur.left
			} else {
				cur = cur.right
			}
		}
	}
	return cur
}

// replaceLeaf rewires every parent of old so it points at n instead,
// visiting each parent exactly once regardless of how many edges it has
// into old (an edge only ever targets one child slot per direction, so a
// single parent can appear for at most one of left/right here). If old is
// the DAG root (root == old), *root is reassigned instead.
func replaceLeaf(root **SearchNode, old, n *SearchNode) {
	if *root == old {
		*root = n
		return
	}
	for p := range old.parents {
		if p.left == old {
			p.SetLeftChild(n)
		}
		if p.right == old {
			p.SetRightChild(n)
		}
	}
}

func (n *SearchNode) String() string {
	switch n.kind {
	case leafKind:
		return fmt.Sprintf("Leaf(%s -> %s)", dbg.Name(n), dbg.Name(n.trapezoid))
	case xNodeKind:
		return fmt.Sprintf("XNode(%s, x=%.3f)", dbg.Name(n), n.point.X)
	case yNodeKind:
		return fmt.Sprintf("YNode(%s)", dbg.Name(n))
	default:
		return "SearchNode(?)"
	}
}
