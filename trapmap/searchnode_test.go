package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraverseXNode(t *testing.T) {
	left := newLeaf(rectTrapezoid(0, 2, 0, 2))
	right := newLeaf(rectTrapezoid(2, 4, 0, 2))
	x := newXNode(&Point{2, 0})
	x.SetLeftChild(left)
	x.SetRightChild(right)

	assert.Same(t, left, x.Traverse(&Point{1, 1}))
	assert.Same(t, right, x.Traverse(&Point{3, 1}))
	assert.Same(t, right, x.Traverse(&Point{2, 1}))
}

func TestTraverseYNode(t *testing.T) {
	above := newLeaf(rectTrapezoid(0, 4, 1, 2))
	below := newLeaf(rectTrapezoid(0, 4, 0, 1))
	s := &Segment{P: &Point{0, 1}, Q: &Point{4, 1}}
	y := newYNode(s)
	y.SetLeftChild(above)
	y.SetRightChild(below)

	assert.Same(t, above, y.Traverse(&Point{2, 1.5}))
	assert.Same(t, below, y.Traverse(&Point{2, 0.5}))
	assert.Same(t, below, y.Traverse(&Point{2, 1}))
}

func TestReplaceLeafRewiresAllParents(t *testing.T) {
	old := newLeaf(rectTrapezoid(0, 2, 0, 2))
	replacement := newLeaf(rectTrapezoid(0, 2, 0, 2))

	parentA := newXNode(&Point{1, 0})
	parentA.SetLeftChild(old)
	parentA.SetRightChild(newLeaf(rectTrapezoid(2, 4, 0, 2)))

	parentB := newXNode(&Point{1, 0})
	parentB.SetRightChild(old)

	root := parentA
	replaceLeaf(&root, old, replacement)

	assert.Same(t, replacement, parentA.left)
	assert.Same(t, replacement, parentB.right)
}

func TestReplaceLeafAtRoot(t *testing.T) {
	old := newLeaf(rectTrapezoid(0, 2, 0, 2))
	replacement := newLeaf(rectTrapezoid(0, 2, 0, 2))
	root := old
	replaceLeaf(&root, old, replacement)
	assert.Same(t, replacement, root)
}

func TestTrapezoidLeafCanHaveMultipleParents(t *testing.T) {
	shared := newLeaf(rectTrapezoid(0, 2, 0, 2))
	p1 := newXNode(&Point{1, 0})
	p1.SetLeftChild(shared)
	p2 := newXNode(&Point{1, 0})
	p2.SetRightChild(shared)

	assert.Len(t, shared.parents, 2)
}
