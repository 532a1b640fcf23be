package trapmap

import (
	"math"
	"math/rand"
)

// marginDefault is the fixed margin original_source's bounding_box applies
// to each side of the subdivision's extent; kept as the default here and
// exposed as an override via WithMargin.
const marginDefault = 1.0

// BuildOptions configures Build. With no BuildOption applied, Build uses the
// default margin and seeds its RNG from math/rand's global source.
type BuildOptions struct {
	seed    int64
	hasSeed bool
	margin  float64
}

// BuildOption mutates a BuildOptions in place.
type BuildOption func(*BuildOptions)

// WithSeed fixes the RNG seed driving the random insertion order (spec
// §4.7 step 2), making a build deterministic and reproducible.
func WithSeed(seed int64) BuildOption {
	return func(o *BuildOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithMargin overrides the default unit margin added to each side of the
// input's bounding box.
func WithMargin(margin float64) BuildOption {
	return func(o *BuildOptions) { o.margin = margin }
}

func resolveOptions(opts []BuildOption) BuildOptions {
	o := BuildOptions{margin: marginDefault}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// boundingBox computes the rectangle enclosing every segment endpoint,
// expanded by margin on each side, and returns it as the initial
// Trapezoid (spec §4.7 step 1), grounded on original_source's
// bounding_box.
func boundingBox(segments []*Segment, margin float64) *Trapezoid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segments {
		for _, p := range []*Point{s.P, s.Q} {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}

	x1, x2 := minX-margin, maxX+margin
	y1, y2 := minY-margin, maxY+margin

	ll := &Point{X: x1, Y: y1}
	lr := &Point{X: x2, Y: y1}
	ul := &Point{X: x1, Y: y2}
	ur := &Point{X: x2, Y: y2}

	top := &Segment{P: ul, Q: ur}
	bottom := &Segment{P: ll, Q: lr}
	return newTrapezoid(top, bottom, ll, lr)
}

// normalizeSegments re-orders every segment's endpoints left-to-right
// (spec §3) regardless of how the caller listed them, since every
// predicate downstream (Above, followSegment, TrapezoidalMap's update)
// assumes s.P is the left endpoint. Build is the one path every external
// construction route (CLI input, fixtures, direct callers) funnels
// through, so normalizing here — rather than at each call site — is
// enough to make out-of-order input safe instead of silently corrupting.
func normalizeSegments(segments []*Segment) []*Segment {
	out := make([]*Segment, len(segments))
	for i, s := range segments {
		out[i] = NewSegment(s.P, s.Q)
	}
	return out
}

// validateSegments rejects input this engine cannot handle: vertical
// segments, degenerate (zero-length) segments, and non-finite coordinates
// (spec §2 Non-goals: vertical segments are out of scope, not silently
// tolerated).
func validateSegments(segments []*Segment) error {
	for _, s := range segments {
		if !s.P.finite() || !s.Q.finite() {
			return inputErrorf("segment endpoint is not finite: %v - %v", s.P, s.Q)
		}
		if math.Abs(s.P.X-s.Q.X) < Epsilon {
			return inputErrorf("vertical segments are not supported: %v - %v", s.P, s.Q)
		}
		if samePoint(s.P, s.Q) {
			return inputErrorf("degenerate segment with coincident endpoints: %v", s.P)
		}
	}
	return nil
}

// Build runs the randomized incremental construction (spec §4.7) over
// segments and returns the resulting Map. Segments must be pairwise
// non-crossing and non-vertical; Build returns an *InputError describing
// the first violation it finds rather than panicking.
//
// A *StructuralError escaping from the construction loop indicates an
// invariant the algorithm itself is supposed to maintain was broken; it is
// never recovered here; it is a bug, not a bad input.
func Build(segments []*Segment, opts ...BuildOption) (m *Map, err error) {
	defer recoverInputError(&err)

	o := resolveOptions(opts)
	if len(segments) == 0 {
		return nil, inputErrorf("no segments to build from")
	}
	normalized := normalizeSegments(segments)
	if err := validateSegments(normalized); err != nil {
		return nil, err
	}
	if err := checkNonCrossing(normalized); err != nil {
		return nil, err
	}

	r := boundingBox(normalized, o.margin)
	ss := newSearchStructure(r)

	order := make([]*Segment, len(normalized))
	copy(order, normalized)
	rng := newBuildRNG(o)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, s := range order {
		ss.insert(s)
	}

	return &Map{ss: ss}, nil
}

func newBuildRNG(o BuildOptions) *rand.Rand {
	if o.hasSeed {
		return rand.New(rand.NewSource(o.seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// checkNonCrossing performs a best-effort O(n^2) pairwise check that no two
// input segments properly cross, rejecting the build early with a precise
// *InputError rather than letting the incremental construction produce an
// inconsistent map. Shared endpoints are permitted; only proper crossings
// are rejected. Overlapping collinear segments, and an endpoint touching
// another segment's interior, are not detected.
func checkNonCrossing(segments []*Segment) error {
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segmentsCross(segments[i], segments[j]) {
				return inputErrorf("segments cross: %v and %v", segments[i], segments[j])
			}
		}
	}
	return nil
}

func segmentsCross(a, b *Segment) bool {
	d1 := orient(a.P, a.Q, b.P)
	d2 := orient(a.P, a.Q, b.Q)
	d3 := orient(b.P, b.Q, a.P)
	d4 := orient(b.P, b.Q, a.Q)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func orient(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
