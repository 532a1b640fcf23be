package trapmap

// bruteForceLocate scans trapezoids linearly for the one containing p,
// used only as a test cross-check against SearchStructure.Query (spec §8
// S5) and never on any path Build or Query reach.
func bruteForceLocate(trapezoids []*Trapezoid, p *Point) *Trapezoid {
	for _, t := range trapezoids {
		if p.X < t.LeftP.X-Epsilon || p.X > t.RightP.X+Epsilon {
			continue
		}
		if !Above(p, t.Top) && Above(p, t.Bottom) {
			return t
		}
	}
	return nil
}
