//go:build trapmapdebug

package trapmap

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/arjunv/trapmap/dbg"
)

// dbgDrawPadding is the pixel margin left around the rendered map on every
// side, so boundary trapezoid outlines aren't clipped by the canvas edge.
const dbgDrawPadding = 20

// DebugRender draws the trapezoids' outlines to /tmp/trapmap.png and, when
// stdout supports it, cats the image inline. It exists purely so a map can
// be eyeballed during development; nothing in the package calls it outside
// the trapmapdebug build tag.
func DebugRender(trapezoids []*Trapezoid, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range trapezoids {
		for _, p := range []*Point{t.LeftP, t.RightP, t.Top.P, t.Top.Q, t.Bottom.P, t.Bottom.Q} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range trapezoids {
		c.MoveTo(t.LeftP.X, yOnSegment(t.Top, t.LeftP.X))
		c.LineTo(t.RightP.X, yOnSegment(t.Top, t.RightP.X))
		c.LineTo(t.RightP.X, yOnSegment(t.Bottom, t.RightP.X))
		c.LineTo(t.LeftP.X, yOnSegment(t.Bottom, t.LeftP.X))
		c.ClosePath()
	}
	c.SetRGB(0, 0.4, 0.2)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, t := range trapezoids {
		cx := (t.LeftP.X + t.RightP.X) / 2
		cy := (yOnSegment(t.Top, cx) + yOnSegment(t.Bottom, cx)) / 2
		c.DrawString(dbg.Name(t), cx, cy)
	}

	c.SavePNG("/tmp/trapmap.png")
	imgcat.CatFile("/tmp/trapmap.png", os.Stdout)
}

// yOnSegment linearly interpolates s's y value at x, used only to draw a
// trapezoid's slanted top/bottom edges between its two generator x's.
func yOnSegment(s *Segment, x float64) float64 {
	if s.P.X == s.Q.X {
		return s.P.Y
	}
	t := (x - s.P.X) / (s.Q.X - s.P.X)
	return s.P.Y + t*(s.Q.Y-s.P.Y)
}
