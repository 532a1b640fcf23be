package trapmap

import (
	"embed"
	"log"
	"strconv"
	"testing"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs segments. This is not a full
// (or even correct) svg parser handler: it parses the SVG and pulls every
// <line> element out as a Segment. If anything goes wrong, it fails the
// calling test rather than panicking, since fixtures are test-only input.
//
// Fixtures are available by name in this fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixtureSegments(name string) ([]*Segment, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, err
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		return nil, err
	}

	lines := rootEl.FindAll("line")
	if len(lines) == 0 {
		log.Printf("fixture %q has no <line> elements", name)
	}

	segments := make([]*Segment, 0, len(lines))
	for _, lineEl := range lines {
		x1, err := strconv.ParseFloat(lineEl.Attributes["x1"], 64)
		if err != nil {
			return nil, err
		}
		y1, err := strconv.ParseFloat(lineEl.Attributes["y1"], 64)
		if err != nil {
			return nil, err
		}
		x2, err := strconv.ParseFloat(lineEl.Attributes["x2"], 64)
		if err != nil {
			return nil, err
		}
		y2, err := strconv.ParseFloat(lineEl.Attributes["y2"], 64)
		if err != nil {
			return nil, err
		}
		segments = append(segments, NewSegment(&Point{x1, y1}, &Point{x2, y2}))
	}
	return segments, nil
}

func TestLoadFixtureSegmentsParsesSampleSVG(t *testing.T) {
	segs, err := loadFixtureSegments("sample")
	if err != nil {
		t.Fatalf("loadFixtureSegments: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
}

func TestBuildFromFixture(t *testing.T) {
	segs, err := loadFixtureSegments("sample")
	if err != nil {
		t.Fatalf("loadFixtureSegments: %v", err)
	}

	m, err := Build(segs, WithSeed(11))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tr, err := m.Query(&Point{2, 4})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if tr == nil {
		t.Fatalf("expected a trapezoid, got nil")
	}
}
