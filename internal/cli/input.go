package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arjunv/trapmap/trapmap"
)

// inputFile is the YAML shape trapmap's CLI reads segments and query
// points from:
//
//	segments:
//	  - p: [1, 3]
//	    q: [5, 4]
//	  - p: [3, 2]
//	    q: [6, 1]
//	queries:
//	  - [2, 4]
type inputFile struct {
	Segments []struct {
		P [2]float64 `yaml:"p"`
		Q [2]float64 `yaml:"q"`
	} `yaml:"segments"`
	Queries [][2]float64 `yaml:"queries"`
}

func loadInput(path string) (*inputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (in *inputFile) segments() []*trapmap.Segment {
	out := make([]*trapmap.Segment, len(in.Segments))
	for i, s := range in.Segments {
		out[i] = trapmap.NewSegment(
			&trapmap.Point{X: s.P[0], Y: s.P[1]},
			&trapmap.Point{X: s.Q[0], Y: s.Q[1]},
		)
	}
	return out
}

func (in *inputFile) queries() []*trapmap.Point {
	out := make([]*trapmap.Point, len(in.Queries))
	for i, q := range in.Queries {
		out[i] = &trapmap.Point{X: q[0], Y: q[1]}
	}
	return out
}
