package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunv/trapmap/trapmap"
)

// buildCommand loads segments (and optional query points) from a YAML file,
// builds a trapezoidal map, and logs which trapezoid (by the x-coordinates
// of its left/right generator points) contains each query point.
func (c *CLI) buildCommand() *cobra.Command {
	var seed int64
	var margin float64

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build a trapezoidal map from a YAML segment file and run its queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			in, err := loadInput(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			opts := []trapmap.BuildOption{trapmap.WithMargin(margin)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, trapmap.WithSeed(seed))
			}

			p := newProgress(logger)
			m, err := trapmap.Build(in.segments(), opts...)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("built trapezoidal map over %d segments", len(in.Segments)))

			for _, q := range in.queries() {
				tr, err := m.Query(q)
				if err != nil {
					logger.Warnf("query (%.3f, %.3f): %s", q.X, q.Y, err)
					continue
				}
				logger.Infof("query (%.3f, %.3f) -> trapezoid [%.3f,%.3f]",
					q.X, q.Y, tr.LeftP.X, tr.RightP.X)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for the randomized insertion order (default: unseeded)")
	cmd.Flags().Float64Var(&margin, "margin", 1.0, "margin added to each side of the segments' bounding box")

	return cmd
}
