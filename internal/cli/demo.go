package cli

import (
	"github.com/spf13/cobra"

	"github.com/arjunv/trapmap/trapmap"
)

// demoCommand reproduces the reference implementation's own sample
// subdivision and query: two segments s1=(1,3)-(5,4), s2=(3,2)-(6,1), with
// q=(2,4) queried against the result.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in sample subdivision and query",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			s1 := trapmap.NewSegment(&trapmap.Point{X: 1, Y: 3}, &trapmap.Point{X: 5, Y: 4})
			s2 := trapmap.NewSegment(&trapmap.Point{X: 3, Y: 2}, &trapmap.Point{X: 6, Y: 1})

			p := newProgress(logger)
			m, err := trapmap.Build([]*trapmap.Segment{s1, s2})
			if err != nil {
				return err
			}
			p.done("built sample trapezoidal map")

			q := &trapmap.Point{X: 2, Y: 4}
			tr, err := m.Query(q)
			if err != nil {
				logger.Warnf("query (%.3f, %.3f): %s", q.X, q.Y, err)
				return nil
			}
			logger.Infof("query (%.3f, %.3f) -> trapezoid [%.3f,%.3f]",
				q.X, q.Y, tr.LeftP.X, tr.RightP.X)
			return nil
		},
	}
}
