package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"schemebot/internal/jobs"
	"schemebot/internal/schemes"
)

func checkLinksCmd(table schemes.Table) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check-links",
		Short: "Check that every scheme's apply link is reachable",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			checker := jobs.NewLinkChecker(table, time.Hour, 0, nil, jobs.WithDelay(0))
			checker.CheckAll(ctx)

			unhealthy := 0
			w := tabwriter.NewWriter(out(c), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCHEME\tSTATUS\tDETAIL")
			for _, st := range checker.Statuses() {
				if !st.IsHealthy() {
					unhealthy++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", st.Scheme, st.Status, st.Error)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if unhealthy > 0 {
				return fmt.Errorf("%d of %d apply links are not healthy", unhealthy, table.Len())
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall time limit for the check")
	return cmd
}
