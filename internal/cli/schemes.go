package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"schemebot/internal/schemes"
)

func schemesCmd(table schemes.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List known schemes in match priority order",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(out(c), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tKEY\tAPPLY URL")
			for i, s := range table.All() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, s.Key, s.ApplyURL)
			}
			return w.Flush()
		},
	}
}
