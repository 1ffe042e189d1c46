package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"schemebot/internal/logging"
	"schemebot/internal/schemes"
)

// Execute runs the schemectl command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the schemectl command tree.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "schemectl",
		Short:        "Query the government scheme table from the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			level := "warn"
			if debug {
				level = "debug"
			}
			logging.Setup(c.ErrOrStderr(), logging.Config{Level: level})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	table := schemes.Initialize()
	cmd.AddCommand(askCmd(table))
	cmd.AddCommand(schemesCmd(table))
	cmd.AddCommand(checkLinksCmd(table))
	return cmd
}

func out(c *cobra.Command) io.Writer {
	return c.OutOrStdout()
}
