package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"schemebot/internal/handlers/api"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

func askCmd(table schemes.Table) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Find the scheme matching a free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			q := validation.NormalizeQuery(strings.Join(args, " "))
			if valid, msg := validation.ValidateQuery(q); !valid {
				return errors.New(msg)
			}

			res := schemes.Resolve(q, table)
			s, found := res.Scheme()

			if asJSON {
				enc := json.NewEncoder(out(c))
				enc.SetIndent("", "  ")
				return enc.Encode(api.NewResolveResponse(q, res))
			}

			if !found {
				fmt.Fprintf(out(c), "Bot: %s\n", schemes.FallbackMessage)
				return nil
			}
			fmt.Fprintf(out(c), "Bot: %s\nApply: %s\n", s.Description, s.ApplyURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
