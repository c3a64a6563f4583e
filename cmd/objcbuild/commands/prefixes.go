package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newPrefixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes [-- args...]",
		Short: "Print the package prefixes declared in translateArgs",
		Long: "Print the package prefixes declared by --prefix and --prefixes in j2objc.translateArgs.\n" +
			"Extra arguments after -- are parsed after the project's own.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			prefixes, err := c.app.Prefixes(cmd.Context(), root, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pkg := range slices.Sorted(maps.Keys(prefixes)) {
				_, _ = fmt.Fprintf(out, "%s=%s\n", pkg, prefixes[pkg])
			}
			return nil
		},
	}
}
