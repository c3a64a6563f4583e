package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/ui/style"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [sets...]",
		Short: "Translate source sets to Objective-C",
		Long:  "Translate the given source sets, or main and test when none are given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			sets := make([]domain.SourceSetName, 0, len(args))
			for _, a := range args {
				sets = append(sets, domain.SourceSetName(a))
			}

			results, err := c.app.Translate(cmd.Context(), root, sets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s %s: %d sources, %d resources %s %s\n",
					style.Check, r.Set, r.Sources, r.Resources.Copied, style.Arrow, r.DestDir)
			}
			return nil
		},
	}
}
