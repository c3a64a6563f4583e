package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/objcbuild/internal/ui/style"
)

func (c *CLI) newCyclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "Run cycle_finder over the main and test sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			found, err := c.app.Cycles(cmd.Context(), root)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d cycles\n", style.Check, found)
			return nil
		},
	}
}
