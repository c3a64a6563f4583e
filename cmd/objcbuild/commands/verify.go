package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/objcbuild/internal/ui/style"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that j2objc is installed and recent enough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			report, err := c.app.Verify(cmd.Context(), root)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s j2objc %s\n  %s\n", style.Check, report.Version, report.Home)
			return nil
		},
	}
}
