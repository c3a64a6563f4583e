package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the resolved j2objc home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			home, err := c.app.Home(cmd.Context(), root)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), home)
			return nil
		},
	}
}
