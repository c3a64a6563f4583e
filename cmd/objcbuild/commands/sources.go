package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/objcbuild/internal/app"
	"go.trai.ch/objcbuild/internal/core/domain"
)

func (c *CLI) newSourcesCmd() *cobra.Command {
	var (
		set   string
		kind  string
		files bool
	)

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the directories of a source set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.root()
			if err != nil {
				return err
			}

			report, err := c.app.Sources(cmd.Context(), root, app.SourcesOptions{
				Set:   domain.SourceSetName(set),
				Kind:  domain.FileKind(kind),
				Files: files,
			})
			if err != nil {
				return err
			}

			lines := report.Dirs
			if files {
				lines = report.Files
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&set, "set", "s", string(domain.SourceSetMain), "Source set: main or test")
	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.FileKindJava), "File kind: java or resources")
	cmd.Flags().BoolVarP(&files, "files", "f", false, "List the files instead of the directories")
	return cmd
}
