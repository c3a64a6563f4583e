// Package commands implements the CLI commands for objcbuild.
package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/objcbuild/internal/app"
	"go.trai.ch/objcbuild/internal/build"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for objcbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	projectDir string
	verbose    bool
	json       bool
}

// Application represents the application logic interface.
type Application interface {
	SetLogMode(verbose, json bool)
	Home(ctx context.Context, root string) (string, error)
	Sources(ctx context.Context, root string, opts app.SourcesOptions) (app.SourcesReport, error)
	Prefixes(ctx context.Context, root string, extra []string) (map[string]string, error)
	Translate(ctx context.Context, root string, sets []domain.SourceSetName) ([]app.TranslateResult, error)
	Cycles(ctx context.Context, root string) (int, error)
	Verify(ctx context.Context, root string) (app.VerifyReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "objcbuild",
		Short:         "Translate Java sources to Objective-C with j2objc",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Registered before the default version flag so -v stays with --verbose.
	rootCmd.PersistentFlags().StringVarP(&c.projectDir, "project-dir", "C", ".", "Project directory containing "+domain.ProjectFileName)
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Show debug output including command lines")
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Log as JSON")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetLogMode(c.verbose, c.json)
	}

	rootCmd.AddCommand(c.newHomeCmd())
	rootCmd.AddCommand(c.newSourcesCmd())
	rootCmd.AddCommand(c.newPrefixesCmd())
	rootCmd.AddCommand(c.newTranslateCmd())
	rootCmd.AddCommand(c.newCyclesCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) root() (string, error) {
	abs, err := filepath.Abs(c.projectDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", c.projectDir)
	}
	return abs, nil
}
