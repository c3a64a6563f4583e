// Package app implements the application layer for objcbuild.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/objcbuild/internal/engine/fileset"
	"go.trai.ch/objcbuild/internal/engine/prefix"
	"go.trai.ch/objcbuild/internal/engine/process"
	"go.trai.ch/objcbuild/internal/engine/sourceset"
	"go.trai.ch/objcbuild/internal/engine/toolchain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	javaPattern   = "**/*.java"
	cyclesPattern = `(\d+) CYCLES FOUND`
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	resolver *toolchain.Resolver
	executor *process.Executor
	prefixes *prefix.Parser
	copier   ports.Copier
	logger   ports.Logger
}

// Components holds what the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	resolver *toolchain.Resolver,
	executor *process.Executor,
	prefixes *prefix.Parser,
	copier ports.Copier,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		executor: executor,
		prefixes: prefixes,
		copier:   copier,
		logger:   log,
	}
}

// SetLogMode switches the logger to debug output and/or JSON when it supports it.
func (a *App) SetLogMode(verbose, json bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
}

// Home returns the resolved toolchain directory for the project in root.
func (a *App) Home(_ context.Context, root string) (string, error) {
	return a.resolver.Home(root)
}

// SourcesOptions configures the Sources method.
type SourcesOptions struct {
	Set   domain.SourceSetName
	Kind  domain.FileKind
	Files bool
}

// SourcesReport lists a source set's directories and, on request, its files.
type SourcesReport struct {
	Dirs  []string
	Files []string
}

// Sources returns the directories configured for a source set and file kind.
// Listed java files are checked for name collisions unless the check is disabled.
func (a *App) Sources(_ context.Context, root string, opts SourcesOptions) (SourcesReport, error) {
	project, err := a.loader.Load(root)
	if err != nil {
		return SourcesReport{}, err
	}

	set, err := sourceset.Dirs(project, opts.Set, opts.Kind)
	if err != nil {
		return SourcesReport{}, err
	}

	report := SourcesReport{Dirs: set.SrcDirs}
	if !opts.Files {
		return report, nil
	}

	var includes []string
	if opts.Kind == domain.FileKindJava {
		includes = []string{javaPattern}
	}
	if report.Files, err = fileset.Tree(set.SrcDirs, includes, nil); err != nil {
		return SourcesReport{}, err
	}

	if opts.Kind == domain.FileKindJava && project.J2ObjC.FilenameCollisionCheck {
		if err := fileset.CheckCollisions(project.DescriptorName(), report.Files); err != nil {
			return SourcesReport{}, err
		}
	}
	return report, nil
}

// Prefixes returns the package prefixes declared by the project's translateArgs
// followed by extra arguments.
func (a *App) Prefixes(_ context.Context, root string, extra []string) (map[string]string, error) {
	project, err := a.loader.Load(root)
	if err != nil {
		return nil, err
	}

	args := slices.Concat(project.J2ObjC.TranslateArgs, extra)
	return a.prefixes.Parse(project.Root, args)
}

// TranslateResult summarizes the translation of one source set.
type TranslateResult struct {
	Set       domain.SourceSetName
	DestDir   string
	Sources   int
	Resources domain.CopyResult
}

// Translate runs j2objc for each source set. No sets means main and test.
// Source sets are translated concurrently; results follow the order of sets.
func (a *App) Translate(ctx context.Context, root string, sets []domain.SourceSetName) ([]TranslateResult, error) {
	project, err := a.loader.Load(root)
	if err != nil {
		return nil, err
	}

	home, err := a.verifiedHome(ctx, project)
	if err != nil {
		return nil, err
	}

	prefixes, err := a.prefixes.Parse(project.Root, project.J2ObjC.TranslateArgs)
	if err != nil {
		return nil, err
	}
	if len(prefixes) > 0 {
		a.logger.Debug(fmt.Sprintf("using %d package prefixes", len(prefixes)))
	}

	if len(sets) == 0 {
		sets = domain.SourceSetNames()
	}

	results := make([]TranslateResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, set := range sets {
		g.Go(func() error {
			res, err := a.translateSet(ctx, project, home, set)
			if err != nil {
				return zerr.Wrap(err, "failed to translate "+string(set)+" sources")
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) translateSet(
	ctx context.Context,
	project *domain.Project,
	home string,
	set domain.SourceSetName,
) (TranslateResult, error) {
	dest := fileset.Join(project.J2ObjC.DestDir, string(set))
	result := TranslateResult{Set: set, DestDir: dest}

	javaDirs, err := sourceset.Dirs(project, set, domain.FileKindJava)
	if err != nil {
		return result, err
	}

	files, err := fileset.Tree(javaDirs.SrcDirs, []string{javaPattern}, nil)
	if err != nil {
		return result, err
	}

	if len(files) == 0 {
		a.logger.Warn("no java sources in " + string(set))
	} else {
		if project.J2ObjC.FilenameCollisionCheck {
			if err := fileset.CheckCollisions(project.DescriptorName(), files); err != nil {
				return result, err
			}
		}

		args := slices.Concat(
			[]string{"-d", dest, "-sourcepath", strings.Join(javaDirs.SrcDirs, string(os.PathListSeparator))},
			project.J2ObjC.TranslateArgs,
			files,
		)

		var stdout, stderr bytes.Buffer
		if _, err := a.executor.Exec(ctx, domain.CommandSpec{
			Executable: toolchain.Binary(home, domain.TranslatorBinary),
			Args:       args,
			Dir:        project.Root,
		}, &stdout, &stderr, ""); err != nil {
			return result, err
		}
		result.Sources = len(files)
		a.logger.Info(fmt.Sprintf("translated %d %s sources into %s", len(files), set, dest))
	}

	resDirs, err := sourceset.Dirs(project, set, domain.FileKindResources)
	if err != nil {
		return result, err
	}

	if result.Resources, err = fileset.Copy(a.copier, domain.CopySpec{
		From: resDirs.SrcDirs,
		Into: dest,
	}); err != nil {
		return result, err
	}
	if result.Resources.DidWork() {
		a.logger.Info(fmt.Sprintf("copied %d %s resources", result.Resources.Copied, set))
	}

	return result, nil
}

// Cycles runs cycle_finder over the main and test sources and returns the number of cycles found.
// A count different from cycleFinderExpectedCycles is an error.
func (a *App) Cycles(ctx context.Context, root string) (int, error) {
	project, err := a.loader.Load(root)
	if err != nil {
		return 0, err
	}

	home, err := a.verifiedHome(ctx, project)
	if err != nil {
		return 0, err
	}

	var dirs []string
	for _, set := range domain.SourceSetNames() {
		d, err := sourceset.Dirs(project, set, domain.FileKindJava)
		if err != nil {
			return 0, err
		}
		dirs = append(dirs, d.SrcDirs...)
	}

	files, err := fileset.Tree(dirs, []string{javaPattern}, nil)
	if err != nil {
		return 0, err
	}

	args := slices.Concat(
		[]string{"-sourcepath", strings.Join(dirs, string(os.PathListSeparator))},
		project.J2ObjC.CycleFinderArgs,
		files,
	)

	raw, err := a.executor.Capture(ctx, domain.CommandSpec{
		Executable:      toolchain.Binary(home, domain.CycleFinderBinary),
		Args:            args,
		Dir:             project.Root,
		IgnoreExitValue: true,
	}, cyclesPattern)
	if err != nil {
		return 0, err
	}

	found, err := strconv.Atoi(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "unable to parse cycle count"), "output", raw)
	}

	expected := project.J2ObjC.CycleFinderExpectedCycles
	if found != expected {
		err := zerr.Wrap(domain.ErrUnexpectedCycles,
			fmt.Sprintf("cycle_finder found %d cycles, expected %d.\n"+
				"Fix the cycles or set j2objc.cycleFinderExpectedCycles in %s", found, expected, project.DescriptorName()))
		return found, zerr.With(zerr.With(err, "found", found), "expected", expected)
	}

	a.logger.Info(fmt.Sprintf("cycle_finder found %d cycles", found))
	return found, nil
}

// VerifyReport describes a verified toolchain.
type VerifyReport struct {
	Home    string
	Version string
}

// Verify resolves the toolchain and checks its version against minVersion.
func (a *App) Verify(ctx context.Context, root string) (VerifyReport, error) {
	project, err := a.loader.Load(root)
	if err != nil {
		return VerifyReport{}, err
	}

	home, err := a.resolver.Home(project.Root)
	if err != nil {
		return VerifyReport{}, err
	}

	v, err := a.resolver.Verify(ctx, home, project.J2ObjC.MinVersion)
	if err != nil {
		return VerifyReport{}, err
	}

	return VerifyReport{Home: home, Version: v.Original()}, nil
}

// verifiedHome resolves the toolchain and, when minVersion is set, checks its version.
func (a *App) verifiedHome(ctx context.Context, project *domain.Project) (string, error) {
	home, err := a.resolver.Home(project.Root)
	if err != nil {
		return "", err
	}

	if project.J2ObjC.MinVersion != "" {
		if _, err := a.resolver.Verify(ctx, home, project.J2ObjC.MinVersion); err != nil {
			return "", err
		}
	}
	return home, nil
}
