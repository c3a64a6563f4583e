package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcbuild/cmd/objcbuild/commands"
	"go.trai.ch/objcbuild/internal/app"
	"go.trai.ch/objcbuild/internal/build"
	"go.trai.ch/objcbuild/internal/core/domain"
)

type mockApp struct {
	verbose, json bool
	root          string

	homeFunc      func() (string, error)
	sourcesFunc   func(opts app.SourcesOptions) (app.SourcesReport, error)
	prefixesFunc  func(extra []string) (map[string]string, error)
	translateFunc func(sets []domain.SourceSetName) ([]app.TranslateResult, error)
	cyclesFunc    func() (int, error)
	verifyFunc    func() (app.VerifyReport, error)
}

func (m *mockApp) SetLogMode(verbose, json bool) {
	m.verbose = verbose
	m.json = json
}

func (m *mockApp) Home(_ context.Context, root string) (string, error) {
	m.root = root
	return m.homeFunc()
}

func (m *mockApp) Sources(_ context.Context, root string, opts app.SourcesOptions) (app.SourcesReport, error) {
	m.root = root
	return m.sourcesFunc(opts)
}

func (m *mockApp) Prefixes(_ context.Context, root string, extra []string) (map[string]string, error) {
	m.root = root
	return m.prefixesFunc(extra)
}

func (m *mockApp) Translate(_ context.Context, root string, sets []domain.SourceSetName) ([]app.TranslateResult, error) {
	m.root = root
	return m.translateFunc(sets)
}

func (m *mockApp) Cycles(_ context.Context, root string) (int, error) {
	m.root = root
	return m.cyclesFunc()
}

func (m *mockApp) Verify(_ context.Context, root string) (app.VerifyReport, error) {
	m.root = root
	return m.verifyFunc()
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Home(t *testing.T) {
	dir := t.TempDir()
	mock := &mockApp{homeFunc: func() (string, error) { return "/opt/j2objc", nil }}

	out, err := execute(t, mock, "-C", dir, "--verbose", "home")
	require.NoError(t, err)
	assert.Equal(t, "/opt/j2objc\n", out)
	assert.Equal(t, dir, mock.root)
	assert.True(t, mock.verbose)
	assert.False(t, mock.json)
}

func TestCommands_Home_DefaultsToWorkingDirectory(t *testing.T) {
	mock := &mockApp{homeFunc: func() (string, error) { return "/opt/j2objc", nil }}

	_, err := execute(t, mock, "home")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(mock.root))
}

func TestCommands_Sources(t *testing.T) {
	t.Run("wires flags and lists directories", func(t *testing.T) {
		var captured app.SourcesOptions
		mock := &mockApp{sourcesFunc: func(opts app.SourcesOptions) (app.SourcesReport, error) {
			captured = opts
			return app.SourcesReport{Dirs: []string{"/p/src/test/resources"}}, nil
		}}

		out, err := execute(t, mock, "sources", "--set", "test", "--kind", "resources")
		require.NoError(t, err)
		assert.Equal(t, app.SourcesOptions{Set: domain.SourceSetTest, Kind: domain.FileKindResources}, captured)
		assert.Equal(t, "/p/src/test/resources\n", out)
	})

	t.Run("lists files", func(t *testing.T) {
		mock := &mockApp{sourcesFunc: func(opts app.SourcesOptions) (app.SourcesReport, error) {
			assert.True(t, opts.Files)
			return app.SourcesReport{Dirs: []string{"/p/src"}, Files: []string{"/p/src/A.java", "/p/src/B.java"}}, nil
		}}

		out, err := execute(t, mock, "sources", "-f")
		require.NoError(t, err)
		assert.Equal(t, "/p/src/A.java\n/p/src/B.java\n", out)
	})
}

func TestCommands_Prefixes(t *testing.T) {
	var extra []string
	mock := &mockApp{prefixesFunc: func(e []string) (map[string]string, error) {
		extra = e
		return map[string]string{"com.b": "B", "com.a": "A"}, nil
	}}

	out, err := execute(t, mock, "prefixes", "--", "--prefix", "com.b=B")
	require.NoError(t, err)
	assert.Equal(t, []string{"--prefix", "com.b=B"}, extra)
	assert.Equal(t, "com.a=A\ncom.b=B\n", out)
}

func TestCommands_Translate(t *testing.T) {
	t.Run("passes source sets", func(t *testing.T) {
		var captured []domain.SourceSetName
		mock := &mockApp{translateFunc: func(sets []domain.SourceSetName) ([]app.TranslateResult, error) {
			captured = sets
			return []app.TranslateResult{{
				Set:       domain.SourceSetMain,
				DestDir:   "/p/build/j2objcOutputs/main",
				Sources:   3,
				Resources: domain.CopyResult{Copied: 1},
			}}, nil
		}}

		out, err := execute(t, mock, "translate", "main")
		require.NoError(t, err)
		assert.Equal(t, []domain.SourceSetName{domain.SourceSetMain}, captured)
		assert.Equal(t, "✓ main: 3 sources, 1 resources → /p/build/j2objcOutputs/main\n", out)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{translateFunc: func(_ []domain.SourceSetName) ([]app.TranslateResult, error) {
			return nil, errors.New("simulated error")
		}}

		_, err := execute(t, mock, "translate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Cycles(t *testing.T) {
	mock := &mockApp{cyclesFunc: func() (int, error) { return 4, nil }}

	out, err := execute(t, mock, "--json", "cycles")
	require.NoError(t, err)
	assert.Equal(t, "✓ 4 cycles\n", out)
	assert.True(t, mock.json)
}

func TestCommands_Verify(t *testing.T) {
	mock := &mockApp{verifyFunc: func() (app.VerifyReport, error) {
		return app.VerifyReport{Home: "/opt/j2objc", Version: "2.8"}, nil
	}}

	out, err := execute(t, mock, "verify")
	require.NoError(t, err)
	assert.Equal(t, "✓ j2objc 2.8\n  /opt/j2objc\n", out)
}

func TestCommands_RejectsArguments(t *testing.T) {
	for _, name := range []string{"home", "sources", "cycles", "verify"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, &mockApp{}, name, "extra")
			require.Error(t, err)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	mock := &mockApp{homeFunc: func() (string, error) { return "/opt/j2objc", nil }}

	out, err := execute(t, mock, "-v", "home")
	require.NoError(t, err)
	assert.Equal(t, "/opt/j2objc\n", out)
	assert.True(t, mock.verbose)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "objcbuild version "+build.Version)
}
