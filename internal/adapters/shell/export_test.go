package shell

var (
	ResolveEnvironment = resolveEnvironment
	LookPath           = lookPath
)

// NewRunnerWithEnviron creates a Runner with a fixed inherited environment.
func NewRunnerWithEnviron(env []string) *Runner {
	return &Runner{environ: func() []string { return env }}
}
