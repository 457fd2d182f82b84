package runtime

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"gflow.dev/gflow/internal/config"
	"gflow.dev/gflow/internal/git"
	"gflow.dev/gflow/internal/tui"
)

// Context provides access to configuration and collaborators for actions
type Context struct {
	Config  config.Config
	Version *semver.Version
	Splog   *tui.Splog
	Runner  git.Runner
	Confirm tui.ConfirmFunc
	Repo    *git.Repository
}

// Options controls how GetContext builds a Context
type Options struct {
	// Dir is the repository root; defaults to the process working directory
	Dir string
	// DryRun prints git commands instead of running them
	DryRun bool
	// Debug shows debug messages on the console
	Debug bool
	// LogFilePath enables file logging when non-empty
	LogFilePath string
	In          io.Reader
	Out         io.Writer
}

// NewSplog creates the logger for a run. File logging problems fall back to console-only output.
func NewSplog(opts Options) *tui.Splog {
	splogOpts := tui.SplogOptions{Writer: opts.Out, Debug: opts.Debug, LogFilePath: opts.LogFilePath}
	splog, err := tui.NewSplogWithConfig(splogOpts)
	if err != nil {
		splogOpts.LogFilePath = ""
		splog, _ = tui.NewSplogWithConfig(splogOpts)
		splog.Debug("file logging disabled: %v", err)
	}
	return splog
}

// GetContext checks the environment and resolves configuration and version, in that order.
// Nothing in the working copy is modified.
func GetContext(splog *tui.Splog, opts Options) (*Context, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	repo, err := git.CheckEnvironment(dir)
	if err != nil {
		return nil, err
	}
	if branch, err := repo.GetCurrentBranch(); err == nil {
		splog.Debug("repository %s on branch %s", repo.GetRepoRoot(), branch)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	version, err := config.LoadVersion(filepath.Join(dir, config.VersionFileName), cfg)
	if err != nil {
		return nil, err
	}
	splog.Debug("project version %s", version)

	if url, err := repo.GetRemoteURL(cfg.Remote); err == nil {
		splog.Debug("remote %s -> %s", cfg.Remote, url)
	} else {
		splog.Warn("remote %s is not configured in this repository, publishing the branch will fail", cfg.Remote)
		splog.Debug("%v", err)
	}

	var runner git.Runner = git.NewCommandRunner(dir, splog)
	if opts.DryRun {
		runner = git.NewDryRunRunner(splog)
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Context{
		Config:  cfg,
		Version: version,
		Splog:   splog,
		Runner:  runner,
		Confirm: tui.NewConfirm(in, out),
		Repo:    repo,
	}, nil
}
