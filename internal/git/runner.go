package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/tui"
)

// Runner defines the git operations used by the workflow engine.
// This allows the engine to be used with both real git and fake implementations.
type Runner interface {
	// Switch switches the working copy to an existing branch
	Switch(ctx context.Context, branch string) error
	// Pull updates the current branch from its upstream
	Pull(ctx context.Context) error
	// SwitchCreate creates a branch at HEAD and switches to it
	SwitchCreate(ctx context.Context, branch string) error
	// PushUpstream publishes a branch to remote and sets it as upstream
	PushUpstream(ctx context.Context, remote, branch string) error
}

func switchArgs(branch string) []string {
	return []string{"switch", branch}
}

func pullArgs() []string {
	return []string{"pull"}
}

func switchCreateArgs(branch string) []string {
	return []string{"switch", "--create", branch}
}

func pushUpstreamArgs(remote, branch string) []string {
	return []string{"push", "-u", remote, branch}
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	splog      *tui.Splog
}

// NewCommandRunner creates a new CommandRunner. An empty workingDir runs git in the process directory.
func NewCommandRunner(workingDir string, splog *tui.Splog) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, splog: splog}
}

// Run executes a git command and returns its trimmed standard output.
// A non-zero exit yields a *errors.GitCommandError holding the captured output.
// No deadline is applied; a hung git process blocks until ctx is canceled.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r.splog.Debug("$ git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", gflowerrors.NewGitCommandError("git", args, exitCode, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Switch implements Runner
func (r *CommandRunner) Switch(ctx context.Context, branch string) error {
	_, err := r.Run(ctx, switchArgs(branch)...)
	return err
}

// Pull implements Runner
func (r *CommandRunner) Pull(ctx context.Context) error {
	_, err := r.Run(ctx, pullArgs()...)
	return err
}

// SwitchCreate implements Runner
func (r *CommandRunner) SwitchCreate(ctx context.Context, branch string) error {
	_, err := r.Run(ctx, switchCreateArgs(branch)...)
	return err
}

// PushUpstream implements Runner
func (r *CommandRunner) PushUpstream(ctx context.Context, remote, branch string) error {
	_, err := r.Run(ctx, pushUpstreamArgs(remote, branch)...)
	return err
}
