package git

import (
	"context"
	"strings"

	"gflow.dev/gflow/internal/tui"
)

// DryRunRunner prints the git commands it would run and always succeeds
type DryRunRunner struct {
	splog *tui.Splog
}

// NewDryRunRunner creates a new DryRunRunner
func NewDryRunRunner(splog *tui.Splog) *DryRunRunner {
	return &DryRunRunner{splog: splog}
}

func (r *DryRunRunner) print(args []string) {
	r.splog.Info("%s", tui.ColorDim("[dry-run] $ git "+strings.Join(args, " ")))
}

// Switch implements Runner
func (r *DryRunRunner) Switch(_ context.Context, branch string) error {
	r.print(switchArgs(branch))
	return nil
}

// Pull implements Runner
func (r *DryRunRunner) Pull(_ context.Context) error {
	r.print(pullArgs())
	return nil
}

// SwitchCreate implements Runner
func (r *DryRunRunner) SwitchCreate(_ context.Context, branch string) error {
	r.print(switchCreateArgs(branch))
	return nil
}

// PushUpstream implements Runner
func (r *DryRunRunner) PushUpstream(_ context.Context, remote, branch string) error {
	r.print(pushUpstreamArgs(remote, branch))
	return nil
}
