package engine

import (
	"context"
	"fmt"

	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/git"
	"gflow.dev/gflow/internal/tui"
)

// Engine runs the branch creation workflow
type Engine struct {
	runner git.Runner
	splog  *tui.Splog
}

// NewEngine creates an engine that performs git operations through runner
func NewEngine(runner git.Runner, splog *tui.Splog) *Engine {
	return &Engine{runner: runner, splog: splog}
}

type workflowStep struct {
	step    Step
	branch  string
	run     func(ctx context.Context) error
	success string
	failure string
}

func (e *Engine) plan(req Request) []workflowStep {
	branch := req.BranchName()
	return []workflowStep{
		{
			step:    StepSwitchSource,
			branch:  req.Source,
			run:     func(ctx context.Context) error { return e.runner.Switch(ctx, req.Source) },
			success: fmt.Sprintf("Switched branches to %s;", req.Source),
			failure: fmt.Sprintf("Error switching to %s", req.Source),
		},
		{
			step:    StepPullSource,
			branch:  req.Source,
			run:     e.runner.Pull,
			success: fmt.Sprintf("%s branch updated (pull);", req.Source),
			failure: fmt.Sprintf("Error updating the %s branch", req.Source),
		},
		{
			step:    StepCreateBranch,
			branch:  branch,
			run:     func(ctx context.Context) error { return e.runner.SwitchCreate(ctx, branch) },
			success: fmt.Sprintf("%s branch created from %s;", branch, req.Source),
			failure: fmt.Sprintf("Error creating %s branch", branch),
		},
		{
			step:    StepPushBranch,
			branch:  branch,
			run:     func(ctx context.Context) error { return e.runner.PushUpstream(ctx, req.Remote, branch) },
			success: fmt.Sprintf("%s branch remotely synchronized.", branch),
			failure: fmt.Sprintf("Error trying to remotely synchronize the %s branch", branch),
		},
	}
}

// Execute runs the workflow steps in order and stops at the first failure.
// The returned log holds every step that completed, also when an error is returned.
// Completed steps are never rolled back.
func (e *Engine) Execute(ctx context.Context, req Request) (*StepLog, error) {
	log := &StepLog{}
	if err := req.Validate(); err != nil {
		return log, err
	}

	for _, s := range e.plan(req) {
		e.splog.Debug("%s: %s", s.step, s.branch)
		if err := s.run(ctx); err != nil {
			e.splog.Debug("%s failed: %v", s.step, err)
			return log, gflowerrors.NewGitOperationError(s.step.String(), s.branch, s.failure, err)
		}
		log.Add(s.step, s.branch, s.success)
	}

	return log, nil
}
