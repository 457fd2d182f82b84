package actions

import (
	"context"
	"errors"

	"gflow.dev/gflow/internal/engine"
	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/output"
	"gflow.dev/gflow/internal/runtime"
)

// StartAction validates args, runs the workflow and prints the summary.
//
// Showing usage and declining the confirmation are clean exits and return nil.
// On a workflow failure the partial step log is written at debug level and the
// *errors.GitOperationError is returned for the caller to report.
func StartAction(ctx context.Context, rt *runtime.Context, args []string) error {
	splog := rt.Splog

	req, err := ParseRequest(args, rt.Config, rt.Confirm)
	switch {
	case errors.Is(err, gflowerrors.ErrUsageRequested):
		splog.Page(Usage(rt.Config))
		return nil
	case errors.Is(err, gflowerrors.ErrUserDeclined):
		splog.Info("Aborted")
		return nil
	case err != nil:
		return err
	}

	splog.Debug("creating %s %s from %s", req.Category, req.BranchName(), req.Source)

	log, err := engine.NewEngine(rt.Runner, splog).Execute(ctx, req)
	if err != nil {
		for _, msg := range log.Messages() {
			splog.Debug("completed before failure: %s", msg)
		}
		return err
	}

	output.PrintSummary(splog.Writer(), log)
	return nil
}
