package cli

import (
	"errors"
	"io"

	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/output"
	"gflow.dev/gflow/internal/tui"
)

// HandleError reports err on w and returns the process exit code.
// Failed git invocations are echoed with their captured output before the error line.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return gflowerrors.ExitOK
	}

	// Console-only: the run's file log is closed by the time errors reach here.
	splog, _ := tui.NewSplogWithConfig(tui.SplogOptions{Writer: w})

	var (
		opErr    *gflowerrors.GitOperationError
		cmdErr   *gflowerrors.GitCommandError
		usageErr *gflowerrors.UsageError
	)
	switch {
	case errors.Is(err, gflowerrors.ErrUsageRequested), errors.Is(err, gflowerrors.ErrUserDeclined):
		// Clean exits, nothing to report.
	case errors.As(err, &opErr):
		if errors.As(opErr.Err, &cmdErr) {
			output.PrintCommandFailure(w, cmdErr, opErr.Branch)
		}
		splog.Error("%s", opErr.Message)
	case errors.As(err, &usageErr):
		splog.Error("%s", usageErr.Message)
		splog.Page(usageErr.Usage)
	default:
		splog.Error("%s", err.Error())
	}

	return gflowerrors.ExitCode(err)
}
