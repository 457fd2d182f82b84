// Package output renders gflow results for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"gflow.dev/gflow/internal/engine"
	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/tui"
)

// summaryIndent prefixes every step line under the summary heading
const summaryIndent = " "

// PrintSummary writes the success banner followed by every completed step
func PrintSummary(w io.Writer, log *engine.StepLog) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, tui.Bold(tui.ColorGreen("gflow executed successfully")))
	_, _ = fmt.Fprintln(w, "Summary of the executed actions:")
	for _, entry := range log.Entries() {
		_, _ = fmt.Fprintln(w, summaryIndent+colorBranch(entry.Message, entry.Branch))
	}
	_, _ = fmt.Fprintln(w, "Have a good one!")
}

// PrintCommandFailure echoes a failed git invocation with its exit code and captured output.
// Arguments equal to branch are highlighted.
func PrintCommandFailure(w io.Writer, err *gflowerrors.GitCommandError, branch string) {
	parts := make([]string, 0, len(err.Args)+1)
	parts = append(parts, err.Command)
	for _, arg := range err.Args {
		if branch != "" && arg == branch {
			arg = tui.ColorBranchName(arg)
		}
		parts = append(parts, arg)
	}

	_, _ = fmt.Fprintf(w, "Command %s returned non-zero exit %d\n", strings.Join(parts, " "), err.ExitCode)
	if stderr := strings.TrimRight(err.Stderr, "\n"); stderr != "" {
		_, _ = fmt.Fprintf(w, "STDERR=%s\n", stderr)
	}
	if stdout := strings.TrimRight(err.Stdout, "\n"); stdout != "" {
		_, _ = fmt.Fprintf(w, "STDOUT=%s\n", stdout)
	}
}

// colorBranch highlights the first occurrence of branch in message
func colorBranch(message, branch string) string {
	if branch == "" {
		return message
	}
	return strings.Replace(message, branch, tui.ColorBranchName(branch), 1)
}
