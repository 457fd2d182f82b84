package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ConfirmFunc asks a yes/no question and reports whether the answer was affirmative
type ConfirmFunc func(message string) (bool, error)

// IsAffirmative reports whether a free-form answer means yes: the first character of the
// trimmed answer, upper-cased, must be Y. Empty input is a no.
func IsAffirmative(response string) bool {
	padded := strings.ToUpper(strings.TrimSpace(response) + " ")
	return padded[0] == 'Y'
}

// NewConfirm returns a ConfirmFunc reading from in and writing to out.
// A survey prompt is used when both are terminals; otherwise a single line is read.
func NewConfirm(in io.Reader, out io.Writer) ConfirmFunc {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && isInteractive(inFile, outFile) {
		return surveyConfirm(inFile, outFile)
	}
	return LineConfirm(in, out)
}

// isInteractive checks that both ends are terminals and interactivity is not disabled
func isInteractive(in, out *os.File) bool {
	if os.Getenv("GFLOW_NON_INTERACTIVE") != "" {
		return false
	}
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func surveyConfirm(in, out *os.File) ConfirmFunc {
	return func(message string) (bool, error) {
		var answer string
		prompt := &survey.Input{Message: message}
		err := survey.AskOne(prompt, &answer, survey.WithStdio(in, out, out))
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		return IsAffirmative(answer), nil
	}
}

// LineConfirm prints the message and reads one line of input. EOF counts as a no.
func LineConfirm(in io.Reader, out io.Writer) ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(message string) (bool, error) {
		if _, err := fmt.Fprint(out, message+" "); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		return IsAffirmative(line), nil
	}
}
