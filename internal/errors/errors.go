// Package errors provides sentinel errors and custom error types for the gflow application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrStartup indicates the environment cannot run gflow (no git, no repository)
	ErrStartup = errors.New("startup check failed")

	// ErrConfig indicates a malformed or unreadable configuration file
	ErrConfig = errors.New("invalid configuration")

	// ErrVersion indicates a malformed version marker
	ErrVersion = errors.New("invalid version")

	// ErrUsage indicates bad or missing command line arguments
	ErrUsage = errors.New("invalid usage")

	// ErrUsageRequested indicates the user invoked gflow without arguments
	ErrUsageRequested = errors.New("usage requested")

	// ErrUserDeclined indicates the user answered no to a confirmation prompt
	ErrUserDeclined = errors.New("aborted by user")

	// ErrGitOperation indicates a git invocation failed during the workflow
	ErrGitOperation = errors.New("git operation failed")
)

// Exit codes returned by the gflow binary
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitGitError = 2
)

// StartupError represents a missing prerequisite detected before any workflow logic runs
type StartupError struct {
	Message string
	Err     error
}

func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrStartup
func (e *StartupError) Is(target error) bool {
	return target == ErrStartup
}

// NewStartupError creates a new StartupError
func NewStartupError(message string, err error) *StartupError {
	return &StartupError{Message: message, Err: err}
}

// ConfigError represents a configuration file that could not be read or holds an invalid value
type ConfigError struct {
	Path string
	Key  string
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Key != "" && e.Err == nil:
		return fmt.Sprintf("invalid empty configuration [%s] in %s", e.Key, e.Path)
	case e.Key != "":
		return fmt.Sprintf("invalid configuration [%s] in %s: %v", e.Key, e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to read configuration %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(path, key string, err error) *ConfigError {
	return &ConfigError{Path: path, Key: key, Err: err}
}

// VersionError represents a version marker that is not a valid semantic version
type VersionError struct {
	Value string
	Err   error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("failed to parse version %q: %v", e.Value, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrVersion
func (e *VersionError) Is(target error) bool {
	return target == ErrVersion
}

// NewVersionError creates a new VersionError
func NewVersionError(value string, err error) *VersionError {
	return &VersionError{Value: value, Err: err}
}

// UsageError represents invalid command line arguments. Usage holds the text shown alongside it.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new UsageError
func NewUsageError(message, usage string) *UsageError {
	return &UsageError{Message: message, Usage: usage}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.CommandLine())
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// CommandLine returns the invoked command joined with its arguments
func (e *GitCommandError) CommandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, exitCode int, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// GitOperationError represents a failed workflow step. Err usually holds a *GitCommandError.
type GitOperationError struct {
	Step    string
	Branch  string
	Message string
	Err     error
}

func (e *GitOperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GitOperationError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrGitOperation
func (e *GitOperationError) Is(target error) bool {
	return target == ErrGitOperation
}

// NewGitOperationError creates a new GitOperationError
func NewGitOperationError(step, branch, message string, err error) *GitOperationError {
	return &GitOperationError{
		Step:    step,
		Branch:  branch,
		Message: message,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil,
		errors.Is(err, ErrUsageRequested),
		errors.Is(err, ErrUserDeclined):
		return ExitOK
	case errors.Is(err, ErrGitOperation):
		return ExitGitError
	default:
		return ExitFailure
	}
}
