// Package actions provides high-level business logic for CLI commands.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Splog, Runner and Confirm
//   - Argument validation is a pure function of args, configuration and the confirm prompt
//   - Failures are returned as typed errors; only the CLI decides exit codes
//
// Dependencies:
//   - engine: the branch creation workflow
//   - output: summary rendering
//   - tui: prompts and logging
package actions
