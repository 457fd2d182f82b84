// Package tui provides the terminal user interface for gflow.
//
// It handles:
//   - Yes/no confirmation prompts (survey on a terminal, line input otherwise)
//   - Structured logging and status reporting (Splog) with a rotating log file
//   - Terminal styling and colors (using lipgloss)
package tui
