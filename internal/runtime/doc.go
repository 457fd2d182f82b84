// Package runtime provides the execution context for gflow commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the resolved configuration, logger, git runner and confirmation prompt.
// Values are built once per invocation and passed explicitly; there is no
// process-wide state.
package runtime
