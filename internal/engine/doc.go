// Package engine executes the gflow branch creation workflow.
//
// A run is a fixed sequence of four git operations:
//   - switch to the source branch
//   - pull the source branch
//   - create and switch to <label>/<name>
//   - push the new branch to the remote with upstream tracking
//
// Each step runs only if the previous one succeeded. Completed steps are
// recorded in a StepLog so callers can report progress or the exact point of
// failure; nothing is rolled back.
package engine
