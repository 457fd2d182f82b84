package engine

import (
	"fmt"

	"gflow.dev/gflow/internal/config"
)

// Request is a validated workflow request
type Request struct {
	Category config.Category
	// Label is the configured prefix for Category
	Label string
	// Name is the branch short name
	Name string
	// Source is the branch the new branch is created from
	Source string
	// Remote receives the new branch
	Remote string
}

// BranchName returns the full name of the branch to create
func (r Request) BranchName() string {
	return r.Label + "/" + r.Name
}

// Validate checks that every field needed by the workflow is set
func (r Request) Validate() error {
	switch {
	case r.Label == "":
		return fmt.Errorf("invalid request: empty category label")
	case r.Name == "":
		return fmt.Errorf("invalid request: empty branch name")
	case r.Source == "":
		return fmt.Errorf("invalid request: empty source branch")
	case r.Remote == "":
		return fmt.Errorf("invalid request: empty remote")
	}
	return nil
}

// Step identifies one git operation of the workflow
type Step int

// Workflow steps in execution order
const (
	StepSwitchSource Step = iota
	StepPullSource
	StepCreateBranch
	StepPushBranch
)

func (s Step) String() string {
	switch s {
	case StepSwitchSource:
		return "switch-source"
	case StepPullSource:
		return "pull-source"
	case StepCreateBranch:
		return "create-branch"
	case StepPushBranch:
		return "push-branch"
	default:
		return "unknown"
	}
}

// StepEntry records a completed step
type StepEntry struct {
	Step Step
	// Branch is the branch the step acted on
	Branch  string
	Message string
}

// StepLog is the ordered record of completed steps for one run
type StepLog struct {
	entries []StepEntry
}

// Add appends a completed step
func (l *StepLog) Add(step Step, branch, message string) {
	l.entries = append(l.entries, StepEntry{Step: step, Branch: branch, Message: message})
}

// Entries returns a copy of the recorded entries
func (l *StepLog) Entries() []StepEntry {
	out := make([]StepEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the human readable descriptions in order
func (l *StepLog) Messages() []string {
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.Message)
	}
	return out
}

// Len returns the number of completed steps
func (l *StepLog) Len() int {
	return len(l.entries)
}
