// Package testhelpers provides testing utilities for gflow,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful in test setup where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")

	require.Equal(t, sorted(expected), sorted(splitLines(output)), "Branches do not match")
}

// ExpectRemoteBranches asserts that remote has exactly the expected branches.
func ExpectRemoteBranches(t *testing.T, repo *GitRepo, remote string, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("ls-remote", "--heads", remote)
	require.NoError(t, err, "Failed to list remote branches")

	branches := []string{}
	for _, line := range splitLines(output) {
		// <sha>\trefs/heads/<name>
		_, ref, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		branches = append(branches, strings.TrimPrefix(ref, "refs/heads/"))
	}

	require.Equal(t, sorted(expected), sorted(branches), "Remote branches do not match")
}

// ExpectCurrentBranch asserts the checked out branch.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranch()
	require.NoError(t, err, "Failed to read current branch")
	require.Equal(t, expected, current)
}

// ExpectSameCommit asserts that two refs resolve to the same commit.
func ExpectSameCommit(t *testing.T, repo *GitRepo, a, b string) {
	t.Helper()

	shaA, err := repo.RunGitCommandAndGetOutput("rev-parse", a)
	require.NoError(t, err)
	shaB, err := repo.RunGitCommandAndGetOutput("rev-parse", b)
	require.NoError(t, err)
	require.Equal(t, shaA, shaB, "%s and %s point at different commits", a, b)
}

func splitLines(s string) []string {
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func sorted(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}
