package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gflow.dev/gflow/internal/config"
	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/testhelpers"
)

// runGflow executes the root command in dir and returns its output and exit code.
func runGflow(t *testing.T, dir string, stdin string, args ...string) (string, int) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Setenv("GFLOW_LOG_FILE", filepath.Join(t.TempDir(), "gflow.log"))
	t.Setenv("GFLOW_NON_INTERACTIVE", "1")
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	cmd := NewRootCmd("test", "none", "unknown")
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	code := HandleError(&out, err)
	return out.String(), code
}

func TestRootCommand(t *testing.T) {
	t.Run("creates and publishes a feature branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "feat", "login")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "gflow executed successfully")
		require.Contains(t, out, "Switched branches to main;")
		require.Contains(t, out, "main branch updated (pull);")
		require.Contains(t, out, "feat/login branch created from main;")
		require.Contains(t, out, "feat/login branch remotely synchronized.")

		current, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "feat/login", current)

		upstream, err := scene.Repo.Upstream("feat/login")
		require.NoError(t, err)
		require.Equal(t, "origin/feat/login", upstream)
	})

	t.Run("no arguments prints usage", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "")
		require.Equal(t, gflowerrors.ExitOK, code)
		require.Contains(t, out, "gflow COMMAND branch_name [SOURCE_BRANCH]")
	})

	t.Run("invalid category exits 1 with usage", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "feature", "login")
		require.Equal(t, gflowerrors.ExitFailure, code)
		require.Contains(t, out, "ERROR: Invalid branch type feature. Accepted types: (epic, feat, fix, hfix)")
		require.Contains(t, out, "SYNOPSIS")
	})

	t.Run("missing name exits 1", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "feat")
		require.Equal(t, gflowerrors.ExitFailure, code)
		require.Contains(t, out, "branch_name is required.")
	})

	t.Run("existing branch fails create step with exit 2", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.CreateBranch("feat/login"))

		out, code := runGflow(t, scene.Dir, "", "feat", "login")
		require.Equal(t, gflowerrors.ExitGitError, code, out)
		require.Contains(t, out, "Command git switch --create feat/login returned non-zero exit")
		require.Contains(t, out, "STDERR=")
		require.Contains(t, out, "ERROR: Error creating feat/login branch")
		require.NotContains(t, out, "executed successfully")

		onRemote, err := scene.Repo.RemoteHasBranch("origin", "feat/login")
		require.NoError(t, err)
		require.False(t, onRemote)
	})

	t.Run("declined non-production source changes nothing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DevBranchSetup)

		out, code := runGflow(t, scene.Dir, "n\n", "fix", "typo", "dev")
		require.Equal(t, gflowerrors.ExitOK, code)
		require.Contains(t, out, "Aborted")

		current, err := scene.Repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", current)
		require.False(t, scene.Repo.LocalHasBranch("fix/typo"))
	})

	t.Run("confirmed non-production source", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DevBranchSetup)

		out, code := runGflow(t, scene.Dir, "y\n", "fix", "typo", "dev")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "fix/typo branch created from dev;")
		require.True(t, scene.Repo.LocalHasBranch("fix/typo"))
	})

	t.Run("custom labels and remote from config file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.RunGitCommand("remote", "rename", "origin", "upstream"))
		writeFile(t, filepath.Join(scene.Dir, config.FileName), "FEATURE=feature\nREMOTE=upstream\n")

		out, code := runGflow(t, scene.Dir, "", "feature", "search")
		require.Equal(t, gflowerrors.ExitOK, code, out)

		onRemote, err := scene.Repo.RemoteHasBranch("upstream", "feature/search")
		require.NoError(t, err)
		require.True(t, onRemote)
	})

	t.Run("empty config value exits 1 before any git change", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		writeFile(t, filepath.Join(scene.Dir, config.FileName), "REMOTE=\n")

		out, code := runGflow(t, scene.Dir, "", "feat", "login")
		require.Equal(t, gflowerrors.ExitFailure, code)
		require.Contains(t, out, "REMOTE")
		require.False(t, scene.Repo.LocalHasBranch("feat/login"))
	})

	t.Run("malformed version file exits 1", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		writeFile(t, filepath.Join(scene.Dir, config.VersionFileName), "not-a-version\n")

		out, code := runGflow(t, scene.Dir, "", "feat", "login")
		require.Equal(t, gflowerrors.ExitFailure, code)
		require.Contains(t, out, "failed to parse version")
		require.False(t, scene.Repo.LocalHasBranch("feat/login"))
	})

	t.Run("dry run prints commands without touching the repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "--dry-run", "epic", "billing")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "$ git switch --create epic/billing")
		require.Contains(t, out, "$ git push -u origin epic/billing")
		require.False(t, scene.Repo.LocalHasBranch("epic/billing"))
	})

	t.Run("name starting with a dash is not parsed as a flag", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "--dry-run", "fix", "-1234")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "$ git switch --create fix/-1234")
		require.Contains(t, out, "$ git push -u origin fix/-1234")
	})

	t.Run("flags after the category are branch arguments", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, code := runGflow(t, scene.Dir, "", "--dry-run", "feat", "--debug")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "$ git switch --create feat/--debug")
	})

	t.Run("unknown remote is reported before the workflow runs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		writeFile(t, filepath.Join(scene.Dir, config.FileName), "REMOTE=nowhere\n")

		out, code := runGflow(t, scene.Dir, "", "--dry-run", "feat", "login")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "WARNING: remote nowhere is not configured in this repository")
		require.Contains(t, out, "$ git push -u nowhere feat/login")
	})

	t.Run("show config prints reloadable configuration", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		writeFile(t, filepath.Join(scene.Dir, config.FileName), "HOTFIX=hotfix\n")

		out, code := runGflow(t, scene.Dir, "", "--show-config")
		require.Equal(t, gflowerrors.ExitOK, code, out)
		require.Contains(t, out, "# project version 0.1.0")
		require.Contains(t, out, "# current branch main")

		cfg, err := config.Resolve(strings.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, "hotfix", cfg.Hotfix)
	})

	t.Run("outside a repository exits 1", func(t *testing.T) {
		testhelpers.RequireGit(t)

		out, code := runGflow(t, t.TempDir(), "", "feat", "login")
		require.Equal(t, gflowerrors.ExitFailure, code)
		require.Contains(t, out, "ERROR: This folder doesn't seem to be the root of a git project.")
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}
