package actions

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gflow.dev/gflow/internal/config"
	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/tui"
)

// recordingConfirm answers with a fixed response and remembers the prompts it saw
type recordingConfirm struct {
	answer   string
	messages []string
}

func (r *recordingConfirm) confirm(message string) (bool, error) {
	r.messages = append(r.messages, message)
	return tui.IsAffirmative(r.answer), nil
}

func mustNotPrompt(t *testing.T) tui.ConfirmFunc {
	return func(message string) (bool, error) {
		t.Fatalf("unexpected prompt: %s", message)
		return false, nil
	}
}

func TestParseRequestCategories(t *testing.T) {
	cfg := config.Default()

	accepted := map[string]config.Category{
		"epic": config.Epic,
		"feat": config.Feature,
		"fix":  config.Fix,
		"hfix": config.Hotfix,
	}
	for token, want := range accepted {
		t.Run("accepts "+token, func(t *testing.T) {
			req, err := ParseRequest([]string{token, "login"}, cfg, mustNotPrompt(t))
			require.NoError(t, err)
			require.Equal(t, want, req.Category)
			require.Equal(t, token, req.Label)
		})
	}

	for _, token := range []string{"", "feature", "FEAT", "Epic", "hotfix", "chore"} {
		t.Run("rejects "+token, func(t *testing.T) {
			_, err := ParseRequest([]string{token, "login"}, cfg, mustNotPrompt(t))
			var usageErr *gflowerrors.UsageError
			require.ErrorAs(t, err, &usageErr)
			require.Contains(t, usageErr.Message, "Accepted types: (epic, feat, fix, hfix)")
			require.Contains(t, usageErr.Usage, "SYNOPSIS")
		})
	}

	t.Run("renamed label replaces the token", func(t *testing.T) {
		custom := config.Default()
		custom.Feature = "feature"

		req, err := ParseRequest([]string{"feature", "login"}, custom, mustNotPrompt(t))
		require.NoError(t, err)
		require.Equal(t, "feature/login", req.BranchName())

		_, err = ParseRequest([]string{"feat", "login"}, custom, mustNotPrompt(t))
		require.ErrorIs(t, err, gflowerrors.ErrUsage)
	})
}

func TestParseRequest(t *testing.T) {
	cfg := config.Default()

	t.Run("no arguments requests usage", func(t *testing.T) {
		_, err := ParseRequest(nil, cfg, mustNotPrompt(t))
		require.ErrorIs(t, err, gflowerrors.ErrUsageRequested)
		require.Equal(t, gflowerrors.ExitOK, gflowerrors.ExitCode(err))
	})

	t.Run("missing name is a usage error", func(t *testing.T) {
		_, err := ParseRequest([]string{"feat"}, cfg, mustNotPrompt(t))
		var usageErr *gflowerrors.UsageError
		require.ErrorAs(t, err, &usageErr)
		require.Equal(t, "branch_name is required.", usageErr.Message)
		require.Equal(t, gflowerrors.ExitFailure, gflowerrors.ExitCode(err))
	})

	t.Run("empty name is a usage error", func(t *testing.T) {
		_, err := ParseRequest([]string{"feat", ""}, cfg, mustNotPrompt(t))
		require.ErrorIs(t, err, gflowerrors.ErrUsage)
	})

	t.Run("omitted source defaults to production without prompting", func(t *testing.T) {
		req, err := ParseRequest([]string{"feat", "login"}, cfg, mustNotPrompt(t))
		require.NoError(t, err)
		require.Equal(t, "main", req.Source)
		require.Equal(t, "origin", req.Remote)
		require.Equal(t, "feat/login", req.BranchName())
	})

	t.Run("empty source defaults to production without prompting", func(t *testing.T) {
		req, err := ParseRequest([]string{"feat", "login", ""}, cfg, mustNotPrompt(t))
		require.NoError(t, err)
		require.Equal(t, "main", req.Source)
	})

	t.Run("explicit production source does not prompt", func(t *testing.T) {
		req, err := ParseRequest([]string{"fix", "typo", "main"}, cfg, mustNotPrompt(t))
		require.NoError(t, err)
		require.Equal(t, "main", req.Source)
	})

	t.Run("non-production source declined", func(t *testing.T) {
		prompt := &recordingConfirm{answer: "n"}
		_, err := ParseRequest([]string{"feat", "login", "dev"}, cfg, prompt.confirm)
		require.ErrorIs(t, err, gflowerrors.ErrUserDeclined)
		require.Equal(t, gflowerrors.ExitOK, gflowerrors.ExitCode(err))
		require.Len(t, prompt.messages, 1)
		require.Contains(t, prompt.messages[0], "created from dev, which is different from main")
	})

	t.Run("non-production source with empty answer is declined", func(t *testing.T) {
		prompt := &recordingConfirm{answer: ""}
		_, err := ParseRequest([]string{"feat", "login", "dev"}, cfg, prompt.confirm)
		require.ErrorIs(t, err, gflowerrors.ErrUserDeclined)
	})

	t.Run("non-production source confirmed", func(t *testing.T) {
		prompt := &recordingConfirm{answer: "yes"}
		req, err := ParseRequest([]string{"feat", "login", "dev"}, cfg, prompt.confirm)
		require.NoError(t, err)
		require.Equal(t, "dev", req.Source)
	})

	t.Run("prompt failure is returned", func(t *testing.T) {
		boom := errors.New("tty closed")
		_, err := ParseRequest([]string{"feat", "login", "dev"}, cfg, func(string) (bool, error) {
			return false, boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("extra arguments are ignored", func(t *testing.T) {
		req, err := ParseRequest([]string{"feat", "login", "main", "extra"}, cfg, mustNotPrompt(t))
		require.NoError(t, err)
		require.Equal(t, "feat/login", req.BranchName())
	})
}

func TestUsage(t *testing.T) {
	cfg := config.Default()
	cfg.Hotfix = "hotfix"

	usage := Usage(cfg)
	require.Contains(t, usage, "gflow COMMAND branch_name [SOURCE_BRANCH]")
	for _, label := range cfg.Labels() {
		require.True(t, strings.Contains(usage, "    "+label+"\n"), "usage should list %s", label)
	}
	require.Contains(t, usage, "Creates a hotfix branch")
}
