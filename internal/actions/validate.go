package actions

import (
	"fmt"
	"strings"

	"gflow.dev/gflow/internal/config"
	"gflow.dev/gflow/internal/engine"
	gflowerrors "gflow.dev/gflow/internal/errors"
	"gflow.dev/gflow/internal/tui"
)

// Usage returns the usage text listing the configured category labels
func Usage(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("gflow - A complete and practical git-flow implementation\n\n")
	b.WriteString("SYNOPSIS:\n")
	b.WriteString("gflow COMMAND branch_name [SOURCE_BRANCH]\n\n")
	b.WriteString("COMMANDS\n")
	for _, cat := range config.Categories {
		fmt.Fprintf(&b, "    %s\n        %s\n", cfg.Label(cat), cat.Description())
	}
	fmt.Fprintf(&b, "\nSOURCE_BRANCH defaults to %s.\n", cfg.ProdBranch)
	return b.String()
}

// ParseRequest validates the command line arguments against the configuration.
//
// No arguments yields errors.ErrUsageRequested. When the source branch is not the
// production branch, confirm is asked first and a negative answer yields
// errors.ErrUserDeclined. Arguments after the third are ignored.
func ParseRequest(args []string, cfg config.Config, confirm tui.ConfirmFunc) (engine.Request, error) {
	if len(args) == 0 {
		return engine.Request{}, gflowerrors.ErrUsageRequested
	}

	padded := append(append([]string{}, args...), "", "")
	token, name, source := padded[0], padded[1], padded[2]

	category, ok := cfg.CategoryForLabel(token)
	if !ok {
		return engine.Request{}, gflowerrors.NewUsageError(
			fmt.Sprintf("Invalid branch type %s. Accepted types: (%s)", token, strings.Join(cfg.Labels(), ", ")),
			Usage(cfg),
		)
	}

	if name == "" {
		return engine.Request{}, gflowerrors.NewUsageError("branch_name is required.", Usage(cfg))
	}

	if source == "" {
		source = cfg.ProdBranch
	}

	if source != cfg.ProdBranch {
		message := fmt.Sprintf("WARNING: Your branch will be created from %s, which is different from %s.\n"+
			"Are you SURE you want to continue ( y / N )?", source, cfg.ProdBranch)
		confirmed, err := confirm(message)
		if err != nil {
			return engine.Request{}, err
		}
		if !confirmed {
			return engine.Request{}, gflowerrors.ErrUserDeclined
		}
	}

	return engine.Request{
		Category: category,
		Label:    cfg.Label(category),
		Name:     name,
		Source:   source,
		Remote:   cfg.Remote,
	}, nil
}
