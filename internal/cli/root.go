// Package cli wires the gflow command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gflow.dev/gflow/internal/actions"
	"gflow.dev/gflow/internal/runtime"
	"gflow.dev/gflow/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		debug      bool
		dryRun     bool
		showConfig bool
	)

	rootCmd := &cobra.Command{
		Use:   "gflow CATEGORY NAME [SOURCE_BRANCH]",
		Short: "gflow creates Gitflow branches from an up to date source branch",
		Long: `gflow - A complete and practical git-flow implementation.

Switches to SOURCE_BRANCH (the production branch by default), pulls it,
creates CATEGORY/NAME from it and pushes the new branch with upstream tracking.

Category labels, branch names and the remote are read from .g_flowrc in the
current directory. Run without arguments to see the configured categories.

Flags must come before CATEGORY; everything after it is passed through as is,
so a NAME starting with a dash works: gflow fix -1234. Use -- to end flag
parsing explicitly when CATEGORY itself starts with a dash.`,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runtime.Options{
				DryRun:      dryRun,
				Debug:       debug || os.Getenv("DEBUG") != "",
				LogFilePath: tui.GetLogFilePath(),
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			splog := runtime.NewSplog(opts)
			defer splog.Close()

			splog.Debug("gflow %s args=%q", cmd.Version, args)
			err := run(cmd, splog, opts, args, showConfig)
			if err != nil {
				splog.Debug("run failed: %v", err)
			}
			return err
		},
	}

	// Arguments after CATEGORY are branch names, never flags.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Print debug output, including every git command")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the git commands instead of running them")
	rootCmd.Flags().BoolVar(&showConfig, "show-config", false, "Print the resolved configuration and exit")

	return rootCmd
}

func run(cmd *cobra.Command, splog *tui.Splog, opts runtime.Options, args []string, showConfig bool) error {
	rt, err := runtime.GetContext(splog, opts)
	if err != nil {
		return err
	}

	if showConfig {
		return printConfig(rt)
	}

	return actions.StartAction(cmd.Context(), rt, args)
}

// printConfig writes the configuration in .g_flowrc format so it can be saved and reloaded
func printConfig(rt *runtime.Context) error {
	w := rt.Splog.Writer()
	if _, err := fmt.Fprintf(w, "# project version %s\n", rt.Version); err != nil {
		return err
	}
	if branch, err := rt.Repo.GetCurrentBranch(); err == nil {
		if _, err := fmt.Fprintf(w, "# current branch %s\n", branch); err != nil {
			return err
		}
	}
	return rt.Config.Encode(w)
}
