package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var list bool
	var fromExisting bool

	root := &cobra.Command{
		Use:           "spawn [branch-name]",
		Short:         "Create, enter and manage git worktrees",
		Long:          "spawn wraps git worktree, branch and merge: it creates a worktree per branch,\nopens your editor in it, and removes both again when you are done.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if list {
				return runList()
			}
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}
			return runSpawn(branch, fromExisting)
		},
	}
	root.Flags().BoolVarP(&list, "list", "l", false, "List worktrees")
	root.Flags().BoolVarP(&fromExisting, "from-existing", "x", false, "Choose among existing branches only")
	root.ValidArgsFunction = branchCompletion

	root.AddCommand(
		newRemoveCommand(),
		newMergeCommand(),
		newConfigCommand(),
		newCompletionCommand(),
		newVersionCommand(),
	)
	return root
}

func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [branch-name]",
		Aliases: []string{"rm"},
		Short:   "Remove the worktree of a branch",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}
			return runRemove(branch)
		},
	}
	cmd.ValidArgsFunction = branchCompletion
	return cmd
}

func newMergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [branch-name]",
		Short: "Merge a branch into the current one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}
			return runMerge(branch)
		},
	}
	cmd.ValidArgsFunction = branchCompletion
	return cmd
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Configure the editor command and merge defaults",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfig()
		},
	}
}

func usageError(cmd *cobra.Command, message string) error {
	return fmt.Errorf("%s\n\n%s", message, strings.TrimSpace(cmd.UsageString()))
}
