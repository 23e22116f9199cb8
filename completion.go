package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish]",
		Short:     "Generate shell completion script",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			default:
				return usageError(cmd, "unsupported shell: "+args[0])
			}
		},
	}
}

// branchCompletion suggests branch names for positional arguments, using
// the same enumerator the menus use.
func branchCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	gitBin, repoRoot, err := requireGitContext("")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return listBranches(repoRoot, gitBin), cobra.ShellCompDirectiveNoFileComp
}
