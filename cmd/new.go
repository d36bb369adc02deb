package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leet-tools/leet/internal/leet/leetcode"
	"github.com/leet-tools/leet/internal/leet/scaffold"
)

// newFetcher is swapped out in tests
var newFetcher = func() scaffold.Fetcher { return leetcode.New() }

var newCmd = &cobra.Command{
	Use:     "new <template> <url> [name]",
	Aliases: []string{"n"},
	Short:   "Create a new project for a problem",
	Long: `Create a new project directory for a LeetCode problem.

The directory is created in the current working directory and is named after
the problem title with spaces removed, unless a name is given. It must not
exist yet. If rendering fails the directory is removed again.`,
	Example: `  leet new py https://leetcode.com/problems/two-sum/
  leet new rs https://leetcode.com/problems/two-sum/ two_sum_rs`,
	Args:              cobra.RangeArgs(2, 3),
	ValidArgsFunction: validTemplateNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 3 {
			name = args[2]
		}

		dir, err := scaffold.New(cfg, newFetcher()).Run(cmd.Context(), args[0], args[1], name)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
