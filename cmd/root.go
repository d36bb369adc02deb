// Package cmd provides command-line interface commands for leet
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leet-tools/leet/internal/log"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leet",
	Short: "Custom starter templates for LeetCode",
	Long: `leet - scaffold a working directory for a LeetCode problem

Fetches the problem through the public GraphQL endpoint, picks the starter
code for the template's language and renders the template's files into a
new directory named after the problem.

The config file is looked up in this order:
  1. --config PATH
  2. ~/.config/leet/config.yaml
  3. /etc/leet/config.yaml`,
	Example: `  # Scaffold Two Sum with the "py" template into ./TwoSum
  leet new py https://leetcode.com/problems/two-sum/

  # Choose the directory name yourself
  leet new py https://leetcode.com/problems/two-sum/ two_sum

  # List the templates of a specific config
  leet --config ./config.yaml show-templates`,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetVerbose(true)
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(reportError(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Provide a custom config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable informational logging")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
