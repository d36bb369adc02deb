package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showTemplatesCmd = &cobra.Command{
	Use:     "show-templates",
	Aliases: []string{"ls"},
	Short:   "Show the templates of the current config",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config: %s\n", cfg.Path())
		for _, name := range cfg.ListTemplates() {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showTemplatesCmd)
}
