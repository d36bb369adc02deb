package cmd

import (
	"github.com/spf13/cobra"
)

// validTemplateNames completes the first argument of "new" with the
// template names of the loaded config.
func validTemplateNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := getAvailableTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// getAvailableTemplates returns the template names of the config selected
// by --config or the well-known paths.
func getAvailableTemplates() ([]string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ListTemplates(), nil
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for leet.

To load completions:

Bash:

  $ source <(leet completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ leet completion bash > /etc/bash_completion.d/leet
  # macOS:
  $ leet completion bash > $(brew --prefix)/etc/bash_completion.d/leet

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ leet completion zsh > "${fpath[1]}/_leet"

Fish:

  $ leet completion fish | source

  # To load completions for each session, execute once:
  $ leet completion fish > ~/.config/fish/completions/leet.fish

PowerShell:

  PS> leet completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
