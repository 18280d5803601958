package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for arrdeck.

To load completions:

Bash:
  $ source <(arrdeck completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ arrdeck completion bash > /etc/bash_completion.d/arrdeck
  # macOS:
  $ arrdeck completion bash > $(brew --prefix)/etc/bash_completion.d/arrdeck

Zsh:
  $ source <(arrdeck completion zsh)
  # To load completions for each session, execute once:
  $ arrdeck completion zsh > "${fpath[1]}/_arrdeck"

Fish:
  $ arrdeck completion fish | source
  # To load completions for each session, execute once:
  $ arrdeck completion fish > ~/.config/fish/completions/arrdeck.fish

PowerShell:
  PS> arrdeck completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> arrdeck completion powershell > arrdeck.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
