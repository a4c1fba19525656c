package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for basecanvas.

To load completions:

Bash:
  $ source <(basecanvas completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ basecanvas completion bash > /etc/bash_completion.d/basecanvas
  # macOS:
  $ basecanvas completion bash > $(brew --prefix)/etc/bash_completion.d/basecanvas

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ basecanvas completion zsh > "${fpath[1]}/_basecanvas"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ basecanvas completion fish | source

  # To load completions for each session, execute once:
  $ basecanvas completion fish > ~/.config/fish/completions/basecanvas.fish

PowerShell:
  PS> basecanvas completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> basecanvas completion powershell > basecanvas.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
