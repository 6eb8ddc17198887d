package cli

import (
	"github.com/spf13/cobra"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for jvocab. Category arguments are
completed from the current vocabulary file.

To load completions:

Bash:
  $ source <(jvocab completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ jvocab completion bash > /etc/bash_completion.d/jvocab
  # macOS:
  $ jvocab completion bash > $(brew --prefix)/etc/bash_completion.d/jvocab

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ jvocab completion zsh > "${fpath[1]}/_jvocab"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ jvocab completion fish | source

  # To load completions for each session, execute once:
  $ jvocab completion fish > ~/.config/fish/completions/jvocab.fish

PowerShell:
  PS> jvocab completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> jvocab completion powershell > jvocab.ps1
  # and source this file from your PowerShell profile.
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
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return verrors.New(verrors.ErrCodeInvalidInput, "unsupported shell %q", args[0])
		},
	}

	return cmd
}
