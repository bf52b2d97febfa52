package completion

import (
	"os"

	"github.com/spf13/cobra"
)

// Command creates the `completion` command
func Command() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(sizectl completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sizectl completion bash > /etc/bash_completion.d/sizectl
  # macOS:
  $ sizectl completion bash > /usr/local/etc/bash_completion.d/sizectl

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ sizectl completion zsh > "${fpath[1]}/_sizectl"

  # You will need to start a new shell for this setup to take effect.

fish:

  $ sizectl completion fish | source

  # To load completions for each session, execute once:
  $ sizectl completion fish > ~/.config/fish/completions/sizectl.fish

PowerShell:

  PS> sizectl completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> sizectl completion powershell > sizectl.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}

	return cmd
}
