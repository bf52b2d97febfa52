package configure

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytesize/sizectl/internal/prefs"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "list",
		Aliases: []string{
			"ls",
		},
		Short: "Shows the preferences that are currently in effect",
		Run: func(cmd *cobra.Command, args []string) {
			printPrefs(prefs.Get())
		},
	}

	return cmd
}

func printPrefs(p prefs.Prefs) {
	source := p.Source
	if source == "" {
		source = "built-in defaults"
	}
	unit := p.Unit
	if unit == "" {
		unit = "auto"
	}

	fmt.Printf("Preferences in effect (%s):\n\n", source)
	fmt.Printf("\tFamily: %s\n", p.Family)
	fmt.Printf("\t  Unit: %s\n", unit)
	fmt.Printf("\tOutput: %s\n", p.Output)
}
