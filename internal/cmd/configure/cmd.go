package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bytesize/sizectl/internal/msg"
	"github.com/bytesize/sizectl/internal/prefs"
	"github.com/bytesize/sizectl/internal/size"
)

var (
	configureUse     = "configure"
	configureShort   = "Configure your default rendering preferences"
	configureLong    = `Persist locally the defaults that sizectl renders with`
	configureExample = "sizectl configure"
	cliFamily        = ""
	cliUnit          = ""
	cliOutput        = ""
)

// autoUnit is the prompt choice that leaves unit selection to the family.
const autoUnit = "auto"

// Command creates the `configure` command
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     configureUse,
		Short:   configureShort,
		Long:    configureLong,
		Example: configureExample,
		Run: func(cmd *cobra.Command, args []string) {
			if err := Run(); err != nil {
				log.Err(err).Msg("failed to execute configure command")
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&cliFamily, "family", "f", "", "Default unit family. Options: decimal, binary.")
	cmd.Flags().StringVarP(&cliUnit, "unit", "u", "", "Default fixed unit, by symbol or name. Overrides the family pick.")
	cmd.Flags().StringVarP(&cliOutput, "out", "o", "", "Default output format. Options: text, json.")
	cmd.AddCommand(ListCommand())
	return cmd
}

// interactiveConfiguration expects the user to pick the preferences by hand.
func interactiveConfiguration(stdio terminal.Stdio) (prefs.Prefs, error) {
	fmt.Println(msg.SetupMessage)

	current := prefs.Get()

	println("") // visual paragraph break
	family, err := askFamily(stdio, current.Family)
	if err != nil {
		return current, err
	}

	unit, err := askUnit(stdio, current.Unit)
	if err != nil {
		return current, err
	}

	output, err := askOutput(stdio, current.Output)
	if err != nil {
		return current, err
	}

	println() // visual paragraph break
	return prefs.Prefs{
		Family: family,
		Unit:   unit,
		Output: output,
	}, nil
}

func askFamily(stdio terminal.Stdio, current string) (string, error) {
	def := prefs.FamilyDecimal
	if current == prefs.FamilyBinary {
		def = prefs.FamilyBinary
	}

	var f string
	q := &survey.Select{
		Message: "Select the default unit family:",
		Options: []string{prefs.FamilyDecimal, prefs.FamilyBinary},
		Default: def,
	}

	err := survey.AskOne(q, &f, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	if err != nil {
		return "", err
	}
	return f, nil
}

func askUnit(stdio terminal.Stdio, current string) (string, error) {
	options := []string{autoUnit}
	for _, u := range size.AllUnits {
		options = append(options, u.String())
	}

	def := autoUnit
	if u := size.UnitFromString(current); u != size.None {
		def = u.String()
	}

	var choice string
	q := &survey.Select{
		Message: "Select the default unit:",
		Help:    "auto picks the largest unit of the family that fits the count.",
		Options: options,
		Default: def,
	}

	err := survey.AskOne(q, &choice, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	if err != nil {
		return "", err
	}
	if choice == autoUnit {
		return "", nil
	}
	return choice, nil
}

func askOutput(stdio terminal.Stdio, current string) (string, error) {
	def := "text"
	if current == "json" {
		def = "json"
	}

	var o string
	q := &survey.Select{
		Message: "Select the default output format:",
		Options: []string{"text", "json"},
		Default: def,
	}

	err := survey.AskOne(q, &o, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	if err != nil {
		return "", err
	}
	return o, nil
}

// Run starts the configure command
func Run() error {
	var p prefs.Prefs
	var err error

	if cliFamily == "" && cliUnit == "" && cliOutput == "" {
		if !isTerm(os.Stdin.Fd()) || !isTerm(os.Stdout.Fd()) {
			return errors.New(msg.NoTTY)
		}

		stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
		p, err = interactiveConfiguration(stdio)
	} else {
		p = prefs.Prefs{
			Family: cliFamily,
			Unit:   cliUnit,
			Output: cliOutput,
		}
	}
	if err != nil {
		return err
	}

	if !p.IsValid() {
		log.Error().Msg(msg.InvalidPrefs)
		return fmt.Errorf("invalid preferences provided")
	}
	if err := prefs.ToFile(p); err != nil {
		return fmt.Errorf("unable to save preferences: %s", err)
	}
	println("You're all set!")
	return nil
}

func isTerm(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
