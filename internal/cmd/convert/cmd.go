package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/bytesize/sizectl/internal/flags"
	"github.com/bytesize/sizectl/internal/msg"
	"github.com/bytesize/sizectl/internal/prefs"
	"github.com/bytesize/sizectl/internal/size"
)

const (
	JSONOutput = "json"
	TextOutput = "text"
)

var defaultTableStyle = table.Style{
	Name: "sizey",
	Box: table.BoxStyle{
		BottomLeft:       "└",
		BottomRight:      "┘",
		BottomSeparator:  "",
		EmptySeparator:   text.RepeatAndTrim(" ", text.RuneCount("+")),
		Left:             "│",
		LeftSeparator:    "",
		MiddleHorizontal: "─",
		MiddleSeparator:  "",
		MiddleVertical:   "",
		PaddingLeft:      " ",
		PaddingRight:     " ",
		PageSeparator:    "\n",
		Right:            "│",
		RightSeparator:   "",
		TopLeft:          "┌",
		TopRight:         "┐",
		TopSeparator:     "",
		UnfinishedRow:    " ...",
	},
	Color: table.ColorOptionsDefault,
	Format: table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	HTML: table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  true,
		SeparateHeader:  true,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

// Result describes a single rendered conversion.
type Result struct {
	Bytes    size.Size `json:"bytes"`
	Unit     string    `json:"unit"`
	Rendered string    `json:"rendered"`
}

func Command() *cobra.Command {
	var unitFlag flags.Unit
	var fromUnit flags.Unit
	var binary bool
	var out string

	cmd := &cobra.Command{
		Use: "convert count [count...]",
		Aliases: []string{
			"c",
		},
		Short: "Convert raw byte counts into human-readable sizes.",
		Example: `  sizectl convert 54222
  sizectl convert 2300 --binary
  sizectl convert 22000 --unit KiB
  sizectl convert 3 --from-unit GB --out json`,
		SilenceUsage: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(msg.MissingByteCount)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if unitFlag.Changed && binary {
				return errors.New(msg.ConflictingUnitFlags)
			}

			p := prefs.Get()
			if !cmd.Flags().Changed("out") && p.Output != "" {
				out = p.Output
			}
			if out != JSONOutput && out != TextOutput {
				return errors.New(msg.UnknownOutputFormat)
			}

			pick, err := unitPicker(unitFlag, binary, p)
			if err != nil {
				return err
			}

			results := make([]Result, 0, len(args))
			for _, arg := range args {
				s, err := parseCount(arg, fromUnit)
				if err != nil {
					return err
				}

				u := pick(s)
				results = append(results, Result{
					Bytes:    s,
					Unit:     u.String(),
					Rendered: s.Format(u),
				})
			}

			switch out {
			case JSONOutput:
				if err := renderJSON(results); err != nil {
					return fmt.Errorf("failed to render output: %w", err)
				}
			case TextOutput:
				renderTable(results)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.VarP(&unitFlag, "unit", "u",
		"Render in this exact unit, by symbol or name. E.g. \"KiB\" or \"kibibyte\".",
	)
	fl.Var(&fromUnit, "from-unit",
		"Interpret the arguments as amounts of this unit instead of raw bytes.",
	)
	fl.BoolVarP(&binary, "binary", "b", false,
		"Pick the unit from the binary family (KiB, MiB, ...) instead of decimal.",
	)
	fl.StringVarP(&out, "out", "o", "text",
		"Output format to the console. Options: text, json.",
	)

	return cmd
}

// parseCount converts a single command line argument into a Size.
// Negative inputs travel through size.FromInt64, so the caller gets to see
// size.ErrNegativeValue rather than a plain syntax error.
func parseCount(arg string, from flags.Unit) (size.Size, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		if i, ierr := strconv.ParseInt(arg, 10, 64); ierr == nil {
			return size.FromInt64(i)
		}

		return 0, fmt.Errorf(msg.InvalidByteCount, arg)
	}

	if from.Changed {
		return size.FromUnit(n, from.Unit), nil
	}
	return size.New(n), nil
}

// unitPicker returns the unit selection strategy for a conversion, honoring
// flags first and configured preferences second.
func unitPicker(explicit flags.Unit, binary bool, p prefs.Prefs) (func(size.Size) size.Unit, error) {
	if explicit.Changed {
		return func(size.Size) size.Unit { return explicit.Unit }, nil
	}
	if binary {
		return func(s size.Size) size.Unit { return s.BinaryUnit() }, nil
	}

	if p.Unit != "" {
		u := size.UnitFromString(p.Unit)
		if u == size.None {
			return nil, fmt.Errorf(msg.InvalidUnit, p.Unit)
		}
		return func(size.Size) size.Unit { return u }, nil
	}

	switch p.Family {
	case prefs.FamilyBinary:
		return func(s size.Size) size.Unit { return s.BinaryUnit() }, nil
	case prefs.FamilyDecimal, "":
		return func(s size.Size) size.Unit { return s.DecimalUnit() }, nil
	default:
		return nil, fmt.Errorf(msg.InvalidFamily, p.Family,
			strings.Join([]string{prefs.FamilyDecimal, prefs.FamilyBinary}, ", "))
	}
}

func renderTable(results []Result) {
	t := table.NewWriter()
	t.SetStyle(defaultTableStyle)
	t.SuppressEmptyColumns()

	t.AppendHeader(table.Row{"Bytes", "Unit", "Rendered"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name:        "Bytes",
			AlignHeader: text.AlignLeft,
			Align:       text.AlignRight,
			AlignFooter: text.AlignRight,
			Transformer: func(val interface{}) string {
				s, _ := val.(size.Size)
				return humanize.Comma(int64(s.Bytes()))
			},
		},
		{
			Name: "Unit",
		},
		{
			Name: "Rendered",
		},
	})

	for _, r := range results {
		// the order of values must match the order of the header
		t.AppendRow(table.Row{r.Bytes, r.Unit, r.Rendered})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d conversions in total", len(results)),
	})

	fmt.Println(t.Render())
}

func renderJSON(val any) error {
	return json.NewEncoder(os.Stdout).Encode(val)
}
