package units

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bytesize/sizectl/internal/msg"
	"github.com/bytesize/sizectl/internal/size"
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

// Row describes a catalog unit as rendered by the units command.
type Row struct {
	Unit   string `json:"unit"`
	Name   string `json:"name"`
	Family string `json:"family"`
	Bytes  uint64 `json:"bytes"`
}

func Command() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:          "units",
		Short:        "Returns the catalog of units that sizectl understands.",
		Long:         msg.UnitHint,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "text" && out != "json" {
				return errors.New(msg.UnknownOutputFormat)
			}

			rows := catalog()
			switch out {
			case "json":
				if err := renderJSON(rows); err != nil {
					return fmt.Errorf("failed to render output: %w", err)
				}
			case "text":
				renderTable(rows)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "text",
		"Output format to the console. Options: text, json.",
	)

	return cmd
}

// catalog flattens the unit catalog into display rows.
func catalog() []Row {
	rows := make([]Row, 0, len(size.AllUnits))
	for _, u := range size.AllUnits {
		rows = append(rows, Row{
			Unit:   u.String(),
			Name:   u.Name(),
			Family: familyOf(u),
			Bytes:  u.Bytes(),
		})
	}
	return rows
}

// familyOf names the family a unit belongs to.
func familyOf(u size.Unit) string {
	switch u {
	case size.B:
		return "base"
	case size.KB, size.MB, size.GB, size.TB, size.PB:
		return "decimal"
	case size.KiB, size.MiB, size.GiB, size.TiB, size.PiB:
		return "binary"
	}
	return ""
}

func renderTable(rows []Row) {
	t := table.NewWriter()
	t.SetStyle(defaultTableStyle)
	t.SuppressEmptyColumns()

	t.AppendHeader(table.Row{"Unit", "Name", "Family", "Bytes"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name: "Unit",
		},
		{
			Name: "Name",
			Transformer: func(val interface{}) string {
				s, _ := val.(string)
				return cases.Title(language.English).String(s)
			},
		},
		{
			Name: "Family",
		},
		{
			Name:        "Bytes",
			AlignHeader: text.AlignLeft,
			Align:       text.AlignRight,
			AlignFooter: text.AlignRight,
			Transformer: func(val interface{}) string {
				n, _ := val.(uint64)
				return humanize.Comma(int64(n))
			},
		},
	})

	for _, r := range rows {
		// the order of values must match the order of the header
		t.AppendRow(table.Row{r.Unit, r.Name, r.Family, r.Bytes})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d units in total", len(rows)),
	})

	fmt.Println(t.Render())
}

func renderJSON(val any) error {
	return json.NewEncoder(os.Stdout).Encode(val)
}
