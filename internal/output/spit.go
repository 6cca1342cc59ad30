// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/config"
	"github.com/catfood/bcq/internal/driller"
)

// Formats are the accepted --output values.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options controls rendering.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Padding int
	Header  string
	Footer  string
}

// OptionsFromCommand reads the output flags of cmd. Header and footer come
// from the command's metadata when set.
func OptionsFromCommand(cmd *cli.Command) Options {
	opts := Options{
		Format:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: cmd.Int("padding"),
	}
	if h, ok := cmd.Metadata["header"].(string); ok {
		opts.Header = h
	}
	if f, ok := cmd.Metadata["footer"].(string); ok {
		opts.Footer = f
	}
	return opts
}

// InterfaceToString converts supported primitive or composite values to a
// string. Lists are joined with ", " after dropping empty-string sentinels. A
// custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, v := range value {
			if s := InterfaceToString(v); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return emptyValue[0]
		}
		return strings.Join(parts, ", ")
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// BuildRows projects each record through the attr list. Values are extracted
// from the record JSON with driller and transformed per attr. Hidden attrs are
// skipped.
func BuildRows(cats []*cat.Cat, al attrs.AttrList) ([]Row, error) {
	rows := make([]Row, 0, len(cats))
	for _, c := range cats {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", c.Name(), err)
		}

		row := NewRow()
		for _, attr := range al {
			if !attr.Include {
				continue
			}
			value := driller.Driller(string(raw), attr.Key).Value()
			if attr.TransformSpec != "" {
				value = attr.Transform(value)
			}
			row.Set(attr.OutputKey, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SliceDiceSpit renders records in the requested format: the projected rows
// as a text table, json or yaml, or the full records as json for raw.
func SliceDiceSpit(cats []*cat.Cat, al attrs.AttrList, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	// If raw, dump the records and go home.
	if opts.Format == "raw" {
		return writeJSON(w, cats)
	}

	rows, err := BuildRows(cats, al)
	if err != nil {
		return err
	}

	return Emit(rows, al, opts, w)
}

// Emit writes rows in the requested format.
func Emit(rows []Row, al attrs.AttrList, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json", "raw":
		return writeJSON(w, rows)
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			log.Errorf("emit yaml marshal: %v", err)
			return err
		}
		_, err = w.Write(yamlOutput)
		return err
	case "", "text":
		TableWriter(rows, al, opts, w)
		return nil
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

// Lines writes plain lines for text output or a list for json and yaml.
func Lines(lines []string, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json", "raw":
		return writeJSON(w, lines)
	case "yaml":
		out, err := yaml.Marshal(lines)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonOutput, err := json.Marshal(v)
	if err != nil {
		log.Errorf("emit json marshal: %v", err)
		return err
	}
	_, err = fmt.Fprintln(w, string(jsonOutput))
	return err
}

// TableWriter renders rows in tabular form honoring color, titles and padding
// options. If w is nil, os.Stdout is used.
func TableWriter(rows []Row, al attrs.AttrList, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	columns := columnKeys(rows, al)

	var cells [][]string
	for _, row := range rows {
		line := make([]string, 0, len(columns))
		for _, key := range columns {
			line = append(line, InterfaceToString(row.Get(key), "-"))
		}
		cells = append(cells, line)
	}

	if opts.Header != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Header))
	}

	pad := opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if opts.Footer != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Footer))
	}
}

// columnKeys is the included output keys of al, or the first row's keys when
// al has none.
func columnKeys(rows []Row, al attrs.AttrList) []string {
	var keys []string
	for _, attr := range al {
		if attr.Include {
			keys = append(keys, attr.OutputKey)
		}
	}
	if len(keys) == 0 && len(rows) > 0 {
		keys = rows[0].Keys()
	}
	return keys
}

// getColors returns configured color values for table rendering. Without a
// configured color, the default depends on the terminal background so output
// stays readable on light and dark themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
