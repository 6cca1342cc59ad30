// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	colorize "github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/config"
	"github.com/catfood/bcq/internal/meta"
	"github.com/catfood/bcq/internal/output"
)

// showLabelWidth is the column where values start.
const showLabelWidth = 13

// ShowStyle holds the colors of the detail view.
type ShowStyle struct {
	Name  *colorize.Color
	Label *colorize.Color
	Value *colorize.Color
	Dim   *colorize.Color
}

// NewShowStyle returns the detail view colors, forced on or off.
func NewShowStyle(enabled bool) ShowStyle {
	s := ShowStyle{
		Name:  colorize.New(colorize.FgHiWhite, colorize.Bold),
		Label: colorize.New(colorize.FgCyan),
		Value: colorize.New(colorize.FgHiWhite),
		Dim:   colorize.New(colorize.FgHiBlack),
	}
	for _, c := range []*colorize.Color{s.Name, s.Label, s.Value, s.Dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// WriteDetail writes the detail view of one unit. The description is wrapped
// so no line runs past width.
func WriteDetail(w io.Writer, x *cat.Cat, style ShowStyle, width int) {
	style.Name.Fprintln(w, x.Name())

	field := func(label, value string) {
		if value == "" {
			return
		}
		style.Label.Fprintf(w, "  %-*s", showLabelWidth-2, label)
		style.Value.Fprintln(w, value)
	}

	field("alias", joinNonEmpty(x.Alias()))
	field("rarity", fmt.Sprintf("%s %s", x.Rarity(), style.Dim.Sprintf("%s %d%% (%d/%d)",
		x.Rarity().Abbrev(), int(math.Round(x.RarityPct()*100)), x.RarityIndex(), x.RarityTotal())))
	field("form", string(x.Form()))
	field("cost", x.Cost().String())
	field("ability", joinNonEmpty(x.Ability()))
	field("effect", joinNonEmpty(x.Effect()))

	target := x.Target()
	if x.Traitless() {
		target = append(target, cat.TraitlessToken)
	}
	field("target", joinNonEmpty(target))

	if x.HasTalents() {
		talents := x.Talents()
		parts := make([]string, 0, len(talents))
		for _, name := range slices.Sorted(maps.Keys(talents)) {
			parts = append(parts, fmt.Sprintf("%s %d", name, talents[name]))
		}
		field("talents", strings.Join(parts, ", "))
	}

	if desc := strings.TrimSpace(x.Description()); desc != "" {
		wrapAt := max(width-showLabelWidth, 20)
		lines := strings.Split(ansi.Wordwrap(desc, wrapAt, ""), "\n")
		field("description", lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%*s", showLabelWidth, "")
			style.Value.Fprintln(w, line)
		}
	}
}

// joinNonEmpty joins values with ", " after dropping empty-string entries.
func joinNonEmpty(values []string) string {
	kept := slices.DeleteFunc(values, func(v string) bool { return v == "" })
	return strings.Join(kept, ", ")
}

// showWidth is the terminal width of w, or the configured width when w is
// not a terminal.
func showWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	width, _ := config.GetInt("width", 80)
	return width
}

// showSelect matches the required name regex argument.
func showSelect(_ context.Context, cmd *cli.Command, c *catalog.Catalog) ([]*cat.Cat, error) {
	pattern := cmd.Args().First()
	if pattern == "" {
		return nil, errors.New("show requires a name regex")
	}
	return c.FindName(pattern, nil)
}

// showEmit writes the detail view for text output and the records otherwise.
func showEmit(cmd *cli.Command, c *catalog.Catalog, cats []*cat.Cat, al attrs.AttrList, w io.Writer) error {
	opts := output.OptionsFromCommand(cmd)
	if opts.Format != "text" {
		return emitRecords(cmd, c, cats, al, w)
	}

	style := NewShowStyle(opts.Color)
	width := showWidth(w)
	for i, x := range cats {
		if i > 0 {
			fmt.Fprintln(w)
		}
		WriteDetail(w, x, style, width)
	}
	return nil
}

// showCommandAction is the action handler for the "show" subcommand.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewQueryActionRunner("show", attrs.Default(), showSelect)
	runner.EmitFn = showEmit
	return runner.Run(ctx, cmd)
}

// showCommandBuilder constructs the cli.Command for "show".
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "show",
		Usage:     "show every detail of matching units",
		UsageText: "bcq show <name-regex> [options]",
		ArgsUsage: "<name-regex>",
		Action:    showCommandAction,
		Meta:      meta,
	}).Build()
}
