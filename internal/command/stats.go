// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/meta"
	"github.com/catfood/bcq/internal/output"
)

// statsDefaultAttrs are the stats columns. share is the fraction of the
// selected units carrying the value and stays hidden until asked for.
var statsDefaultAttrs = attrs.AttrList{
	{Key: "category", OutputKey: "category", Include: true},
	{Key: "value", OutputKey: "value", Include: true},
	{Key: "count", OutputKey: "count", Include: true},
	{Key: "share", OutputKey: "share", Include: false},
}

// StatsRows tallies cats and returns one row per distinct value. Rarities
// come in tier order, every other category alphabetically. An empty category
// means all of them.
func StatsRows(cats []*cat.Cat, category string) ([]output.Row, error) {
	stats := catalog.Tally(cats)

	categories := catalog.Categories
	if category != "" {
		if _, err := stats.Category(category); err != nil {
			return nil, err
		}
		categories = []string{category}
	}

	var rows []output.Row
	add := func(category, value string, n int) {
		row := output.NewRow()
		row.Set("category", category)
		row.Set("value", value)
		row.Set("count", float64(n))
		share := 0.0
		if len(cats) > 0 {
			share = float64(n) / float64(len(cats))
		}
		row.Set("share", share)
		rows = append(rows, row)
	}

	for _, name := range categories {
		if name == "rarity" {
			for _, rc := range stats.Rarities() {
				add(name, string(rc.Rarity), rc.Count)
			}
			continue
		}

		counts, _ := stats.Category(name)
		for _, value := range slices.Sorted(maps.Keys(counts)) {
			add(name, value, counts[value])
		}
	}

	return rows, nil
}

// statsEmit tallies the selected records and renders the counts.
func statsEmit(cmd *cli.Command, _ *catalog.Catalog, cats []*cat.Cat, al attrs.AttrList, w io.Writer) error {
	rows, err := StatsRows(cats, cmd.String("category"))
	if err != nil {
		return err
	}

	projected := make([]output.Row, 0, len(rows))
	for _, row := range rows {
		out := output.NewRow()
		for _, attr := range al.Included() {
			value := row.Get(attr.Key)
			if attr.TransformSpec != "" {
				value = attr.Transform(value)
			}
			out.Set(attr.OutputKey, value)
		}
		projected = append(projected, out)
	}

	opts := output.OptionsFromCommand(cmd)
	if opts.Titles {
		opts.Footer = fmt.Sprintf("%s units, %s values",
			humanize.Comma(int64(len(cats))), humanize.Comma(int64(len(rows))))
	}

	return output.Emit(projected, al, opts, w)
}

// statsCommandAction is the action handler for the "stats" subcommand.
func statsCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewQueryActionRunner("stats", statsDefaultAttrs, nil)
	runner.EmitFn = statsEmit
	return runner.Run(ctx, cmd)
}

// statsCommandBuilder constructs the cli.Command for "stats".
func statsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "stats",
		Usage:     "count distinct ability, effect, rarity and target values",
		UsageText: "bcq stats [--category name] [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "restrict to one category",
				Validator: func(value string) error {
					return FlagValidators(value, CategoryValidator)
				},
			},
		},
		Action: statsCommandAction,
		Meta:   meta,
	}).Build()
}
