// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/meta"
	"github.com/catfood/bcq/internal/output"
)

// lsSelect narrows by the optional name regex argument.
func lsSelect(_ context.Context, cmd *cli.Command, c *catalog.Catalog) ([]*cat.Cat, error) {
	if pattern := cmd.Args().First(); pattern != "" {
		return c.FindName(pattern, nil)
	}
	return nil, nil
}

// lsEmit writes one listing line per record.
func lsEmit(cmd *cli.Command, c *catalog.Catalog, cats []*cat.Cat, _ attrs.AttrList, w io.Writer) error {
	return output.Lines(c.Listing(cats), output.OptionsFromCommand(cmd), w)
}

// lsCommandAction is the action handler for the "ls" subcommand.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := NewQueryActionRunner("ls", nil, lsSelect)
	runner.EmitFn = lsEmit
	return runner.Run(ctx, cmd)
}

// lsCommandBuilder constructs the cli.Command for "ls".
func lsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "ls",
		Usage:     "list units with rarity and position",
		UsageText: "bcq ls [name-regex] [options]",
		ArgsUsage: "[name-regex]",
		Action:    lsCommandAction,
		Meta:      meta,
	}).Build()
}
