// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/config"
	"github.com/catfood/bcq/internal/differ"
	"github.com/catfood/bcq/internal/log"
	"github.com/catfood/bcq/internal/meta"
	"github.com/catfood/bcq/internal/util"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// compares two dataset documents unit by unit.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("diff requires two dataset files, got %d", cmd.Args().Len())
	}

	// Each document takes --key unless its own ::key suffix says otherwise.
	var (
		docs [2][]byte
		keys [2]string
	)
	for i, spec := range cmd.Args().Slice() {
		path, key, err := util.ParseDataPath(spec)
		if err != nil {
			return err
		}
		if key == "" {
			key = cmd.String("key")
		}
		keys[i] = key
		if docs[i], err = os.ReadFile(path); err != nil {
			return fmt.Errorf("failed to read dataset: %w", err)
		}
	}

	opts := differ.Options{
		Keys:   keys,
		Filter: differ.ParseFilter(cmd.String("diff_filter")),
		Color:  cmd.Bool("color"),
	}

	summary, err := differ.Diff(ctx, docs, opts, writer(cmd))
	if err != nil {
		return err
	}
	log.Debugf("diff: %s", summary)

	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	filter, _ := config.GetString("diff_filter", "")

	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two datasets unit by unit",
		UsageText: "bcq diff <old.json> <new.json> [options]",
		ArgsUsage: "<old.json> <new.json>",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			},
			&cli.StringFlag{
				Name:  "diff_filter",
				Usage: "comma-separated record keys to ignore",
				Value: filter,
			},
			NewKeyFlag("diff", config.Path()),
		},
		Action: diffCommandAction,
	}
}
