// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/log"
	"github.com/catfood/bcq/internal/meta"
)

// findFieldUsage describes each field flag of the "find" command.
var findFieldUsage = map[catalog.Field]string{
	catalog.FieldName:          "regex matched against the unit name",
	catalog.FieldAlias:         "regex matched against alternate names",
	catalog.FieldCost:          "cost expression such as 150, =150, <=300 or >4000",
	catalog.FieldRarity:        "regex matched against the rarity",
	catalog.FieldForm:          "regex matched against the form",
	catalog.FieldAbility:       "regex matched against abilities",
	catalog.FieldEffect:        "regex matched against effects",
	catalog.FieldAbilityEffect: "regex matched against abilities or effects",
	catalog.FieldTarget:        `regex matched against targets, or "traitless"`,
	catalog.FieldDescription:   "regex matched against the description",
}

// fieldFlagName is the flag spelling of a field, e.g. ability-effect.
func fieldFlagName(f catalog.Field) string {
	return strings.ReplaceAll(f.String(), "_", "-")
}

// RepeatableFlags names the flags that may be given more than once, each
// occurrence adding to the query rather than replacing the last.
func RepeatableFlags() []string {
	names := make([]string, 0, len(catalog.Fields))
	for _, f := range catalog.Fields {
		names = append(names, fieldFlagName(f))
	}
	return names
}

// findSelect chains every field flag, in field order, each query narrowing
// the result of the one before. No field flags keeps the whole catalog.
func findSelect(_ context.Context, cmd *cli.Command, c *catalog.Catalog) ([]*cat.Cat, error) {
	var subset []*cat.Cat
	for _, f := range catalog.Fields {
		for _, expr := range cmd.StringSlice(fieldFlagName(f)) {
			result, err := c.Find(f, expr, subset)
			if err != nil {
				return nil, fmt.Errorf("--%s %q: %w", fieldFlagName(f), expr, err)
			}
			log.Debugf("--%s %q kept %d", fieldFlagName(f), expr, len(result))
			subset = result
		}
	}
	return subset, nil
}

// findCommandAction is the action handler for the "find" subcommand.
func findCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewQueryActionRunner("find", attrs.Default(), findSelect).Run(ctx, cmd)
}

// findCommandBuilder constructs the cli.Command for "find", wiring metadata,
// flags, and action handlers.
func findCommandBuilder(meta meta.Meta) *cli.Command {
	flags := make([]cli.Flag, 0, len(catalog.Fields))
	for _, f := range catalog.Fields {
		flags = append(flags, &cli.StringSliceFlag{
			Name:  fieldFlagName(f),
			Usage: findFieldUsage[f] + " (repeatable)",
		})
	}

	return (&QueryCommandBuilder{
		Name:      "find",
		Usage:     "find units by field",
		UsageText: "bcq find [--name regex] [--cost expr] [--ability regex] ... [options]",
		Flags:     flags,
		Action:    findCommandAction,
		Meta:      meta,
	}).Build()
}
