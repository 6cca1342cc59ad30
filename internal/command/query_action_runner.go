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
	"github.com/catfood/bcq/internal/filters"
	"github.com/catfood/bcq/internal/log"
	"github.com/catfood/bcq/internal/output"
)

// SelectFunc narrows the catalog for a command. Returning a nil subset keeps
// the whole catalog.
type SelectFunc func(context.Context, *cli.Command, *catalog.Catalog) ([]*cat.Cat, error)

// EmitFunc renders the selected records.
type EmitFunc func(*cli.Command, *catalog.Catalog, []*cat.Cat, attrs.AttrList, io.Writer) error

// QueryActionRunner encapsulates the common query action pattern for the
// dataset subcommands. It handles GetMeta, the schema short circuit,
// BuildAttrs, loading the catalog, --filter and emission. Selection is
// provided by SelectFn and rendering by EmitFn.
type QueryActionRunner struct {
	CommandName  string
	DefaultAttrs attrs.AttrList
	SelectFn     SelectFunc
	EmitFn       EmitFunc
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	if DumpSchemaIfRequested(cmd) {
		return nil
	}

	al := BuildAttrs(cmd, qar.DefaultAttrs)
	log.Debugf("attrs: %v", al.String())

	c, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	var subset []*cat.Cat
	if qar.SelectFn != nil {
		if subset, err = qar.SelectFn(ctx, cmd, c); err != nil {
			return err
		}
	}

	results, err := filters.FilterCatalog(c, cmd.String("filter"), subset)
	if err != nil {
		return err
	}
	log.Debugf("%s: %d of %d records", qar.CommandName, len(results), c.Len())

	emit := qar.EmitFn
	if emit == nil {
		emit = emitRecords
	}
	return emit(cmd, c, results, al, writer(cmd))
}

// NewQueryActionRunner creates a QueryActionRunner that renders records with
// the common output routine.
func NewQueryActionRunner(commandName string, defaultAttrs attrs.AttrList, selectFn SelectFunc) *QueryActionRunner {
	return &QueryActionRunner{
		CommandName:  commandName,
		DefaultAttrs: defaultAttrs,
		SelectFn:     selectFn,
	}
}

func emitRecords(cmd *cli.Command, _ *catalog.Catalog, cats []*cat.Cat, al attrs.AttrList, w io.Writer) error {
	return output.SliceDiceSpit(cats, al, output.OptionsFromCommand(cmd), w)
}
