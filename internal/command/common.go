// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/catfood/bcq/internal/attrs"
	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/log"
	"github.com/catfood/bcq/internal/meta"
	"github.com/catfood/bcq/internal/output"
	"github.com/catfood/bcq/internal/util"
)

// BuildAttrs starts from defaults, applies extras from --attrs, then applies
// the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults attrs.AttrList) (al attrs.AttrList) {
	al = append(al, defaults...)
	//nolint:errcheck
	{
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the record keys to the command's writer when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(reflect.TypeOf(cat.Record{}), writer(cmd))
		return true
	}
	return false
}

// ResolveDataSpec turns --data and --key into a dataset path and key. A
// "::key" suffix on --data wins over --key.
func ResolveDataSpec(cmd *cli.Command) (meta.DataSpec, error) {
	path, key, err := util.ParseDataPath(cmd.String("data"))
	if err != nil {
		return meta.DataSpec{}, err
	}
	if key == "" {
		key = cmd.String("key")
	}
	return meta.DataSpec{Path: path, Key: key}, nil
}

// LoadCatalog reads the dataset named by the command's flags.
func LoadCatalog(cmd *cli.Command) (*catalog.Catalog, error) {
	ds, err := ResolveDataSpec(cmd)
	if err != nil {
		return nil, err
	}
	log.Debugf("dataset: path=%s key=%s", ds.Path, ds.Key)

	return catalog.Load(ds.Path, catalog.WithKey(ds.Key))
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// writer is the root command's Writer, falling back to stdout.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
