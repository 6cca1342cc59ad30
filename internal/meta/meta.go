// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/catfood/bcq/internal/config"
)

// DataSpec holds the resolved dataset path and top-level key.
type DataSpec struct {
	Path string
	Key  string
}

// Meta contains runtime metadata shared by commands: CLI arguments, loaded
// configuration, context, the resolved dataset and the starting working
// directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	DataSpec
	StartingDir string
}
