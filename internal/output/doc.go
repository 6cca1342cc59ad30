// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output projects query results through --attrs and emits them as a
// text table, json, yaml or raw record json.
package output
