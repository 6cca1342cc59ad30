// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts values from record JSON by dotted path for the
// columns of text, json and yaml output.
package driller
