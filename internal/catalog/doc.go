// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog loads a Battle Cats dataset and answers queries over it.
//
// A Catalog is built once from a JSON document whose top-level key (default
// "cats") holds the unit records, and is read-only afterwards. Every Find
// operation takes an expression and an optional subset:
//
//	uber, _ := c.FindRarity("uber", nil)
//	red, _ := c.FindTarget("red", uber)
//	cheap, _ := c.FindCost("<= 3000", red)
//
// A nil subset means the whole catalog. Results keep the order of the subset
// and are never nil, so an empty result chained into the next Find stays
// empty. Patterns are case-insensitive regular expressions searched anywhere
// in the field; cost takes a comparison such as "150", "=150", ">= 4000".
// Malformed expressions fail with ErrInvalidExpression before any record is
// scanned.
package catalog
