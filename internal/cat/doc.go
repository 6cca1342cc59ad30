// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package cat models a single Battle Cats unit record.
//
// A Cat is immutable once built with New: accessors hand out copies of its
// slices and maps. Multi-valued fields (ability, effect, target, alias) also
// have a pattern form that returns only the entries matching a
// case-insensitive regular expression, with the empty Pattern meaning "no
// filter". The target field honors the "traitless" token: it selects the
// empty-string target entry of a unit that has no declared trait but still
// carries a primary effect.
package cat
