// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows catalog query results with --filter expressions.
//
// A filter spec is a list of field-operator-value expressions separated by a
// configurable delimiter (default: comma, override with BCQ_FILTER_DELIM).
//
// Operators for the cost field:
//
//   - = or == : equal
//   - < <= >= > : comparisons
//
// Operators for every other field:
//
//   - ~ or = : case-insensitive regex match, unanchored
//
// Any operator can be prefixed with ! to keep the records that do NOT match.
//
// Examples:
//
//   - "rarity=^uber$" : Uber units only
//   - "target~red,cost<=4000" : Red-targeting units costing at most 4000
//   - "ability!~single" : drop single-target attackers
//   - "target~traitless" : units with no declared trait
//
// Fields are those accepted by catalog.ParseField. Filters are applied left to
// right, each narrowing the result of the previous one. An unknown field, a
// missing or unsupported operator, or a bad pattern fails the whole spec with
// catalog.ErrInvalidExpression.
package filters
