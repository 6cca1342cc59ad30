// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apex/log"

	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/catalog"
)

// filterRegex splits a filter expression into field, operator and value. The
// operator is optionally prefixed with '!' for negation. Two-character
// comparisons are listed before their one-character prefixes so "cost<=10"
// parses as "<=" and not "<" with value "=10". Examples: "ability~wave",
// "target!=red", "cost>=4000", "rarity=^uber$".
var filterRegex = regexp.MustCompile(`^([^!=~<>]*)(!?(?:==|<=|>=|=|~|<|>))?(.*)$`)

// patternOperands are the operators accepted by regex fields. Both are
// case-insensitive unanchored regex matches; "=" reads better on the command
// line for anchored patterns.
var patternOperands = map[string]bool{"~": true, "=": true}

// costOperands are the operators accepted by the cost field.
var costOperands = map[string]bool{"=": true, "==": true, "<": true, "<=": true, ">=": true, ">": true}

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string        `yaml:"key" json:"Key"`
	Field   catalog.Field `yaml:"-" json:"-"`
	Negate  bool          `yaml:"negate" json:"Negate"`
	Operand string        `yaml:"operand" json:"Operand"`
	Value   string        `yaml:"value" json:"Value"`
}

// Expr is the expression handed to the catalog for this filter. Cost filters
// keep their operator; pattern filters pass the value alone.
func (f Filter) Expr() string {
	if f.Field == catalog.FieldCost {
		return f.Operand + f.Value
	}
	return f.Value
}

func (f Filter) String() string {
	neg := ""
	if f.Negate {
		neg = "!"
	}
	return f.Key + neg + f.Operand + f.Value
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Any bad entry fails the whole spec.
func BuildFilters(spec string) ([]Filter, error) {
	//nolint:prealloc
	var filters []Filter

	if strings.TrimSpace(spec) == "" {
		return filters, nil
	}

	// Default delimiter is ",", allow an override for patterns that contain
	// commas.
	delim := ","
	if d, ok := os.LookupEnv("BCQ_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		filter, err := buildFilter(filterSpec)
		if err != nil {
			log.Error(err.Error())
			return nil, err
		}
		filters = append(filters, filter)
	}

	return filters, nil
}

func buildFilter(filterSpec string) (Filter, error) {
	parts := filterRegex.FindStringSubmatch(filterSpec)

	// parts[1] is the field
	// parts[2] is the optional operator, possibly negated
	// parts[3] is the value
	if parts == nil {
		return Filter{}, fmt.Errorf("%w: invalid filter %q", catalog.ErrInvalidExpression, filterSpec)
	}

	key := strings.TrimSpace(parts[1])
	operand := parts[2]
	value := strings.TrimSpace(parts[3])

	if key == "" {
		return Filter{}, fmt.Errorf("%w: empty key in filter %q", catalog.ErrInvalidExpression, filterSpec)
	}

	field, err := catalog.ParseField(key)
	if err != nil {
		return Filter{}, fmt.Errorf("filter %q: %w", filterSpec, err)
	}

	if operand == "" {
		return Filter{}, fmt.Errorf("%w: filter %q has no operator", catalog.ErrInvalidExpression, filterSpec)
	}

	negate := strings.HasPrefix(operand, "!")
	operand = strings.TrimPrefix(operand, "!")

	allowed := patternOperands
	if field == catalog.FieldCost {
		allowed = costOperands
	}
	if !allowed[operand] {
		return Filter{}, fmt.Errorf("%w: operator %q is not supported for %s",
			catalog.ErrInvalidExpression, operand, field)
	}

	return Filter{
		Key:     field.String(),
		Field:   field,
		Negate:  negate,
		Operand: operand,
		Value:   value,
	}, nil
}

// Apply runs filters left to right, each narrowing the result of the one
// before. A nil subset starts from the whole catalog. The result is never nil.
func Apply(c *catalog.Catalog, filters []Filter, subset []*cat.Cat) ([]*cat.Cat, error) {
	current := subset
	if current == nil {
		current = c.Cats()
	}

	for _, filter := range filters {
		matches, err := c.Find(filter.Field, filter.Expr(), current)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", filter.String(), err)
		}

		if filter.Negate {
			matches = without(current, matches)
		}

		log.Debugf("filter %s kept %d of %d", filter, len(matches), len(current))
		current = matches
	}

	if current == nil {
		current = make([]*cat.Cat, 0)
	}
	return current, nil
}

// FilterCatalog is BuildFilters followed by Apply.
func FilterCatalog(c *catalog.Catalog, spec string, subset []*cat.Cat) ([]*cat.Cat, error) {
	filters, err := BuildFilters(spec)
	if err != nil {
		return nil, err
	}
	return Apply(c, filters, subset)
}

// without returns the members of from that are not in drop, in order.
func without(from, drop []*cat.Cat) []*cat.Cat {
	skip := make(map[*cat.Cat]bool, len(drop))
	for _, x := range drop {
		skip[x] = true
	}

	result := make([]*cat.Cat, 0, len(from))
	for _, x := range from {
		if !skip[x] {
			result = append(result, x)
		}
	}
	return result
}
