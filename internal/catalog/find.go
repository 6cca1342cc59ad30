// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"strings"

	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/log"
)

// Field names a queryable record field.
type Field int

const (
	FieldName Field = iota
	FieldAlias
	FieldCost
	FieldRarity
	FieldForm
	FieldAbility
	FieldEffect
	FieldAbilityEffect
	FieldTarget
	FieldDescription
)

// Fields lists every queryable field.
var Fields = []Field{
	FieldName,
	FieldAlias,
	FieldCost,
	FieldRarity,
	FieldForm,
	FieldAbility,
	FieldEffect,
	FieldAbilityEffect,
	FieldTarget,
	FieldDescription,
}

var fieldNames = map[Field]string{
	FieldName:          "name",
	FieldAlias:         "alias",
	FieldCost:          "cost",
	FieldRarity:        "rarity",
	FieldForm:          "form",
	FieldAbility:       "ability",
	FieldEffect:        "effect",
	FieldAbilityEffect: "ability_effect",
	FieldTarget:        "target",
	FieldDescription:   "description",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField resolves a field name. Dashes and underscores are
// interchangeable and "abilityeffect" is accepted.
func ParseField(name string) (Field, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if norm == "abilityeffect" {
		return FieldAbilityEffect, nil
	}
	for f, s := range fieldNames {
		if s == norm {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidExpression, name)
}

// Find dispatches to the Find method for field.
func (c *Catalog) Find(field Field, expr string, subset []*cat.Cat) ([]*cat.Cat, error) {
	switch field {
	case FieldName:
		return c.FindName(expr, subset)
	case FieldAlias:
		return c.FindAlias(expr, subset)
	case FieldCost:
		return c.FindCost(expr, subset)
	case FieldRarity:
		return c.FindRarity(expr, subset)
	case FieldForm:
		return c.FindForm(expr, subset)
	case FieldAbility:
		return c.FindAbility(expr, subset)
	case FieldEffect:
		return c.FindEffect(expr, subset)
	case FieldAbilityEffect:
		return c.FindAbilityEffect(expr, subset)
	case FieldTarget:
		return c.FindTarget(expr, subset)
	case FieldDescription:
		return c.FindDescription(expr, subset)
	}
	return nil, fmt.Errorf("%w: unknown field %v", ErrInvalidExpression, field)
}

// FindName returns the cats whose name matches pattern.
func (c *Catalog) FindName(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldName, pattern, subset, (*cat.Cat).MatchName)
}

// FindAlias returns the cats with an alternate name matching pattern.
func (c *Catalog) FindAlias(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldAlias, pattern, subset, func(x *cat.Cat, p cat.Pattern) bool {
		return len(x.Aliases(p)) > 0
	})
}

// FindDescription returns the cats whose description matches pattern.
func (c *Catalog) FindDescription(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldDescription, pattern, subset, (*cat.Cat).MatchDescription)
}

// FindRarity returns the cats whose rarity matches pattern.
func (c *Catalog) FindRarity(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldRarity, pattern, subset, (*cat.Cat).MatchRarity)
}

// FindForm returns the cats whose form matches pattern.
func (c *Catalog) FindForm(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldForm, pattern, subset, (*cat.Cat).MatchForm)
}

// FindAbility returns the cats with at least one ability matching pattern.
func (c *Catalog) FindAbility(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldAbility, pattern, subset, func(x *cat.Cat, p cat.Pattern) bool {
		return len(x.Abilities(p)) > 0
	})
}

// FindEffect returns the cats with at least one effect matching pattern.
func (c *Catalog) FindEffect(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldEffect, pattern, subset, func(x *cat.Cat, p cat.Pattern) bool {
		return len(x.Effects(p)) > 0
	})
}

// FindAbilityEffect returns the union of FindAbility and FindEffect without
// duplicates, in subset order.
func (c *Catalog) FindAbilityEffect(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldAbilityEffect, pattern, subset, func(x *cat.Cat, p cat.Pattern) bool {
		return len(x.AbilityEffects(p)) > 0
	})
}

// FindTarget returns the cats with a target matching pattern. The
// "traitless" token selects units without a declared trait that still carry
// a primary effect.
func (c *Catalog) FindTarget(pattern string, subset []*cat.Cat) ([]*cat.Cat, error) {
	return c.findPattern(FieldTarget, pattern, subset, func(x *cat.Cat, p cat.Pattern) bool {
		return len(x.Targets(p)) > 0
	})
}

// FindCost returns the cats with at least one cost satisfying expr.
func (c *Catalog) FindCost(expr string, subset []*cat.Cat) ([]*cat.Cat, error) {
	ce, err := ParseCostExpr(expr)
	if err != nil {
		log.Errorf("find cost: %v", err)
		return nil, err
	}
	return c.scan(FieldCost, ce.String(), subset, func(x *cat.Cat) bool {
		return ce.Matches(x.Cost())
	}), nil
}

// findPattern compiles pattern once and scans subset with match.
func (c *Catalog) findPattern(field Field, pattern string, subset []*cat.Cat,
	match func(*cat.Cat, cat.Pattern) bool) ([]*cat.Cat, error) {
	p, err := cat.Compile(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrInvalidExpression, field, err)
		log.Errorf("find %s: %v", field, err)
		return nil, err
	}
	return c.scan(field, pattern, subset, func(x *cat.Cat) bool {
		return match(x, p)
	}), nil
}

// scan keeps the members of subset (or of the catalog when subset is nil)
// accepted by keep, in order. The result is never nil.
func (c *Catalog) scan(field Field, expr string, subset []*cat.Cat, keep func(*cat.Cat) bool) []*cat.Cat {
	if subset == nil {
		subset = c.cats
	}

	result := make([]*cat.Cat, 0)
	for _, x := range subset {
		if keep(x) {
			result = append(result, x)
		}
	}

	log.Tracef("find %s=%q: %d of %d", field, expr, len(result), len(subset))
	return result
}
