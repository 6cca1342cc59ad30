// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cat

import (
	"encoding/json"
)

// Record is the wire shape of one entry in the dataset document.
type Record struct {
	Ability     []string       `json:"ability"`
	Alias       []string       `json:"alias"`
	Cost        Cost           `json:"cost"`
	Description string         `json:"description"`
	Effect      []string       `json:"effect"`
	Form        Form           `json:"form"`
	Name        string         `json:"name"`
	RarityIndex int            `json:"rarity_index"`
	RarityPct   float64        `json:"rarity_pct"`
	RarityTotal int            `json:"rarity_total"`
	Rarity      Rarity         `json:"rarity"`
	Target      []string       `json:"target"`
	Talents     map[string]int `json:"talents,omitempty"`
}

// Cat is one unit. It is never mutated after New.
type Cat struct {
	rec Record
}

// New builds a Cat from a decoded record. The record's slices and maps are
// copied so later changes to r do not leak into the Cat.
func New(r Record) *Cat {
	return &Cat{rec: copyRecord(r)}
}

// Record returns a copy of the wire shape.
func (c *Cat) Record() Record {
	return copyRecord(c.rec)
}

// MarshalJSON encodes the Cat in the dataset's record shape.
func (c *Cat) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.rec)
}

func (c *Cat) Name() string        { return c.rec.Name }
func (c *Cat) Alias() []string     { return copyStrings(c.rec.Alias) }
func (c *Cat) Cost() Cost          { return copyCost(c.rec.Cost) }
func (c *Cat) Description() string { return c.rec.Description }
func (c *Cat) Ability() []string   { return copyStrings(c.rec.Ability) }
func (c *Cat) Effect() []string    { return copyStrings(c.rec.Effect) }
func (c *Cat) Form() Form          { return c.rec.Form }
func (c *Cat) Rarity() Rarity      { return c.rec.Rarity }
func (c *Cat) RarityIndex() int    { return c.rec.RarityIndex }
func (c *Cat) RarityPct() float64  { return c.rec.RarityPct }
func (c *Cat) RarityTotal() int    { return c.rec.RarityTotal }
func (c *Cat) Target() []string    { return copyStrings(c.rec.Target) }

// Talents returns the talent levels, or nil when the unit has none.
func (c *Cat) Talents() map[string]int {
	return copyTalents(c.rec.Talents)
}

// Talent returns the level of a single talent.
func (c *Cat) Talent(name string) (int, bool) {
	level, ok := c.rec.Talents[name]
	return level, ok
}

// HasTalents reports whether the unit carries a talent table.
func (c *Cat) HasTalents() bool {
	return c.rec.Talents != nil
}

// Traitless reports whether the unit has an empty target entry while its
// primary effect is set.
func (c *Cat) Traitless() bool {
	if len(c.rec.Effect) == 0 || c.rec.Effect[0] == "" {
		return false
	}
	for _, t := range c.rec.Target {
		if t == "" {
			return true
		}
	}
	return false
}

// Abilities returns the abilities matched by p.
func (c *Cat) Abilities(p Pattern) []string {
	return p.filter(c.rec.Ability)
}

// Effects returns the effects matched by p.
func (c *Cat) Effects(p Pattern) []string {
	return p.filter(c.rec.Effect)
}

// AbilityEffects returns the abilities matched by p followed by the matched
// effects.
func (c *Cat) AbilityEffects(p Pattern) []string {
	return append(c.Abilities(p), c.Effects(p)...)
}

// Aliases returns the alternate names matched by p.
func (c *Cat) Aliases(p Pattern) []string {
	return p.filter(c.rec.Alias)
}

// Targets returns the targets matched by p. The traitless token matches the
// empty target entry, and only when the unit's primary effect is set.
func (c *Cat) Targets(p Pattern) []string {
	if !p.IsTraitless() {
		return p.filter(c.rec.Target)
	}

	var result []string
	if len(c.rec.Effect) == 0 || c.rec.Effect[0] == "" {
		return result
	}
	for _, t := range c.rec.Target {
		if t == "" {
			result = append(result, t)
		}
	}
	return result
}

// MatchName reports whether p matches the name.
func (c *Cat) MatchName(p Pattern) bool { return p.MatchString(c.rec.Name) }

// MatchDescription reports whether p matches the description.
func (c *Cat) MatchDescription(p Pattern) bool { return p.MatchString(c.rec.Description) }

// MatchForm reports whether p matches the form.
func (c *Cat) MatchForm(p Pattern) bool { return p.MatchString(string(c.rec.Form)) }

// MatchRarity reports whether p matches the rarity.
func (c *Cat) MatchRarity(p Pattern) bool { return p.MatchString(string(c.rec.Rarity)) }

// FilterAbility compiles pattern and applies Abilities.
func (c *Cat) FilterAbility(pattern string) ([]string, error) {
	return filterWith(pattern, c.Abilities)
}

// FilterEffect compiles pattern and applies Effects.
func (c *Cat) FilterEffect(pattern string) ([]string, error) {
	return filterWith(pattern, c.Effects)
}

// FilterAbilityEffect compiles pattern and applies AbilityEffects.
func (c *Cat) FilterAbilityEffect(pattern string) ([]string, error) {
	return filterWith(pattern, c.AbilityEffects)
}

// FilterTarget compiles pattern and applies Targets.
func (c *Cat) FilterTarget(pattern string) ([]string, error) {
	return filterWith(pattern, c.Targets)
}

// FilterAlias compiles pattern and applies Aliases.
func (c *Cat) FilterAlias(pattern string) ([]string, error) {
	return filterWith(pattern, c.Aliases)
}

// FilterDescription returns the description when pattern is empty or matches.
func (c *Cat) FilterDescription(pattern string) (string, bool, error) {
	return selectWith(pattern, c.rec.Description)
}

// FilterForm returns the form when pattern is empty or matches.
func (c *Cat) FilterForm(pattern string) (string, bool, error) {
	return selectWith(pattern, string(c.rec.Form))
}

func filterWith(pattern string, fn func(Pattern) []string) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return fn(p), nil
}

func selectWith(pattern, value string) (string, bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", false, err
	}
	if !p.MatchString(value) {
		return "", false, nil
	}
	return value, true, nil
}

func copyCost(c Cost) Cost {
	return Cost{values: append([]int(nil), c.values...), multi: c.multi}
}

func copyRecord(r Record) Record {
	out := r
	out.Ability = copyStrings(r.Ability)
	out.Alias = copyStrings(r.Alias)
	out.Cost = copyCost(r.Cost)
	out.Effect = copyStrings(r.Effect)
	out.Target = copyStrings(r.Target)
	out.Talents = copyTalents(r.Talents)
	return out
}

func copyTalents(t map[string]int) map[string]int {
	if t == nil {
		return nil
	}
	out := make(map[string]int, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
