// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/catfood/bcq/internal/cat"
)

// Categories are the Stats breakdowns in display order.
var Categories = []string{"ability", "effect", "rarity", "target"}

// Stats counts the occurrences of each distinct value per category.
type Stats struct {
	Ability map[string]int `json:"ability" yaml:"ability"`
	Effect  map[string]int `json:"effect" yaml:"effect"`
	Rarity  map[string]int `json:"rarity" yaml:"rarity"`
	Target  map[string]int `json:"target" yaml:"target"`
}

// RarityCount is one row of Stats.Rarities.
type RarityCount struct {
	Rarity cat.Rarity
	Count  int
}

// Stats tallies the whole catalog.
func (c *Catalog) Stats() Stats {
	return Tally(c.cats)
}

// Tally counts ability, effect, rarity and target values across cats.
// Empty-string sentinels are skipped; traitless units count under the
// "traitless" target.
func Tally(cats []*cat.Cat) Stats {
	s := Stats{
		Ability: map[string]int{},
		Effect:  map[string]int{},
		Rarity:  map[string]int{},
		Target:  map[string]int{},
	}

	for _, x := range cats {
		countValues(s.Ability, x.Ability())
		countValues(s.Effect, x.Effect())
		countValues(s.Target, x.Target())
		if x.Traitless() {
			s.Target[cat.TraitlessToken]++
		}
		if r := x.Rarity(); r != "" {
			s.Rarity[string(r)]++
		}
	}

	return s
}

func countValues(into map[string]int, values []string) {
	for _, v := range values {
		if v != "" {
			into[v]++
		}
	}
}

// Category returns the counts for one of Categories.
func (s Stats) Category(name string) (map[string]int, error) {
	switch name {
	case "ability":
		return s.Ability, nil
	case "effect":
		return s.Effect, nil
	case "rarity":
		return s.Rarity, nil
	case "target":
		return s.Target, nil
	}
	return nil, fmt.Errorf("%w: unknown stats category %q", ErrInvalidExpression, name)
}

// Rarities returns rarity counts in tier order; unknown tiers follow,
// alphabetically.
func (s Stats) Rarities() []RarityCount {
	out := make([]RarityCount, 0, len(s.Rarity))
	for r, n := range s.Rarity {
		out = append(out, RarityCount{Rarity: cat.Rarity(r), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].Rarity.Tier(), out[j].Rarity.Tier()
		if ti != tj {
			return ti < tj
		}
		return out[i].Rarity < out[j].Rarity
	})
	return out
}

// ListLine renders a unit as "<name>, <abbrev> <pct>% (<index>/<total>)".
func ListLine(x *cat.Cat) string {
	pct := int(math.Round(x.RarityPct() * 100))
	return fmt.Sprintf("%s, %s %d%% (%d/%d)",
		x.Name(), x.Rarity().Abbrev(), pct, x.RarityIndex(), x.RarityTotal())
}

// Listing renders ListLine for every member of subset, or of the catalog when
// subset is nil.
func (c *Catalog) Listing(subset []*cat.Cat) []string {
	if subset == nil {
		subset = c.cats
	}
	lines := make([]string, 0, len(subset))
	for _, x := range subset {
		lines = append(lines, ListLine(x))
	}
	return lines
}
