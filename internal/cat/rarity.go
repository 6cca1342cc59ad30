// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cat

import "strings"

// Rarity is the gacha tier of a unit.
type Rarity string

const (
	RarityNormal  Rarity = "Normal"
	RaritySpecial Rarity = "Special"
	RarityRare    Rarity = "Rare"
	RaritySuper   Rarity = "Super"
	RarityUber    Rarity = "Uber"
	RarityLegend  Rarity = "Legend"
)

// Rarities lists the tiers from most to least common.
var Rarities = []Rarity{
	RarityNormal,
	RaritySpecial,
	RarityRare,
	RaritySuper,
	RarityUber,
	RarityLegend,
}

var rarityAbbrevs = map[Rarity]string{
	RarityNormal:  "NR",
	RaritySpecial: "EX",
	RarityRare:    "RR",
	RaritySuper:   "SR",
	RarityUber:    "UR",
	RarityLegend:  "LR",
}

// Abbrev returns the short tier label used in listings. Unknown tiers fall
// back to their first two letters, upper-cased.
func (r Rarity) Abbrev() string {
	if a, ok := rarityAbbrevs[r]; ok {
		return a
	}
	s := strings.ToUpper(string(r))
	if len(s) > 2 {
		s = s[:2]
	}
	return s
}

// Tier is the position of r in Rarities, or len(Rarities) when unknown.
func (r Rarity) Tier() int {
	for i, known := range Rarities {
		if known == r {
			return i
		}
	}
	return len(Rarities)
}

// Form is the legacy evolution stage label carried by each record.
type Form string

const (
	FormNormal  Form = "Normal"
	FormEvolved Form = "Evolved"
	FormTrue    Form = "True"
)
