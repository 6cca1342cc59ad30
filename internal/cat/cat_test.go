// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cat

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balrog() *Cat {
	return New(Record{
		Ability:     []string{"Resist Wave", "Single Attack"},
		Alias:       []string{"Bahamut Cat", "Awakened Bahamut Cat"},
		Cost:        SingleCost(3000),
		Description: "Demonic form of Bahamut Cat. Resists wave attacks.",
		Effect:      []string{""},
		Form:        FormTrue,
		Name:        "Balrog Cat",
		RarityIndex: 1,
		RarityPct:   0.05,
		RarityTotal: 20,
		Rarity:      RaritySuper,
		Target:      []string{""},
		Talents:     map[string]int{"Resist Wave": 10},
	})
}

func shadowGao() *Cat {
	return New(Record{
		Ability: []string{"Area Attack"},
		Cost:    MultiCost(4500, 4500),
		Effect:  []string{"Strong", "Knockback"},
		Form:    FormEvolved,
		Name:    "Shadow Gao",
		Rarity:  RarityUber,
		Target:  []string{""},
	})
}

func TestCat_Accessors(t *testing.T) {
	c := balrog()

	assert.Equal(t, "Balrog Cat", c.Name())
	assert.Equal(t, []string{"Bahamut Cat", "Awakened Bahamut Cat"}, c.Alias())
	assert.Equal(t, []int{3000}, c.Cost().Values())
	assert.Equal(t, FormTrue, c.Form())
	assert.Equal(t, RaritySuper, c.Rarity())
	assert.Equal(t, 1, c.RarityIndex())
	assert.InDelta(t, 0.05, c.RarityPct(), 1e-12)
	assert.Equal(t, 20, c.RarityTotal())
	assert.Equal(t, []string{""}, c.Target())

	level, ok := c.Talent("Resist Wave")
	assert.True(t, ok)
	assert.Greater(t, level, 0)
	assert.True(t, c.HasTalents())
	assert.False(t, shadowGao().HasTalents())
	assert.Nil(t, shadowGao().Talents())
}

func TestCat_Immutable(t *testing.T) {
	rec := Record{
		Ability: []string{"Strengthen"},
		Cost:    SingleCost(75),
		Name:    "Cat",
		Talents: map[string]int{"Attack Up": 1},
	}
	c := New(rec)

	rec.Ability[0] = "mutated"
	rec.Talents["Attack Up"] = 99
	assert.Equal(t, []string{"Strengthen"}, c.Ability())

	got := c.Ability()
	got[0] = "mutated"
	assert.Equal(t, []string{"Strengthen"}, c.Ability())

	talents := c.Talents()
	talents["Attack Up"] = 42
	level, _ := c.Talent("Attack Up")
	assert.Equal(t, 1, level)

	r := c.Record()
	r.Name = "Other"
	assert.Equal(t, "Cat", c.Name())
}

func TestCat_Abilities(t *testing.T) {
	c := balrog()

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "no pattern returns all", pattern: "", want: []string{"Resist Wave", "Single Attack"}},
		{name: "case insensitive", pattern: "resist wave", want: []string{"Resist Wave"}},
		{name: "substring", pattern: "attack", want: []string{"Single Attack"}},
		{name: "regex alternation", pattern: "^(resist|single)", want: []string{"Resist Wave", "Single Attack"}},
		{name: "no match", pattern: "Freeze", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FilterAbility(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCat_AbilityEffects(t *testing.T) {
	c := shadowGao()

	got := c.AbilityEffects(MustCompile("a"))
	assert.Equal(t, []string{"Area Attack", "Knockback"}, got)

	got, err := c.FilterAbilityEffect("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Area Attack", "Strong", "Knockback"}, got)
}

func TestCat_Targets(t *testing.T) {
	tests := []struct {
		name    string
		cat     *Cat
		pattern string
		want    []string
	}{
		{name: "traitless with effect", cat: shadowGao(), pattern: "traitless", want: []string{""}},
		{name: "traitless token is case insensitive", cat: shadowGao(), pattern: " TraitLess ", want: []string{""}},
		{name: "traitless without effect", cat: balrog(), pattern: "traitless", want: nil},
		{name: "no pattern keeps sentinel", cat: balrog(), pattern: "", want: []string{""}},
		{name: "regex on sentinel target", cat: balrog(), pattern: "Red", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cat.FilterTarget(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCat_Traitless(t *testing.T) {
	assert.True(t, shadowGao().Traitless())
	assert.False(t, balrog().Traitless())

	typed := New(Record{Cost: SingleCost(1), Effect: []string{"Slow"}, Target: []string{"Red"}})
	assert.False(t, typed.Traitless())
}

func TestCat_SingleValuedFilters(t *testing.T) {
	c := balrog()

	desc, ok, err := c.FilterDescription("wave attacks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, c.Description(), desc)

	_, ok, err = c.FilterDescription("zombie")
	require.NoError(t, err)
	assert.False(t, ok)

	form, ok, err := c.FilterForm("")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "True", form)

	assert.True(t, c.MatchName(MustCompile("balrog")))
	assert.True(t, c.MatchRarity(MustCompile("^super$")))
	assert.False(t, c.MatchForm(MustCompile("evolved")))
	assert.True(t, c.MatchDescription(Pattern{}))
}

func TestCat_InvalidPattern(t *testing.T) {
	c := balrog()

	_, err := c.FilterAbility("(")
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	_, _, err = c.FilterForm("[a-")
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestCat_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(shadowGao())
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(out, &round))
	assert.Equal(t, "Shadow Gao", round["name"])
	assert.Equal(t, []any{4500.0, 4500.0}, round["cost"])
	assert.NotContains(t, round, "talents")

	out, err = json.Marshal(balrog())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"talents":{"Resist Wave":10}`)
}

func TestPattern(t *testing.T) {
	p, err := Compile("")
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.True(t, p.MatchString("anything"))

	p = MustCompile("eraser")
	assert.False(t, p.Empty())
	assert.Equal(t, "eraser", p.String())
	assert.True(t, p.MatchString("Eraser Cat"))
	assert.False(t, p.IsTraitless())

	assert.Panics(t, func() { MustCompile("(") })
}
