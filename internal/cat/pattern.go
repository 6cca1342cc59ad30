// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cat

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TraitlessToken selects units without a declared target trait.
const TraitlessToken = "traitless"

// ErrInvalidPattern is returned when a search pattern is not a valid regular
// expression.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a compiled case-insensitive search. The zero value matches
// everything.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// Compile builds a Pattern. An empty string yields the match-all Pattern.
func Compile(pattern string) (Pattern, error) {
	if pattern == "" {
		return Pattern{}, nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return Pattern{raw: pattern, re: re}, nil
}

// MustCompile is Compile for patterns known to be valid.
func MustCompile(pattern string) Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Empty reports whether p is the match-all Pattern.
func (p Pattern) Empty() bool {
	return p.re == nil
}

// IsTraitless reports whether p is the traitless token.
func (p Pattern) IsTraitless() bool {
	return strings.EqualFold(strings.TrimSpace(p.raw), TraitlessToken)
}

// MatchString reports whether s contains a match of p.
func (p Pattern) MatchString(s string) bool {
	if p.re == nil {
		return true
	}
	return p.re.MatchString(s)
}

// String returns the source pattern.
func (p Pattern) String() string {
	return p.raw
}

// filter returns the entries of values matched by p, or a copy of values when
// p is empty.
func (p Pattern) filter(values []string) []string {
	if p.Empty() {
		return copyStrings(values)
	}
	var result []string
	for _, v := range values {
		if p.re.MatchString(v) {
			result = append(result, v)
		}
	}
	return result
}

func copyStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
