// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"

	"github.com/catfood/bcq/internal/cat"
	"github.com/catfood/bcq/internal/driller"
	"github.com/catfood/bcq/internal/log"
)

// DefaultKey is the top-level document key holding the records.
const DefaultKey = "cats"

var (
	// ErrInvalidExpression marks a query expression that cannot be evaluated:
	// a malformed cost comparison, a bad regular expression or a bad filter
	// spec.
	ErrInvalidExpression = errors.New("invalid input expression")

	// ErrMalformedDataset marks a dataset document that does not have the
	// expected shape.
	ErrMalformedDataset = errors.New("malformed dataset")
)

// requiredKeys must be present and non-null on every record. talents is
// optional.
var requiredKeys = []string{
	"ability",
	"alias",
	"cost",
	"description",
	"effect",
	"form",
	"name",
	"rarity_index",
	"rarity_pct",
	"rarity_total",
	"rarity",
	"target",
}

// Catalog is the loaded, immutable collection of units in document order.
type Catalog struct {
	cats   []*cat.Cat
	source string
	key    string
}

type options struct {
	key    string
	source string
}

// Option tunes Load and Parse.
type Option func(*options)

// WithKey selects the top-level key holding the records.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithSource names the document in errors and log lines.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// Load reads the dataset file at path once and parses it. Records whose
// rarity_pct disagrees with rarity_index/rarity_total are logged as warnings.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	c, err := Parse(data, append([]Option{WithSource(path)}, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, problem := range c.Verify() {
		log.Warnf("%s: %v", path, problem)
	}
	log.Debugf("loaded %d cats from %s[%s]", c.Len(), path, c.key)

	return c, nil
}

// Parse builds a Catalog from a dataset document.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	o := options{key: DefaultKey, source: "dataset"}
	for _, opt := range opts {
		opt(&o)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrMalformedDataset, o.source)
	}

	entries := gjson.GetBytes(data, driller.EscapeKey(o.key))
	if !entries.Exists() {
		return nil, fmt.Errorf("%w: %s has no top-level key %q", ErrMalformedDataset, o.source, o.key)
	}
	if !entries.IsArray() {
		return nil, fmt.Errorf("%w: %s key %q is not an array", ErrMalformedDataset, o.source, o.key)
	}

	c := &Catalog{source: o.source, key: o.key}
	for i, entry := range entries.Array() {
		rec, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %s entry %d: %w", ErrMalformedDataset, o.source, i, err)
		}
		c.cats = append(c.cats, cat.New(rec))
	}

	return c, nil
}

// decodeEntry checks key presence and decodes one record.
func decodeEntry(entry gjson.Result) (cat.Record, error) {
	var rec cat.Record

	if !entry.IsObject() {
		return rec, errors.New("record is not an object")
	}

	for _, key := range requiredKeys {
		switch value := entry.Get(key); {
		case !value.Exists():
			if name := entry.Get("name"); name.Type == gjson.String {
				return rec, fmt.Errorf("%q is missing key %q", name.String(), key)
			}
			return rec, fmt.Errorf("missing key %q", key)
		case value.Type == gjson.Null:
			if name := entry.Get("name"); name.Type == gjson.String {
				return rec, fmt.Errorf("%q has null %q", name.String(), key)
			}
			return rec, fmt.Errorf("null %q", key)
		}
	}

	if err := json.Unmarshal([]byte(entry.Raw), &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Cats returns the records in document order. The slice is a copy; the
// records themselves are immutable.
func (c *Catalog) Cats() []*cat.Cat {
	out := make([]*cat.Cat, len(c.cats))
	copy(out, c.cats)
	return out
}

// Len is the number of records.
func (c *Catalog) Len() int {
	return len(c.cats)
}

// Source names the document the catalog was built from.
func (c *Catalog) Source() string {
	return c.source
}

// Verify reports records whose rarity_pct is not rarity_index/rarity_total.
func (c *Catalog) Verify() []error {
	var problems []error
	for _, x := range c.cats {
		if x.RarityTotal() == 0 {
			problems = append(problems, fmt.Errorf("%s: rarity_total is zero", x.Name()))
			continue
		}
		want := float64(x.RarityIndex()) / float64(x.RarityTotal())
		if math.Abs(want-x.RarityPct()) > 1e-9 {
			problems = append(problems, fmt.Errorf("%s: rarity_pct %v != %d/%d",
				x.Name(), x.RarityPct(), x.RarityIndex(), x.RarityTotal()))
		}
	}
	return problems
}
