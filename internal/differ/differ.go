// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/catfood/bcq/internal/catalog"
)

// Options controls a dataset diff.
type Options struct {
	// Keys are the top-level keys holding the records of the old and new
	// documents. An empty key means catalog.DefaultKey.
	Keys [2]string
	// Filter lists record keys dropped from both sides before comparing.
	Filter []string
	// Color turns on ANSI coloring of the diff.
	Color bool
}

// Summary counts top-level changes by unit name.
type Summary struct {
	Added    []string
	Removed  []string
	Modified []string
}

// Changed reports whether the summary holds any change.
func (s Summary) Changed() bool {
	return len(s.Added)+len(s.Removed)+len(s.Modified) > 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d removed, %d changed", len(s.Added), len(s.Removed), len(s.Modified))
}

// ParseFilter splits a --diff_filter value into record keys.
func ParseFilter(spec string) []string {
	var keys []string
	for key := range strings.SplitSeq(spec, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Diff compares two dataset documents unit by unit and writes an ASCII diff
// followed by a summary line. Records are keyed by name so an inserted unit
// shows up as one addition rather than a shifted list.
func Diff(ctx context.Context, docs [2][]byte, opts Options, w io.Writer) (Summary, error) {
	log.Debugf(">> differ()")

	if w == nil {
		w = os.Stdout
	}

	keys := opts.Keys
	for i := range keys {
		if keys[i] == "" {
			keys[i] = catalog.DefaultKey
		}
	}

	left, err := Keyed(docs[0], keys[0], opts.Filter)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load old dataset: %w", err)
	}
	right, err := Keyed(docs[1], keys[1], opts.Filter)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load new dataset: %w", err)
	}

	log.Debugf("units: %d %d", len(left), len(right))

	delta := gojsondiff.New().CompareObjects(left, right)
	summary := Summarize(delta)

	if !delta.Modified() {
		fmt.Fprintln(w, "The datasets are identical.")
		return summary, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	}

	diffString, err := formatter.NewAsciiFormatter(left, config).Format(delta)
	if err != nil {
		return summary, err
	}

	fmt.Fprintln(w, diffString)
	fmt.Fprintln(w, summary)
	return summary, nil
}

// Keyed parses a dataset document and returns its records as generic JSON
// objects keyed by unit name. Repeated names get a " #n" suffix. Keys listed
// in drop are removed from every record.
func Keyed(doc []byte, key string, drop []string) (map[string]interface{}, error) {
	c, err := catalog.Parse(doc, catalog.WithKey(key))
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{}, c.Len())
	for _, x := range c.Cats() {
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}

		var rec map[string]interface{}
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		for _, k := range drop {
			delete(rec, k)
		}

		name := x.Name()
		for n := 2; out[name] != nil; n++ {
			name = fmt.Sprintf("%s #%d", x.Name(), n)
		}
		out[name] = rec
	}

	return out, nil
}

// Summarize sorts the top-level deltas of a diff into added, removed and
// modified unit names.
func Summarize(delta gojsondiff.Diff) Summary {
	var s Summary
	for _, d := range delta.Deltas() {
		switch d := d.(type) {
		case *gojsondiff.Added:
			s.Added = append(s.Added, d.PostPosition().String())
		case *gojsondiff.Deleted:
			s.Removed = append(s.Removed, d.PrePosition().String())
		case gojsondiff.PostDelta:
			s.Modified = append(s.Modified, d.PostPosition().String())
		}
	}
	sort.Strings(s.Added)
	sort.Strings(s.Removed)
	sort.Strings(s.Modified)
	return s
}
