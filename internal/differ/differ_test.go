// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catfood/bcq/internal/catalog"
)

func readDocs(t *testing.T) [2][]byte {
	t.Helper()
	old, err := os.ReadFile(filepath.Join("testdata", "old.json"))
	require.NoError(t, err)
	updated, err := os.ReadFile(filepath.Join("testdata", "new.json"))
	require.NoError(t, err)
	return [2][]byte{old, updated}
}

func TestDiff(t *testing.T) {
	var buf bytes.Buffer

	summary, err := Diff(context.Background(), readDocs(t), Options{}, &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Crazed Cat"}, summary.Added)
	assert.Equal(t, []string{"Cat"}, summary.Removed)
	assert.Equal(t, []string{"Chill Cat", "Eraser Cat"}, summary.Modified)
	assert.True(t, summary.Changed())

	out := buf.String()
	assert.Contains(t, out, "Crazed Cat")
	assert.Contains(t, out, "Knockback")
	assert.Contains(t, out, "1 added, 1 removed, 2 changed")
	assert.NotContains(t, out, "\x1b[")
}

func TestDiff_Filter(t *testing.T) {
	var buf bytes.Buffer

	opts := Options{Filter: ParseFilter("cost, effect")}
	summary, err := Diff(context.Background(), readDocs(t), opts, &buf)
	require.NoError(t, err)

	assert.Empty(t, summary.Modified)
	assert.Len(t, summary.Added, 1)
	assert.Len(t, summary.Removed, 1)
}

func TestDiff_Identical(t *testing.T) {
	var buf bytes.Buffer
	docs := readDocs(t)

	summary, err := Diff(context.Background(), [2][]byte{docs[0], docs[0]}, Options{}, &buf)
	require.NoError(t, err)
	assert.False(t, summary.Changed())
	assert.Equal(t, "The datasets are identical.\n", buf.String())
}

func TestDiff_Color(t *testing.T) {
	var buf bytes.Buffer

	_, err := Diff(context.Background(), readDocs(t), Options{Color: true}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestDiff_Malformed(t *testing.T) {
	docs := readDocs(t)

	_, err := Diff(context.Background(), [2][]byte{docs[0], []byte(`{"units": []}`)}, Options{}, nil)
	assert.ErrorIs(t, err, catalog.ErrMalformedDataset)
	assert.Contains(t, err.Error(), "new dataset")
}

func TestKeyed_DuplicateNames(t *testing.T) {
	doc := []byte(`{"cats": [
		{"ability": [], "alias": [], "cost": 1, "description": "", "effect": [], "form": "Normal",
		 "name": "Cat", "rarity_index": 1, "rarity_pct": 1, "rarity_total": 1, "rarity": "Normal", "target": []},
		{"ability": [], "alias": [], "cost": 2, "description": "", "effect": [], "form": "Evolved",
		 "name": "Cat", "rarity_index": 1, "rarity_pct": 1, "rarity_total": 1, "rarity": "Normal", "target": []}
	]}`)

	got, err := Keyed(doc, "cats", []string{"description"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, got, "Cat")
	assert.Contains(t, got, "Cat #2")

	second := got["Cat #2"].(map[string]interface{})
	assert.Equal(t, 2.0, second["cost"])
	assert.NotContains(t, second, "description")
}

func TestParseFilter(t *testing.T) {
	assert.Nil(t, ParseFilter(""))
	assert.Equal(t, []string{"cost", "rarity_pct"}, ParseFilter(" cost,,rarity_pct "))
}

func TestDiff_KeyPerDocument(t *testing.T) {
	old, err := os.ReadFile(filepath.Join("testdata", "old_v1.json"))
	require.NoError(t, err)
	updated, err := os.ReadFile(filepath.Join("testdata", "new_v2.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	summary, err := Diff(context.Background(), [2][]byte{old, updated}, Options{Keys: [2]string{"v1", "v2"}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "1 added, 1 removed, 2 changed", summary.String())

	// One key for both sides fails on the document that lacks it.
	_, err = Diff(context.Background(), [2][]byte{old, updated}, Options{Keys: [2]string{"v2", "v2"}}, nil)
	assert.ErrorIs(t, err, catalog.ErrMalformedDataset)
	assert.Contains(t, err.Error(), "old dataset")
}
