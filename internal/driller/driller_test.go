// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package driller

import (
	"embed"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// drillerTestCase represents a single test case for TestDriller.
type drillerTestCase struct {
	Name        string                 `yaml:"name"`
	JSON        map[string]interface{} `yaml:"json"`
	Path        string                 `yaml:"path"`
	ExpectedStr string                 `yaml:"expectedStr"`
	IsNil       bool                   `yaml:"isNil"`
	IsArray     bool                   `yaml:"isArray"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestDriller(t *testing.T) {
	var tests []drillerTestCase
	require.NoError(t, loadTestData("driller_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			jsonBytes, err := json.Marshal(tt.JSON)
			require.NoError(t, err)
			result := Driller(string(jsonBytes), tt.Path)

			if tt.IsNil {
				assert.False(t, result.Exists(), "got %v", result.Value())
				return
			}

			require.True(t, result.Exists(), "expected a value at %s", tt.Path)
			if tt.IsArray {
				assert.True(t, result.IsArray(), "got %v", result.Value())
				return
			}
			assert.Equal(t, tt.ExpectedStr, result.String())
		})
	}
}

func TestDriller_Record(t *testing.T) {
	record := `{
		"name": "Sanzo Cat",
		"cost": 1800,
		"ability": ["Survive", "Area Attack"],
		"effect": ["Strong"],
		"target": ["Angel"],
		"talents": {"Survives": 10, "Target Angel": 1}
	}`

	assert.Equal(t, "Sanzo Cat", Driller(record, "name").String())
	assert.Equal(t, int64(1800), Driller(record, "cost").Int())
	assert.Equal(t, "Area Attack", Driller(record, "ability[1]").String())
	assert.Equal(t, "Strong", Driller(record, "effect").String())
	assert.Equal(t, int64(2), Driller(record, "ability.#").Int())
	assert.Equal(t, int64(1), Driller(record, "talents.Target Angel").Int())
	assert.Len(t, Driller(record, "ability").Array(), 2)
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "cats", EscapeKey("cats"))
	assert.Equal(t, `data\.cats`, EscapeKey("data.cats"))
	assert.Equal(t, `c\*t\?`, EscapeKey("c*t?"))

	// Metacharacters inside a segment are taken literally.
	assert.Equal(t, int64(3), Driller(`{"talents": {"Lv?Up": 3, "LvXUp": 9}}`, "talents.Lv?Up").Int())
}
