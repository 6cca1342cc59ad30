// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/catfood/bcq/internal/catalog"
	"github.com/catfood/bcq/internal/config"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testRunCase represents a single test case for TestRun.
type testRunCase struct {
	Name         string   `yaml:"name"`
	Args         []string `yaml:"args"`
	WantNames    []string `yaml:"wantNames"`
	WantLines    []string `yaml:"wantLines"`
	WantContains []string `yaml:"wantContains"`
	WantErr      bool     `yaml:"wantErr"`
	WantErrIs    string   `yaml:"wantErrIs"`
}

var sentinels = map[string]error{
	"invalid_expression": catalog.ErrInvalidExpression,
	"malformed_dataset":  catalog.ErrMalformedDataset,
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// useTestConfig points BCQ_CFG_FILE at testdata/bcq.yaml.
func useTestConfig(t *testing.T) {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "bcq.yaml"))
	require.NoError(t, err)
	t.Setenv("BCQ_CFG_FILE", path)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

// run builds the app for args and runs it, returning what it wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	argv := append([]string{"bcq"}, args...)

	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard

	err = app.Run(context.Background(), argv)
	return out.String(), err
}

func jsonNames(t *testing.T, out string) []string {
	t.Helper()
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows), out)

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row["name"].(string))
	}
	return names
}

func TestRun(t *testing.T) {
	var cases []testRunCase
	require.NoError(t, loadTestData("command_test_run.yaml", &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			useTestConfig(t)

			out, err := run(t, tc.Args...)

			if tc.WantErrIs != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, sentinels[tc.WantErrIs])
				return
			}
			if tc.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tc.WantNames != nil {
				assert.Equal(t, tc.WantNames, jsonNames(t, out))
			}
			if tc.WantLines != nil {
				assert.Equal(t, tc.WantLines, strings.Split(strings.TrimSuffix(out, "\n"), "\n"))
			}
			for _, want := range tc.WantContains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRun_StatsRarityOrder(t *testing.T) {
	useTestConfig(t)

	out, err := run(t, "stats", "--category", "rarity", "-o", "json")
	require.NoError(t, err)

	var rows []struct {
		Category string  `json:"category"`
		Value    string  `json:"value"`
		Count    float64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	var got []string
	var total float64
	for _, row := range rows {
		assert.Equal(t, "rarity", row.Category)
		got = append(got, row.Value)
		total += row.Count
	}
	assert.Equal(t, []string{"Normal", "Special", "Rare", "Super", "Uber", "Legend"}, got)
	assert.Equal(t, float64(21), total)
}

func TestRun_StatsShare(t *testing.T) {
	useTestConfig(t)

	out, err := run(t, "stats", "--category", "rarity", "-f", "rarity~^(uber|legend)$", "-o", "json", "-a", "share::p,count::c")
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Uber", rows[0]["value"])
	assert.Equal(t, "7", rows[0]["count"])
	assert.Equal(t, "87.5%", rows[0]["share"])
	assert.Equal(t, "12.5%", rows[1]["share"])
}

func TestRun_StatsFooter(t *testing.T) {
	useTestConfig(t)

	out, err := run(t, "stats", "--category", "target", "-t")
	require.NoError(t, err)
	assert.Contains(t, out, "21 units, 9 values")
	assert.Contains(t, out, "traitless")
}

func TestRun_ShowWrapsDescription(t *testing.T) {
	useTestConfig(t)

	out, err := run(t, "show", "-d", "../catalog/testdata/bc.json", "^Chill Cat$")
	require.NoError(t, err)

	assert.Contains(t, out, "Rare RR 17% (10/60)")
	assert.Contains(t, out, "1050/1020")
	assert.Contains(t, out, "Wheel Cat, Solar Cat")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Greater(t, len(lines), 8)
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 40, line)
	}
}

func TestRun_ShowColor(t *testing.T) {
	useTestConfig(t)

	out, err := run(t, "show", "-d", "../catalog/testdata/bc.json", "-c", "^Mizli$")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Knockback")
}

func TestRun_DataFromConfigNamespace(t *testing.T) {
	useTestConfig(t)

	// stats.data is set in the test config; ls has nothing and falls back to
	// bc.json in the working directory, which does not exist.
	_, err := run(t, "stats")
	assert.NoError(t, err)

	_, err = run(t, "ls")
	assert.Error(t, err)
}

func TestStatsRows_UnknownCategory(t *testing.T) {
	_, err := StatsRows(nil, "bogus")
	assert.Error(t, err)
}

func TestStatsRows_Empty(t *testing.T) {
	rows, err := StatsRows(nil, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFieldFlagName(t *testing.T) {
	assert.Equal(t, "ability-effect", fieldFlagName(catalog.FieldAbilityEffect))
	assert.Equal(t, "name", fieldFlagName(catalog.FieldName))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("xml"))
	assert.NoError(t, CategoryValidator("target"))
	assert.Error(t, CategoryValidator("form"))
	assert.NoError(t, FlagValidators("json", OutputValidator))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Red, Black", joinNonEmpty([]string{"Red", "", "Black"}))
	assert.Equal(t, "", joinNonEmpty([]string{""}))
	assert.Equal(t, "", joinNonEmpty(nil))
}
