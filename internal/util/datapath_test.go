// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "bc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cats": []}`), 0o600))
	return path
}

func TestParseDataPath(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) (spec string, wantPath string)
		wantKey string
		wantErr bool
		errIs   error
	}{
		{
			name: "absolute path",
			setup: func(t *testing.T) (string, string) {
				p := writeDataset(t, t.TempDir())
				return p, p
			},
		},
		{
			name: "absolute path with key",
			setup: func(t *testing.T) (string, string) {
				p := writeDataset(t, t.TempDir())
				return p + "::units", p
			},
			wantKey: "units",
		},
		{
			name: "relative path",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				p := writeDataset(t, dir)
				t.Chdir(dir)
				return "bc.json", p
			},
		},
		{
			name: "home path",
			setup: func(t *testing.T) (string, string) {
				home := t.TempDir()
				t.Setenv("HOME", home)
				p := writeDataset(t, home)
				return "~/bc.json::cats", p
			},
			wantKey: "cats",
		},
		{
			name: "empty",
			setup: func(t *testing.T) (string, string) {
				return " ", ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
		{
			name: "missing",
			setup: func(t *testing.T) (string, string) {
				return filepath.Join(t.TempDir(), "nope.json"), ""
			},
			wantErr: true,
			errIs:   os.ErrNotExist,
		},
		{
			name: "directory",
			setup: func(t *testing.T) (string, string) {
				return t.TempDir(), ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, wantPath := tt.setup(t)

			path, key, err := ParseDataPath(spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				return
			}

			require.NoError(t, err)
			want, err := filepath.EvalSymlinks(wantPath)
			require.NoError(t, err)
			got, err := filepath.EvalSymlinks(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
