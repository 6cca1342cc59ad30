// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseDataPath parses a --data value and returns the absolute dataset path
// and any optional top-level key override given as "path::key". A leading
// "~/" expands to the home directory. It returns an error if the file does
// not exist or is a directory.
func ParseDataPath(spec string) (string, string, error) {
	if strings.TrimSpace(spec) == "" {
		return "", "", os.ErrInvalid
	}

	var path, key string

	// First, split the path to see if there is a ::key override.
	parts := strings.SplitN(spec, "::", 2)
	path = parts[0]
	if len(parts) > 1 {
		key = parts[1]
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}
		path = filepath.Join(home, path[2:])
	}

	// Relative paths are taken from the working directory.
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		path = filepath.Join(cwd, path)
	}

	if fi, err := os.Stat(path); err != nil {
		return "", "", fmt.Errorf("dataset %s: %w", path, err)
	} else if fi.IsDir() {
		return "", "", fmt.Errorf("dataset %s is a directory: %w", path, os.ErrInvalid)
	}

	return path, key, nil
}
