// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerTo_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func()
		wantLevel string
		wantEmpty bool
	}{
		{
			name:      "default level drops debug",
			level:     "",
			emit:      func() { Debugf("hidden %d", 1) },
			wantEmpty: true,
		},
		{
			name:      "default level keeps errors",
			level:     "",
			emit:      func() { Errorf("bad cost %q", "abc") },
			wantLevel: " E ",
		},
		{
			name:      "debug level",
			level:     "DEBUG",
			emit:      func() { Debugf("loaded %d cats", 3) },
			wantLevel: " D ",
		},
		{
			name:      "trace prefix is rewritten",
			level:     "trace",
			emit:      func() { Tracef("scan %s", "name") },
			wantLevel: " T ",
		},
		{
			name:      "trace disabled at debug",
			level:     "debug",
			emit:      func() { Tracef("scan %s", "name") },
			wantEmpty: true,
		},
		{
			name:      "warn level",
			level:     "warn",
			emit:      func() { Warnf("rarity_pct drift on %s", "Cat") },
			wantLevel: " W ",
		},
		{
			name:      "unknown level falls back to error",
			level:     "chatty",
			emit:      func() { Infof("dropped") },
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitLoggerTo(&buf, tt.level)
			tt.emit()

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.True(t, strings.HasSuffix(buf.String(), "\n"))
		})
	}
}

func TestCustomHandler_Fields(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")

	WithError(errors.New("boom")).Warn("cannot remove")

	assert.Contains(t, buf.String(), "W cannot remove error=boom")
}
