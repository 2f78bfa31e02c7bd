// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  log.Level
	}{
		{name: "empty", value: "", want: log.ErrorLevel},
		{name: "debug upper", value: "DEBUG", want: log.DebugLevel},
		{name: "info lower", value: "info", want: log.InfoLevel},
		{name: "warn padded", value: " warn ", want: log.WarnLevel},
		{name: "unknown", value: "chatty", want: log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromEnv(tt.value))
		})
	}
}

func TestCustomHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	entry := log.NewEntry(logger).
		WithField("step", "icons").
		WithError(errors.New("boom"))
	entry.Timestamp = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	entry.Level = log.DebugLevel
	entry.Message = "invocation failed"

	assert.NoError(t, h.HandleLog(entry))
	assert.Equal(t, "2025-01-02 03:04:05 D invocation failed error=boom step=icons\n", buf.String())
}
