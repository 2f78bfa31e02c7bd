// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "POSTINSTALL_LOG"

// InitLogger sets up Apex with a custom handler and a log level from the
// POSTINSTALL_LOG env variable. Logs go to stderr so they never mix with the
// status lines on stdout.
func InitLogger() {
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevel(LevelFromEnv(os.Getenv(LevelEnv)))
}

// LevelFromEnv parses a level name, falling back to ERROR when the value is
// empty or unknown.
func LevelFromEnv(value string) log.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return log.ErrorLevel
	}
	level, err := log.ParseLevel(strings.ToLower(value))
	if err != nil {
		return log.ErrorLevel
	}
	return level
}

// CustomHandler formats log messages and writes them to Writer.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp.Format("2006-01-02 15:04:05"), level, e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}

	_, err := fmt.Fprintln(w, b.String())
	return err
}
