// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"io"
	"os"

	"github.com/staranto/postinstall/internal/config"
	"github.com/staranto/postinstall/internal/invoke"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Config config.Type

	// Invoker runs the maintenance commands. Nil means invoke.Exec.
	Invoker invoke.Invoker

	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// IsTerminal reports whether Stdout is a terminal; it seeds --color.
	IsTerminal bool
}

// Getenv returns the value of key, or "" when unset.
func (m Meta) Getenv(key string) string {
	lookup := m.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(key)
	return v
}

// Out returns Stdout, defaulting to os.Stdout.
func (m Meta) Out() io.Writer {
	if m.Stdout == nil {
		return os.Stdout
	}
	return m.Stdout
}

// Err returns Stderr, defaulting to os.Stderr.
func (m Meta) Err() io.Writer {
	if m.Stderr == nil {
		return os.Stderr
	}
	return m.Stderr
}
