// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hook

import (
	"path/filepath"
	"strings"
)

const (
	// PrefixEnv is set by Meson for install scripts.
	PrefixEnv = "MESON_INSTALL_PREFIX"

	// DefaultPrefix is used when PrefixEnv is unset or empty.
	DefaultPrefix = "/usr/local"

	CompletedMessage = "Post-install script completed."
)

// Step names, in execution order.
const (
	StepSchemas = "schemas"
	StepIcons   = "icons"
	StepDesktop = "desktop"
)

// Tools names the external commands. Only the command names can be
// overridden; their arguments are fixed.
type Tools struct {
	SchemaCompiler         string
	IconCacheUpdater       string
	DesktopDatabaseUpdater string
}

// DefaultTools returns the stock GLib/GTK 4/desktop-file-utils commands.
func DefaultTools() Tools {
	return Tools{
		SchemaCompiler:         "glib-compile-schemas",
		IconCacheUpdater:       "gtk4-update-icon-cache",
		DesktopDatabaseUpdater: "update-desktop-database",
	}
}

// WithDefaults fills any empty command name from DefaultTools.
func (t Tools) WithDefaults() Tools {
	d := DefaultTools()
	if strings.TrimSpace(t.SchemaCompiler) == "" {
		t.SchemaCompiler = d.SchemaCompiler
	}
	if strings.TrimSpace(t.IconCacheUpdater) == "" {
		t.IconCacheUpdater = d.IconCacheUpdater
	}
	if strings.TrimSpace(t.DesktopDatabaseUpdater) == "" {
		t.DesktopDatabaseUpdater = d.DesktopDatabaseUpdater
	}
	return t
}

// Step is one conditional maintenance command.
type Step struct {
	Name    string
	Message string
	// Dir holds the path segments below the prefix.
	Dir     []string
	Command string
	// Args precede the target directory on the command line.
	Args []string
	// Artifact is the file the command writes inside the target directory.
	Artifact string
}

// Steps returns the three steps in execution order.
func Steps(tools Tools) []Step {
	tools = tools.WithDefaults()
	return []Step{
		{
			Name:     StepSchemas,
			Message:  "Compiling GSettings schemas...",
			Dir:      []string{"share", "glib-2.0", "schemas"},
			Command:  tools.SchemaCompiler,
			Artifact: "gschemas.compiled",
		},
		{
			Name:     StepIcons,
			Message:  "Updating icon cache...",
			Dir:      []string{"share", "icons", "hicolor"},
			Command:  tools.IconCacheUpdater,
			Args:     []string{"-q", "-t", "-f"},
			Artifact: "icon-theme.cache",
		},
		{
			Name:     StepDesktop,
			Message:  "Updating desktop database...",
			Dir:      []string{"share", "applications"},
			Command:  tools.DesktopDatabaseUpdater,
			Args:     []string{"-q"},
			Artifact: "mimeinfo.cache",
		},
	}
}

// Path returns the step's target directory under prefix.
func (s Step) Path(prefix string) string {
	return filepath.Join(append([]string{prefix}, s.Dir...)...)
}

// ArtifactPath returns the cache file the step maintains under prefix.
func (s Step) ArtifactPath(prefix string) string {
	return filepath.Join(s.Path(prefix), s.Artifact)
}

// CommandArgs returns the full argument list, target directory last.
func (s Step) CommandArgs(prefix string) []string {
	args := make([]string, 0, len(s.Args)+1)
	args = append(args, s.Args...)
	return append(args, s.Path(prefix))
}

// NormalizePrefix maps an empty or blank prefix to DefaultPrefix.
func NormalizePrefix(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return DefaultPrefix
	}
	return prefix
}
