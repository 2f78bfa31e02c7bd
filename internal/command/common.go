// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/postinstall/internal/config"
	"github.com/staranto/postinstall/internal/hook"
	"github.com/staranto/postinstall/internal/invoke"
	"github.com/staranto/postinstall/internal/meta"
	"github.com/staranto/postinstall/internal/output"
)

// GetMeta returns the meta.Meta stored in the command's Metadata, searching
// up to the root. If missing or of an unexpected type, it returns the zero
// value.
func GetMeta(cmd *cli.Command) meta.Meta {
	for _, c := range lineage(cmd) {
		if c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

func lineage(cmd *cli.Command) []*cli.Command {
	if cmd == nil {
		return nil
	}
	return cmd.Lineage()
}

// ResolvePrefix returns the effective install prefix for cmd.
func ResolvePrefix(cmd *cli.Command) string {
	return hook.NormalizePrefix(cmd.String("prefix"))
}

// ToolsFromFlags collects the command name overrides.
func ToolsFromFlags(cmd *cli.Command) hook.Tools {
	return hook.Tools{
		SchemaCompiler:         cmd.String("schema-compiler"),
		IconCacheUpdater:       cmd.String("icon-cache-updater"),
		DesktopDatabaseUpdater: cmd.String("desktop-database-updater"),
	}.WithDefaults()
}

// NewRunner builds a hook.Runner from the command's flags and meta. The
// invoker is, in order of precedence, a dry-run printer, the invoker carried
// by meta, or a real exec invoker.
func NewRunner(cmd *cli.Command, m meta.Meta) *hook.Runner {
	var inv invoke.Invoker
	switch {
	case cmd.Bool("dry-run"):
		inv = invoke.DryRun{Out: m.Out()}
	case m.Invoker != nil:
		inv = m.Invoker
	default:
		inv = invoke.Exec{Stdout: m.Out(), Stderr: m.Err()}
	}

	staged := false
	if SkipDestdir(cmd, m) {
		if destdir := strings.TrimSpace(m.Getenv(DestdirEnv)); destdir != "" {
			log.WithField("destdir", destdir).Info("staged install, skipping cache refresh")
			staged = true
		}
	}

	return &hook.Runner{
		Invoker: inv,
		Out:     m.Out(),
		Steps:   hook.Steps(ToolsFromFlags(cmd)),
		Color:   Color(cmd, m),
		Staged:  staged,
	}
}

// SkipDestdir reports whether a staged install skips every step. The flag
// wins, then POSTINSTALL_SKIP_DESTDIR, then skip_destdir in the config file.
// A value that does not parse as a bool counts as false.
func SkipDestdir(cmd *cli.Command, m meta.Meta) bool {
	if cmd.IsSet("skip-destdir") {
		return cmd.Bool("skip-destdir")
	}

	if v := strings.TrimSpace(m.Getenv(SkipDestdirEnv)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.WithError(err).WithField("env", SkipDestdirEnv).Debug("ignoring value")
			return false
		}
		return b
	}

	return configBool("skip_destdir", false)
}

// Color reports whether text output is colored: the flag, then color in the
// config file, then whether stdout is a terminal.
func Color(cmd *cli.Command, m meta.Meta) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	return configBool("color", m.IsTerminal)
}

func configBool(key string, defaultValue bool) bool {
	b, err := config.GetBool(key, defaultValue)
	if err != nil {
		log.WithError(err).WithField("key", key).Debug("ignoring config value")
		return defaultValue
	}
	return b
}

// loadNamespace reloads the config so that keys under the subcommand's name
// take precedence over global ones.
func loadNamespace(cmd *cli.Command) {
	if _, err := config.Load(cmd.Name); err != nil {
		log.WithError(err).WithField("namespace", cmd.Name).Debug("no config loaded")
	}
}

// OutputOptions collects the rendering flags.
func OutputOptions(cmd *cli.Command, m meta.Meta) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Color:  Color(cmd, m),
		Titles: cmd.Bool("titles"),
		Sort:   cmd.String("sort"),
		Filter: cmd.String("filter"),
	}
}
