// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/postinstall/internal/hook"
	"github.com/staranto/postinstall/internal/meta"
	"github.com/staranto/postinstall/internal/output"
)

// Environment variables consulted by flags.
const (
	SkipDestdirEnv      = "POSTINSTALL_SKIP_DESTDIR"
	SchemaCompilerEnv   = "POSTINSTALL_SCHEMA_COMPILER"
	IconCacheUpdaterEnv = "POSTINSTALL_ICON_CACHE_UPDATER"
	DesktopDatabaseEnv  = "POSTINSTALL_DESKTOP_DATABASE_UPDATER"
	DestdirEnv          = "DESTDIR"
)

// NewGlobalFlags returns the flags shared by the hook and its subcommands.
func NewGlobalFlags(m meta.Meta) (flags []cli.Flag) {
	src := m.Config.Source

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "prefix",
			Aliases: []string{"p"},
			Usage:   "install prefix the cache directories live under",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar(hook.PrefixEnv),
			),
			Value: hook.DefaultPrefix,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "print the commands instead of running them",
			HideDefault: true,
		},
		// Env and config for these two are read leniently by SkipDestdir and Color.
		&cli.BoolFlag{
			Name:        "skip-destdir",
			Usage:       "skip every step when DESTDIR is set (staged install)",
			HideDefault: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   m.IsTerminal,
		},
		NewToolFlag("schema-compiler", "schemas", SchemaCompilerEnv, src,
			"command that compiles GSettings schemas"),
		NewToolFlag("icon-cache-updater", "icons", IconCacheUpdaterEnv, src,
			"command that rebuilds the hicolor icon cache"),
		NewToolFlag("desktop-database-updater", "desktop", DesktopDatabaseEnv, src,
			"command that rebuilds the desktop entry database"),
	}

	return
}

// NewToolFlag constructs a flag overriding one external command name. The
// value comes from the flag, then env, then tools.<key> in the config file.
func NewToolFlag(name, key, env, path, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  name,
		Usage: usage,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(env),
			yaml.YAML("tools."+key, altsrc.StringSourcer(path)),
		),
	}
}

// NewOutputFlags returns the rendering flags for a listing subcommand ns.
func NewOutputFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: output.FormatText,
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(path)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: true,
		},
	}
}
