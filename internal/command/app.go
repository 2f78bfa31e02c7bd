// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/postinstall/internal/config"
	"github.com/staranto/postinstall/internal/meta"
)

// InitApp builds the postinstall command tree. With no subcommand the app
// runs the hook, which is how Meson invokes it.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		// Running without a config file is the normal case.
		log.WithError(err).Debug("no config loaded")
	}
	m.Config = cfg

	app := &cli.Command{
		Name:      "postinstall",
		Usage:     "refresh schema, icon and desktop caches after install",
		UsageText: "postinstall [options] [command]",
		Writer:    m.Out(),
		ErrWriter: m.Err(),
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "postinstall version info",
				HideDefault: true,
			},
		}, NewGlobalFlags(m)...),
		Action: RunCommandAction,
	}

	app.Commands = append(app.Commands,
		PlanCommandBuilder(app, m),
		StatusCommandBuilder(app, m),
		CompletionCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
