// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/postinstall/internal/hook"
	"github.com/staranto/postinstall/internal/meta"
	"github.com/staranto/postinstall/internal/output"
)

var statusColumns = []string{"step", "present", "size", "modified", "path"}

// now is swapped in tests.
var now = time.Now

// StatusCommandAction lists the cache file each step maintains with its size
// and age.
func StatusCommandAction(ctx context.Context, cmd *cli.Command) error {
	loadNamespace(cmd)
	m := GetMeta(cmd)
	artifacts := hook.Artifacts(ResolvePrefix(cmd), hook.Steps(ToolsFromFlags(cmd)), nil)
	return output.Spit(m.Out(), hook.ArtifactRows(artifacts, now()), statusColumns, OutputOptions(cmd, m))
}

// StatusCommandBuilder constructs the cli.Command definition for "status".
func StatusCommandBuilder(cmd *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "show the cache files maintained under the prefix",
		UsageText: "postinstall status [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewOutputFlags("status", m.Config.Source),
		Action: StatusCommandAction,
	}
}
