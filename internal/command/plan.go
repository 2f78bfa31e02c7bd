// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/postinstall/internal/hook"
	"github.com/staranto/postinstall/internal/meta"
	"github.com/staranto/postinstall/internal/output"
)

var planColumns = []string{"name", "action", "present", "path", "command"}

// PlanCommandAction reports what the hook would do for the prefix without
// invoking anything.
func PlanCommandAction(ctx context.Context, cmd *cli.Command) error {
	loadNamespace(cmd)
	m := GetMeta(cmd)
	results := NewRunner(cmd, m).Plan(ResolvePrefix(cmd))
	return output.Spit(m.Out(), hook.Rows(results), planColumns, OutputOptions(cmd, m))
}

// PlanCommandBuilder constructs the cli.Command definition for "plan".
func PlanCommandBuilder(cmd *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "show which maintenance commands would run",
		UsageText: "postinstall plan [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewOutputFlags("plan", m.Config.Source),
		Action: PlanCommandAction,
	}
}
