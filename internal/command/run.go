// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// RunCommandAction is the root action. It runs the three maintenance steps
// and always returns nil.
func RunCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	prefix := ResolvePrefix(cmd)

	log.WithField("prefix", prefix).Debug("running post-install hook")

	results := NewRunner(cmd, m).Run(ctx, prefix)
	for _, res := range results {
		log.WithFields(log.Fields{
			"step":    res.Name,
			"invoked": res.Invoked,
			"skipped": res.Skipped,
		}).Debug("step finished")
	}
	return nil
}
