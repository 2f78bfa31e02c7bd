// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/staranto/postinstall/internal/command"
	mylog "github.com/staranto/postinstall/internal/log"
	"github.com/staranto/postinstall/internal/meta"
	"github.com/staranto/postinstall/internal/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	ctx, stop := notifyContext()
	defer stop()

	m := meta.Meta{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LookupEnv:  os.LookupEnv,
		IsTerminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
	return run(ctx, os.Args, m)
}

// run executes the app. The hook itself never fails, and env or config values
// it cannot parse fall back to defaults. A non-zero code only comes from a
// malformed command line.
func run(ctx context.Context, args []string, m meta.Meta) int {
	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(out(m.Stdout), version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, m)
	if err != nil {
		fmt.Fprintln(out(m.Stderr), err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(out(m.Stderr), err)
		return 1
	}

	return 0
}

// notifyContext is cancelled on SIGINT or SIGTERM, which kills a running
// maintenance command.
func notifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
