// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/apex/log"
)

// Invoker runs a single external command. Implementations swallow every
// failure, including a command missing from PATH.
type Invoker interface {
	Invoke(ctx context.Context, name string, args ...string)
}

// Func adapts a plain function to the Invoker interface.
type Func func(ctx context.Context, name string, args ...string)

// Invoke calls f.
func (f Func) Invoke(ctx context.Context, name string, args ...string) {
	f(ctx, name, args...)
}

// Exec runs commands with os/exec and blocks until each one exits. The child
// inherits Stdout and Stderr, which default to the process streams.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Invoke runs name with args. The outcome is logged at debug level and
// otherwise discarded.
func (e Exec) Invoke(ctx context.Context, name string, args ...string) {
	ctxLog := log.WithField("command", name).WithField("args", strings.Join(args, " "))

	c := exec.CommandContext(ctx, name, args...)
	c.Stdout = e.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = e.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	ctxLog.Debug("executing command")
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ctxLog.WithField("exit", exitErr.ExitCode()).Debug("command failed")
			return
		}
		ctxLog.WithError(err).Debug("command could not be started")
		return
	}
	ctxLog.Debug("command completed")
}

// DryRun prints the command line it would run instead of running it.
type DryRun struct {
	Out io.Writer
}

// Invoke writes "would run: name args..." to Out.
func (d DryRun) Invoke(_ context.Context, name string, args ...string) {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, "would run: %s\n", CommandLine(name, args...))
}

// Call is a single recorded invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return CommandLine(c.Name, c.Args...)
}

// Recorder records invocations without running anything.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Invoke records the call. The args slice is copied.
func (r *Recorder) Invoke(_ context.Context, name string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: append([]string(nil), args...)})
}

// Calls returns a copy of the recorded calls in invocation order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CommandLine joins a command and its args with single spaces.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
