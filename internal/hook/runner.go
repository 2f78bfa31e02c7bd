// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hook

import (
	"context"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/staranto/postinstall/internal/invoke"
	"github.com/staranto/postinstall/internal/output"
)

// Skip reasons reported in Result.Skipped.
const (
	SkipMissing = "missing"
	SkipDestdir = "destdir"
)

// Result describes what happened to one step.
type Result struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"path" yaml:"path"`
	Present bool     `json:"present" yaml:"present"`
	Invoked bool     `json:"invoked" yaml:"invoked"`
	Skipped string   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Command []string `json:"command" yaml:"command"`
}

// Runner executes the steps in order against an install prefix.
type Runner struct {
	Invoker invoke.Invoker
	Out     io.Writer
	Steps   []Step
	Color   bool

	// Staged suppresses every invocation, as when installing into DESTDIR.
	Staged bool

	// Stat defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)
}

// Run prints a status line per step, invokes the step's command when its
// directory exists and finishes with a completion line. It never fails;
// command outcomes are left to the Invoker.
func (r *Runner) Run(ctx context.Context, prefix string) []Result {
	prefix = NormalizePrefix(prefix)
	out := r.out()
	results := make([]Result, 0, len(r.steps()))

	for _, step := range r.steps() {
		output.StatusLine(out, step.Message, r.Color)

		res := r.inspect(step, prefix)
		ctxLog := log.WithField("step", step.Name).WithField("dir", res.Path)
		if res.Skipped != "" {
			ctxLog.WithField("reason", res.Skipped).Debug("skipping step")
			results = append(results, res)
			continue
		}

		if r.Invoker != nil {
			r.Invoker.Invoke(ctx, step.Command, step.CommandArgs(prefix)...)
		}
		res.Invoked = true
		ctxLog.Debug("step invoked")
		results = append(results, res)
	}

	output.DoneLine(out, CompletedMessage, r.Color)
	return results
}

// Plan reports what Run would do for prefix without printing or invoking.
func (r *Runner) Plan(prefix string) []Result {
	prefix = NormalizePrefix(prefix)
	results := make([]Result, 0, len(r.steps()))
	for _, step := range r.steps() {
		results = append(results, r.inspect(step, prefix))
	}
	return results
}

func (r *Runner) inspect(step Step, prefix string) Result {
	res := Result{
		Name:    step.Name,
		Path:    step.Path(prefix),
		Command: append([]string{step.Command}, step.CommandArgs(prefix)...),
	}
	res.Present = r.isDir(res.Path)

	switch {
	case !res.Present:
		res.Skipped = SkipMissing
	case r.Staged:
		res.Skipped = SkipDestdir
	}
	return res
}

func (r *Runner) isDir(path string) bool {
	stat := r.Stat
	if stat == nil {
		stat = os.Stat
	}
	fi, err := stat(path)
	return err == nil && fi.IsDir()
}

func (r *Runner) steps() []Step {
	if r.Steps == nil {
		r.Steps = Steps(DefaultTools())
	}
	return r.Steps
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Rows flattens results for the output package.
func Rows(results []Result) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(results))
	for _, res := range results {
		rows = append(rows, map[string]interface{}{
			"name":    res.Name,
			"path":    res.Path,
			"present": res.Present,
			"invoked": res.Invoked,
			"skipped": res.Skipped,
			"action":  action(res),
			"command": invoke.CommandLine(res.Command[0], res.Command[1:]...),
		})
	}
	return rows
}

func action(res Result) string {
	if res.Skipped != "" {
		return "skip (" + res.Skipped + ")"
	}
	return "run"
}
