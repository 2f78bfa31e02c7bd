// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package hook

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/postinstall/internal/config"
	"github.com/staranto/postinstall/internal/invoke"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.PathEnv, "/nonexistent/postinstall.yaml")
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

// makePrefix creates the named step directories under a fresh prefix.
func makePrefix(t *testing.T, steps ...string) string {
	t.Helper()
	prefix := t.TempDir()
	all := Steps(DefaultTools())
	for _, name := range steps {
		for _, s := range all {
			if s.Name == name {
				require.NoError(t, os.MkdirAll(s.Path(prefix), 0o755))
			}
		}
	}
	return prefix
}

func newTestRunner(rec *invoke.Recorder, out *bytes.Buffer) *Runner {
	return &Runner{Invoker: rec, Out: out, Steps: Steps(DefaultTools())}
}

func TestStep_Path(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{
			prefix: "/opt/app",
			want: []string{
				"/opt/app/share/glib-2.0/schemas",
				"/opt/app/share/icons/hicolor",
				"/opt/app/share/applications",
			},
		},
		{
			prefix: NormalizePrefix(""),
			want: []string{
				"/usr/local/share/glib-2.0/schemas",
				"/usr/local/share/icons/hicolor",
				"/usr/local/share/applications",
			},
		},
	}

	for _, tt := range tests {
		var got []string
		for _, s := range Steps(DefaultTools()) {
			got = append(got, s.Path(tt.prefix))
		}
		assert.Equal(t, tt.want, got, tt.prefix)
	}
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, DefaultPrefix, NormalizePrefix(""))
	assert.Equal(t, DefaultPrefix, NormalizePrefix("  "))
	assert.Equal(t, "/opt/app", NormalizePrefix("/opt/app"))
}

func TestTools_WithDefaults(t *testing.T) {
	got := Tools{IconCacheUpdater: "gtk-update-icon-cache"}.WithDefaults()
	assert.Equal(t, "glib-compile-schemas", got.SchemaCompiler)
	assert.Equal(t, "gtk-update-icon-cache", got.IconCacheUpdater)
	assert.Equal(t, "update-desktop-database", got.DesktopDatabaseUpdater)
}

func TestRun_InvocationsPerPresentDirectory(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name    string
		present []string
	}{
		{name: "none", present: nil},
		{name: "schemas only", present: []string{StepSchemas}},
		{name: "icons only", present: []string{StepIcons}},
		{name: "desktop only", present: []string{StepDesktop}},
		{name: "schemas and desktop", present: []string{StepSchemas, StepDesktop}},
		{name: "all", present: []string{StepSchemas, StepIcons, StepDesktop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := makePrefix(t, tt.present...)
			rec := &invoke.Recorder{}
			var out bytes.Buffer

			results := newTestRunner(rec, &out).Run(context.Background(), prefix)

			want := map[string]invoke.Call{
				StepSchemas: {Name: "glib-compile-schemas", Args: []string{
					filepath.Join(prefix, "share/glib-2.0/schemas")}},
				StepIcons: {Name: "gtk4-update-icon-cache", Args: []string{
					"-q", "-t", "-f", filepath.Join(prefix, "share/icons/hicolor")}},
				StepDesktop: {Name: "update-desktop-database", Args: []string{
					"-q", filepath.Join(prefix, "share/applications")}},
			}

			var expected []invoke.Call
			for _, step := range []string{StepSchemas, StepIcons, StepDesktop} {
				for _, p := range tt.present {
					if p == step {
						expected = append(expected, want[step])
					}
				}
			}
			assert.Equal(t, expected, rec.Calls())

			require.Len(t, results, 3)
			for _, res := range results {
				assert.Equal(t, res.Present, res.Invoked, "step %s", res.Name)
			}
		})
	}
}

func TestRun_StatusLines(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	newTestRunner(&invoke.Recorder{}, &out).Run(context.Background(), t.TempDir())

	assert.Equal(t, strings.Join([]string{
		"Compiling GSettings schemas...",
		"Updating icon cache...",
		"Updating desktop database...",
		"Post-install script completed.",
	}, "\n")+"\n", out.String())
}

func TestRun_Idempotent(t *testing.T) {
	isolateConfig(t)
	prefix := makePrefix(t, StepSchemas, StepIcons, StepDesktop)
	first, second := &invoke.Recorder{}, &invoke.Recorder{}

	newTestRunner(first, &bytes.Buffer{}).Run(context.Background(), prefix)
	newTestRunner(second, &bytes.Buffer{}).Run(context.Background(), prefix)

	assert.Len(t, first.Calls(), 3)
	assert.Equal(t, first.Calls(), second.Calls())
}

func TestRun_FileInsteadOfDirectoryIsSkipped(t *testing.T) {
	isolateConfig(t)
	prefix := t.TempDir()
	apps := filepath.Join(prefix, "share", "applications")
	require.NoError(t, os.MkdirAll(filepath.Dir(apps), 0o755))
	require.NoError(t, os.WriteFile(apps, []byte("x"), 0o644))
	rec := &invoke.Recorder{}

	results := newTestRunner(rec, &bytes.Buffer{}).Run(context.Background(), prefix)

	assert.Empty(t, rec.Calls())
	assert.Equal(t, SkipMissing, results[2].Skipped)
}

func TestRun_Staged(t *testing.T) {
	isolateConfig(t)
	prefix := makePrefix(t, StepSchemas, StepIcons, StepDesktop)
	rec := &invoke.Recorder{}
	var out bytes.Buffer
	r := newTestRunner(rec, &out)
	r.Staged = true

	results := r.Run(context.Background(), prefix)

	assert.Empty(t, rec.Calls())
	for _, res := range results {
		assert.True(t, res.Present)
		assert.False(t, res.Invoked)
		assert.Equal(t, SkipDestdir, res.Skipped)
	}
	assert.Contains(t, out.String(), CompletedMessage)
}

func TestRun_ToolOverride(t *testing.T) {
	isolateConfig(t)
	prefix := makePrefix(t, StepIcons)
	rec := &invoke.Recorder{}
	r := &Runner{
		Invoker: rec,
		Out:     &bytes.Buffer{},
		Steps:   Steps(Tools{IconCacheUpdater: "gtk-update-icon-cache"}),
	}

	r.Run(context.Background(), prefix)

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "gtk-update-icon-cache", calls[0].Name)
	assert.Equal(t, []string{"-q", "-t", "-f", filepath.Join(prefix, "share/icons/hicolor")}, calls[0].Args)
}

func TestRun_StatErrorTreatedAsAbsent(t *testing.T) {
	isolateConfig(t)
	rec := &invoke.Recorder{}
	r := newTestRunner(rec, &bytes.Buffer{})
	r.Stat = func(string) (os.FileInfo, error) { return nil, errors.New("permission denied") }

	results := r.Run(context.Background(), "/opt/app")

	assert.Empty(t, rec.Calls())
	assert.Equal(t, "/opt/app/share/glib-2.0/schemas", results[0].Path)
}

func TestPlan(t *testing.T) {
	prefix := makePrefix(t, StepIcons)
	rec := &invoke.Recorder{}
	var out bytes.Buffer

	results := newTestRunner(rec, &out).Plan(prefix)

	assert.Empty(t, rec.Calls())
	assert.Empty(t, out.String())
	require.Len(t, results, 3)
	assert.Equal(t, SkipMissing, results[0].Skipped)
	assert.Equal(t, "", results[1].Skipped)
	assert.Equal(t, []string{"gtk4-update-icon-cache", "-q", "-t", "-f",
		filepath.Join(prefix, "share/icons/hicolor")}, results[1].Command)

	rows := Rows(results)
	assert.Equal(t, "skip (missing)", rows[0]["action"])
	assert.Equal(t, "run", rows[1]["action"])
	assert.Equal(t, "update-desktop-database -q "+filepath.Join(prefix, "share/applications"), rows[2]["command"])
}
