// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hook

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Artifact is the on-disk cache produced by a step.
type Artifact struct {
	Step    string    `json:"step" yaml:"step"`
	Path    string    `json:"path" yaml:"path"`
	Present bool      `json:"present" yaml:"present"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// Artifacts stats each step's cache file under prefix. A nil stat means
// os.Stat.
func Artifacts(prefix string, steps []Step, stat func(string) (os.FileInfo, error)) []Artifact {
	if stat == nil {
		stat = os.Stat
	}
	prefix = NormalizePrefix(prefix)

	out := make([]Artifact, 0, len(steps))
	for _, s := range steps {
		a := Artifact{Step: s.Name, Path: s.ArtifactPath(prefix)}
		if fi, err := stat(a.Path); err == nil && !fi.IsDir() {
			a.Present = true
			a.Size = fi.Size()
			a.ModTime = fi.ModTime()
		}
		out = append(out, a)
	}
	return out
}

// ArtifactRows flattens artifacts for the output package with human sizes
// and ages relative to now.
func ArtifactRows(artifacts []Artifact, now time.Time) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(artifacts))
	for _, a := range artifacts {
		row := map[string]interface{}{
			"step":     a.Step,
			"path":     a.Path,
			"present":  a.Present,
			"size":     "-",
			"modified": "-",
		}
		if a.Present {
			row["size"] = humanize.IBytes(uint64(a.Size))
			row["modified"] = humanize.RelTime(a.ModTime, now, "ago", "from now")
		}
		rows = append(rows, row)
	}
	return rows
}
