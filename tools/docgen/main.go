// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docgen renders docs/postinstall.md into the man page at
// docs/man/share/man1/postinstall.1 and the tldr page at
// docs/tldr/postinstall.md.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

const (
	page     = "postinstall"
	homepage = "https://github.com/staranto/postinstall"
)

func main() {
	root := flag.String("root", ".", "repo root")
	onlyIfChanged := flag.Bool("only-if-changed", true, "only write files whose content changed")
	flag.Parse()

	written, err := generate(*root, *onlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Println("wrote", path)
	}
}

// generate renders both pages and returns the paths it actually wrote.
func generate(root string, onlyIfChanged bool) ([]string, error) {
	src := filepath.Join(root, "docs", page+".md")
	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}

	outputs := []struct {
		path string
		body []byte
	}{
		{filepath.Join(root, "docs", "man", "share", "man1", page+".1"), md2man.Render(raw)},
		{filepath.Join(root, "docs", "tldr", page+".md"), []byte(parse(string(raw)).tldr())},
	}

	var written []string
	for _, o := range outputs {
		changed, err := write(o.path, o.body, onlyIfChanged)
		if err != nil {
			return written, fmt.Errorf("writing %s: %w", o.path, err)
		}
		if changed {
			written = append(written, o.path)
		}
	}
	return written, nil
}

func write(path string, body []byte, onlyIfChanged bool) (bool, error) {
	if onlyIfChanged {
		if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, body) {
			return false, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, body, 0o644)
}

// doc is the man page markdown split into its H2 sections, keyed by the
// lower-cased heading.
type doc struct {
	Name     string
	Sections map[string][]string
}

func parse(md string) doc {
	d := doc{Sections: map[string][]string{}}
	var section string
	inFence := false

	for _, ln := range strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			inFence = !inFence
		}
		switch {
		case !inFence && strings.HasPrefix(ln, "## "):
			section = strings.ToLower(strings.TrimSpace(ln[3:]))
		case !inFence && strings.HasPrefix(ln, "# ") && d.Name == "":
			if f := strings.Fields(ln[2:]); len(f) > 0 {
				d.Name = f[0]
			}
		case section != "":
			d.Sections[section] = append(d.Sections[section], ln)
		}
	}

	if d.Name == "" {
		d.Name = page
	}
	return d
}

// summary is the first paragraph of "Short description", else the text after
// the dash in NAME.
func (d doc) summary() string {
	var words []string
	for _, ln := range d.Sections["short description"] {
		if strings.TrimSpace(ln) == "" {
			if len(words) > 0 {
				break
			}
			continue
		}
		words = append(words, strings.Fields(ln)...)
	}
	if len(words) > 0 {
		return strings.Join(words, " ")
	}

	for _, ln := range d.Sections["name"] {
		if _, after, ok := strings.Cut(ln, " - "); ok {
			return strings.TrimSpace(after)
		}
	}
	return d.Name
}

type example struct {
	Desc string
	Cmd  string
}

// examples reads the fenced block under "Quick examples", where a "# ..."
// comment describes the command on the following line.
func (d doc) examples() []example {
	var (
		exs     []example
		desc    string
		inFence bool
	)
	for _, ln := range d.Sections["quick examples"] {
		s := strings.TrimSpace(ln)
		switch {
		case strings.HasPrefix(s, "```"):
			inFence = !inFence
		case !inFence || s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(s, "#"))
		default:
			if desc == "" {
				desc = "Run " + d.Name
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func (d doc) tldr() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "> %s\n", d.summary())
	fmt.Fprintf(&b, "> More information: %s.\n", homepage)

	exs := d.examples()
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help", Cmd: d.Name + " --help"}}
	}
	for _, ex := range exs {
		fmt.Fprintf(&b, "\n- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}
