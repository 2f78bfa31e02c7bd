// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{name: "empty", spec: "", want: nil},
		{name: "equals", spec: "name=icons", want: []Filter{{Key: "name", Operand: "=", Target: "icons"}}},
		{name: "negated", spec: "present!=true", want: []Filter{{Key: "present", Negate: true, Operand: "=", Target: "true"}}},
		{
			name: "multiple",
			spec: "action^skip,path@hicolor",
			want: []Filter{
				{Key: "action", Operand: "^", Target: "skip"},
				{Key: "path", Operand: "@", Target: "hicolor"},
			},
		},
		{name: "malformed skipped", spec: "nooperand", want: nil},
		{name: "missing key skipped", spec: "=x", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestBuildFilters_CustomDelimiter(t *testing.T) {
	t.Setenv(FilterDelimEnv, ";")
	got := BuildFilters("command@-q;name!=desktop")
	assert.Len(t, got, 2)
	assert.Equal(t, "desktop", got[1].Target)
}

func TestFilterDataset(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "no filter", spec: "", want: []string{"schemas", "icons", "desktop"}},
		{name: "equals", spec: "name=icons", want: []string{"icons"}},
		{name: "bool", spec: "present=true", want: []string{"schemas", "desktop"}},
		{name: "negated bool", spec: "present!=true", want: []string{"icons"}},
		{name: "case insensitive", spec: "name~ICONS", want: []string{"icons"}},
		{name: "prefix", spec: "action^skip", want: []string{"icons"}},
		{name: "contains", spec: "name@s", want: []string{"schemas", "icons", "desktop"}},
		{name: "regex", spec: "name/^(schemas|desktop)$", want: []string{"schemas", "desktop"}},
		{name: "all must match", spec: "present=true,name^d", want: []string{"desktop"}},
		{name: "unknown key", spec: "nope=1", want: []string{}},
		{name: "bad regex", spec: "name/(", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(sampleDataset(), tt.spec)
			names := make([]string, 0, len(got))
			for _, row := range got {
				names = append(names, row["name"].(string))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
