// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v3"

	"github.com/staranto/postinstall/internal/config"
)

// Supported --output values.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the valid --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Options control how a result set is rendered.
type Options struct {
	Format string
	Color  bool
	Titles bool
	Sort   string
	Filter string
}

// Spit filters and sorts the dataset, then renders the requested columns in
// the requested format.
func Spit(w io.Writer, dataset []map[string]interface{}, columns []string, opts Options) error {
	dataset = FilterDataset(dataset, opts.Filter)
	SortDataset(dataset, opts.Sort)

	projected := project(dataset, columns)

	switch opts.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(projected, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(projected)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatText, "":
		TableWriter(w, dataset, columns, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// project keeps only columns from each row. A nil columns list keeps all.
func project(dataset []map[string]interface{}, columns []string) []map[string]interface{} {
	if columns == nil {
		return dataset
	}
	out := make([]map[string]interface{}, 0, len(dataset))
	for _, row := range dataset {
		p := make(map[string]interface{}, len(columns))
		for _, c := range columns {
			p[c] = row[c]
		}
		out = append(out, p)
	}
	return out
}

// TableWriter renders the result set in a tabular form honoring color and
// titles options.
func TableWriter(w io.Writer, resultSet []map[string]interface{}, columns []string, opts Options) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, InterfaceToString(result[c], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	_, _ = fmt.Fprintln(w, t.String())
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// SortDataset sorts rows in place by a comma separated list of keys. A key
// prefixed with "-" sorts descending. Comparison is on the string form.
func SortDataset(dataset []map[string]interface{}, spec string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return
	}
	keys := strings.Split(spec, ",")

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			k = strings.TrimSpace(k)
			desc := strings.HasPrefix(k, "-")
			k = strings.TrimPrefix(k, "-")

			a := InterfaceToString(dataset[i][k])
			b := InterfaceToString(dataset[j][k])
			if a == b {
				continue
			}
			if desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided. Booleans always render.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if b, ok := value.(bool); ok {
		return strconv.FormatBool(b)
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return fmt.Sprintf("%.0f", value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
