// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/staranto/postinstall/internal/config"
)

// StatusLine writes a progress line. With color, the line uses the configured
// colors.status value.
func StatusLine(w io.Writer, msg string, color bool) {
	if color {
		c, _ := config.GetString("colors.status", "#00c8f0")
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
}

// DoneLine writes the completion line, bold when colored.
func DoneLine(w io.Writer, msg string, color bool) {
	if color {
		c, _ := config.GetString("colors.done", "#5fd700")
		msg = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c)).Render(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
}
