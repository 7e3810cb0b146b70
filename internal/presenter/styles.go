// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent  = lipgloss.Color("#FF3C3C")
	colorSoft    = lipgloss.Color("#FF6666")
	colorSuccess = lipgloss.Color("#3CB371")
	colorWarning = lipgloss.Color("#FFB347")
	colorMuted   = lipgloss.Color("#8A8A8A")
)

type styles struct {
	banner   lipgloss.Style
	subtitle lipgloss.Style
	title    lipgloss.Style
	info     lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
	errorBox lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner:   r.NewStyle().Bold(true).Foreground(colorAccent),
		subtitle: r.NewStyle().Foreground(colorSoft),
		title:    r.NewStyle().Bold(true),
		info:     r.NewStyle(),
		success:  r.NewStyle().Foreground(colorSuccess),
		warning:  r.NewStyle().Foreground(colorWarning),
		error:    r.NewStyle().Bold(true).Foreground(colorAccent),
		errorBox: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		header:   r.NewStyle().Bold(true).Foreground(colorAccent),
		muted:    r.NewStyle().Foreground(colorMuted),
	}
}
