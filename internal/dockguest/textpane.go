// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dockguest

import (
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// TextPane is a trivial Pane that renders a fixed string inside a border,
// with no interactive behavior. The demo uses it for its panes.
type TextPane struct {
	Title string
	Body  string
	Style lipgloss.Style
}

// NewTextPane creates a TextPane with a rounded border in the given
// color.
func NewTextPane(title, body string, border color.Color) *TextPane {
	return &TextPane{
		Title: title,
		Body:  body,
		Style: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border),
	}
}

func (p *TextPane) Init() tea.Cmd { return nil }

func (p *TextPane) Update(tea.Msg) tea.Cmd { return nil }

func (p *TextPane) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return p.Style.Width(width - 2).Height(height - 2).Render(p.Title + "\n\n" + p.Body)
}
