// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package dockguest adapts bubbletea sub-models into [dock.Guest]s: the
// dock engine only knows about minimum/maximum sizes and geometry
// rectangles, so this package is the seam between that and an actual
// interactive pane.
package dockguest

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/segmentio/ksuid"

	"github.com/klardock/docklayout/pkg/geometry"
)

func init() { //nolint:gochecknoinits
	ksuid.SetRand(ksuid.FastRander)
}

// Pane is the interface a dockable widget implements. It has the usual
// three-method shape of a bubbletea sub-model, except View takes the
// pane's currently allotted size instead of assuming full-terminal.
type Pane interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Model wraps a Pane as a dock.Guest: the engine drives MinSize/MaxSize/
// SetGeometry/SetVisible, and the hosting bubbletea program drives
// Init/Update/View, using the geometry the engine most recently assigned.
type Model struct {
	once sync.Once
	id   string

	pane Pane
	min  geometry.Size
	max  geometry.Size

	geom    geometry.Rect
	visible bool
}

// New wraps pane as a dock.Guest with the given minimum size. Maximum
// size is left unbounded; call SetMaxSize before adding it to an engine
// if the pane has a hard ceiling.
func New(pane Pane, min geometry.Size) *Model {
	return &Model{
		pane: pane,
		min:  min,
		max:  geometry.Size{W: 1 << 30, H: 1 << 30},
	}
}

// SetMaxSize overrides the guest's maximum size.
func (m *Model) SetMaxSize(max geometry.Size) { m.max = max }

// StableID returns an identifier stable across placeholder/restore and
// save/load cycles, minted lazily on first use.
func (m *Model) StableID() string {
	m.once.Do(func() { m.id = ksuid.New().String() })
	return m.id
}

// MinSize implements dock.Guest.
func (m *Model) MinSize() geometry.Size { return m.min }

// MaxSize implements dock.Guest.
func (m *Model) MaxSize() geometry.Size { return m.max }

// SetGeometry implements dock.Guest: it's called with root-relative
// coordinates every time the engine relays out this pane's slot.
func (m *Model) SetGeometry(rect geometry.Rect) { m.geom = rect }

// SetVisible implements dock.Guest.
func (m *Model) SetVisible(visible bool) { m.visible = visible }

// Geometry returns the last rectangle the engine assigned this pane.
func (m *Model) Geometry() geometry.Rect { return m.geom }

// Visible reports whether the hosting leaf currently shows this pane.
func (m *Model) Visible() bool { return m.visible }

// Init forwards to the wrapped pane.
func (m *Model) Init() tea.Cmd { return m.pane.Init() }

// Update forwards to the wrapped pane.
func (m *Model) Update(msg tea.Msg) tea.Cmd { return m.pane.Update(msg) }

// View renders the pane at its currently assigned size, or "" while
// hidden (a placeholder pane has nothing to draw).
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	return m.pane.View(m.geom.W, m.geom.H)
}
