// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/klardock/docklayout/internal/dockguest"
	"github.com/klardock/docklayout/internal/dockrender"
	"github.com/klardock/docklayout/pkg/dock"
	"github.com/klardock/docklayout/pkg/geometry"
)

var theme = tint.TintGitHubDark

// saveRequestedMsg is sent by the autosave goroutine in main.go to ask
// the model to serialize the current layout; it carries a reply channel
// so the goroutine can block until the (single-threaded) model has
// produced a consistent snapshot.
type saveRequestedMsg struct {
	reply chan []byte
}

// modelConfig carries the CLI-configurable knobs from main into newModel:
// separator thickness, the minimum-size floor, and the drag mode every
// separator this model creates uses.
type modelConfig struct {
	separatorThickness int
	minFloor           geometry.Size
	dragMode           dock.DragMode
}

// model is the dock demo's root bubbletea model: it owns the engine, the
// guests hosted in it, and the drag state of whichever separator the
// pointer is currently pressing.
type model struct {
	width, height int

	engine   *dock.Engine
	panes    map[dock.NodeID]*dockguest.Model
	paint    *dockrender.Paint
	dragMode dock.DragMode

	dragging   *dock.Separator
	dragOrigin int // pointer coordinate along dragOrient at Press time
	dragOrient geometry.Orientation

	log *slog.Logger
}

func newModel(log *slog.Logger, cfg modelConfig) *model {
	engine := dock.NewEngine(geometry.Size{W: 80, H: 24})
	if cfg.separatorThickness > 0 {
		engine.Tree().SetSeparatorThickness(cfg.separatorThickness)
	}
	if cfg.minFloor.W > 0 && cfg.minFloor.H > 0 {
		engine.Tree().SetMinFloor(cfg.minFloor)
	}
	m := &model{
		engine:   engine,
		panes:    make(map[dock.NodeID]*dockguest.Model),
		dragMode: cfg.dragMode,
		log:      log,
	}
	engine.SetObserver(m)

	root := engine.Tree().Root()
	sidebar := dockguest.New(dockguest.NewTextPane("Sidebar", "files\nand\nthings", charmtone.Oyster), geometry.Size{W: 18, H: 6})
	sidebarID, err := engine.AddGuest(sidebar, root, root, geometry.LocationLeft)
	if err != nil {
		log.Error("add sidebar", "error", err)
	} else {
		m.panes[sidebarID] = sidebar
	}

	editor := dockguest.New(dockguest.NewTextPane("Editor", "Lorem ipsum dolor sit amet.", charmtone.Charple), geometry.Size{W: 30, H: 8})
	editorID, err := engine.AddGuest(editor, root, sidebarID, geometry.LocationRight)
	if err != nil {
		log.Error("add editor", "error", err)
	} else {
		m.panes[editorID] = editor
	}

	console := dockguest.New(dockguest.NewTextPane("Console", "$ ready", theme.Cyan), geometry.Size{W: 30, H: 6})
	consoleID, err := engine.AddGuest(console, root, editorID, geometry.LocationBottom)
	if err != nil {
		log.Error("add console", "error", err)
	} else {
		m.panes[consoleID] = console
	}

	return m
}

// dock.Observer implementation: every mutation the engine makes to the
// tree invalidates the previous paint, so the next View rebuilds it.
func (m *model) OnGeometryChanged(dock.NodeID)   { m.invalidatePaint() }
func (m *model) OnVisibilityChanged(dock.NodeID) { m.invalidatePaint() }
func (m *model) OnMinSizeChanged(dock.NodeID)    { m.invalidatePaint() }
func (m *model) OnStructureChanged()             { m.invalidatePaint() }

func (m *model) invalidatePaint() {
	if m.paint == nil {
		return
	}
	m.paint.Release()
	m.paint = nil
}

func (m *model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panes))
	for _, p := range m.panes {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if err := m.engine.ResizeRoot(geometry.Size{W: msg.Width, H: msg.Height}); err != nil {
			m.log.Error("resize root", "error", err)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			break
		}
		return m, m.handlePress(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		m.handleDrag(msg.X, msg.Y)
		return m, nil

	case tea.MouseReleaseMsg:
		m.handleRelease()
		return m, nil

	case saveRequestedMsg:
		data, err := m.engine.Tree().Marshal()
		if err != nil {
			m.log.Error("marshal layout", "error", err)
			data = nil
		}
		msg.reply <- data
		return m, nil
	}

	cmds := make([]tea.Cmd, 0, len(m.panes))
	for _, p := range m.panes {
		cmds = append(cmds, p.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handlePress resolves a click to a separator, in which case it starts a
// drag in the configured drag mode. A click that does not land on a
// separator does nothing and is not forwarded to any pane.
func (m *model) handlePress(x, y int) tea.Cmd {
	if m.paint == nil {
		return nil
	}
	_, sep, ok := m.paint.Hit(x, y)
	if !ok || sep == nil {
		return nil
	}
	s := m.engine.Tree().NewSeparator(sep.Container, sep.Side1, sep.Side2, m.dragMode)
	s.Press()
	m.dragging = s
	m.dragOrient = sep.Orientation
	m.dragOrigin = geometry.PosAlong(geometry.Point{X: x, Y: y}, sep.Orientation)
	return nil
}

func (m *model) handleDrag(x, y int) {
	if m.dragging == nil {
		return
	}
	pos := geometry.PosAlong(geometry.Point{X: x, Y: y}, m.dragOrient)
	m.dragging.Move(pos - m.dragOrigin)
}

func (m *model) handleRelease() {
	if m.dragging == nil {
		return
	}
	m.dragging.Release()
	m.dragging = nil
}

func (m *model) rebuildPaint() {
	sepStyle := lipgloss.NewStyle().Foreground(theme.BrightBlack)
	m.paint = dockrender.New(m.engine.Tree(), func(id dock.NodeID) string {
		if p, ok := m.panes[id]; ok {
			return p.View()
		}
		return ""
	}, sepStyle)
}

func (m *model) View() tea.View {
	var view tea.View
	view.BackgroundColor = theme.Bg
	view.ForegroundColor = theme.Fg
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return view
	}
	if m.paint == nil {
		m.rebuildPaint()
	}
	view.SetContent(m.paint.Content)
	return view
}
