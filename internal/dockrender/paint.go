// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dockrender

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/klardock/docklayout/pkg/dock"
	"github.com/klardock/docklayout/pkg/geometry"
)

// SeparatorHit identifies a separator between two neighbouring visible
// children of a container, as reported by a click that landed on it.
type SeparatorHit struct {
	Container    dock.NodeID
	Side1, Side2 dock.NodeID
	Orientation  geometry.Orientation
}

// Paint renders the visible guests and separators of tree into a string
// sized to the tree's root geometry, along with a lookup from separator
// layer ID back to the pair of items it sits between (for translating a
// mouse hit into a Separator drag).
type Paint struct {
	Content    string
	root       Layer
	separators map[string]SeparatorHit
	sepStyle   lipgloss.Style
}

const sepLayerPrefix = "sep:"

// New paints tree: content(id) supplies the already-rendered string for
// each visible leaf, sepStyle is applied to every separator cell.
func New(tree *dock.Tree, content func(id dock.NodeID) string, sepStyle lipgloss.Style) *Paint {
	root := tree.Root()
	rootSize := tree.Geometry(root).Size
	group := NewGroup("root")

	var z int
	separators := make(map[string]SeparatorHit)

	var walk func(id dock.NodeID)
	walk = func(id dock.NodeID) {
		if tree.IsLeaf(id) {
			if !tree.IsVisible(id) {
				return
			}
			rect := tree.AbsoluteGeometry(id)
			l := NewLayer(fmt.Sprintf("leaf:%d", id), rect.W, rect.H, content(id)).X(rect.X).Y(rect.Y).Z(z)
			z++
			group.AddChild(l)
			return
		}

		children := tree.VisibleChildren(id)
		o := tree.Orientation(id)
		for i, c := range children {
			walk(c)
			if i < len(children)-1 {
				next := children[i+1]
				sepID := fmt.Sprintf("%s%d:%d", sepLayerPrefix, id, i)
				rect := separatorRect(tree, id, c, next, o)
				sepLayer := NewLayer(sepID, rect.W, rect.H, sepStyle.Render(separatorGlyph(o, rect.W, rect.H))).X(rect.X).Y(rect.Y).Z(z)
				z++
				group.AddChild(sepLayer)
				separators[sepID] = SeparatorHit{Container: id, Side1: c, Side2: next, Orientation: o}
			}
		}
	}
	walk(root)

	return &Paint{
		Content:    Render(rootSize.W, rootSize.H, group),
		root:       group,
		separators: separators,
	}
}

// Release returns every Layer this paint allocated to the shared layer
// pool. Call it once the paint has been superseded and nothing will read
// its Content or Hit results again.
func (p *Paint) Release() {
	Recycle(p.root)
	p.root = nil
}

// Hit resolves a click at (x, y) to either a leaf NodeID, a SeparatorHit,
// or neither.
func (p *Paint) Hit(x, y int) (leaf dock.NodeID, sep *SeparatorHit, ok bool) {
	id := p.root.Hit(x, y)
	if id == "" {
		return 0, nil, false
	}
	if s, found := p.separators[id]; found {
		return 0, &s, true
	}
	var n int
	if _, err := fmt.Sscanf(id, "leaf:%d", &n); err == nil {
		return dock.NodeID(n), nil, true
	}
	return 0, nil, false
}

// separatorRect returns the rectangle a separator between side1 and side2
// occupies, spanning the full orthogonal extent of container.
func separatorRect(tree *dock.Tree, container, side1, side2 dock.NodeID, o geometry.Orientation) geometry.Rect {
	s1 := tree.AbsoluteGeometry(side1)
	s2 := tree.AbsoluteGeometry(side2)
	thickness := tree.SeparatorThickness()

	if o == geometry.Horizontal {
		return geometry.Rect{
			Point: geometry.Point{X: s1.X + s1.W, Y: s1.Y},
			Size:  geometry.Size{W: thickness, H: s1.H},
		}
	}
	_ = s2
	return geometry.Rect{
		Point: geometry.Point{X: s1.X, Y: s1.Y + s1.H},
		Size:  geometry.Size{W: s1.W, H: thickness},
	}
}

// separatorGlyph fills a w x h block with the separator's rule character:
// a vertical bar repeated down the rows for a horizontal-orientation
// container (the separator is a vertical strip between left/right
// panes), or a horizontal rule repeated across for a vertical one.
func separatorGlyph(o geometry.Orientation, w, h int) string {
	if o == geometry.Vertical {
		return strings.Repeat("─", w)
	}
	rows := make([]string, h)
	for i := range rows {
		rows[i] = "│"
	}
	return strings.Join(rows, "\n")
}
