// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package dockrender paints a [dock.Tree] onto a terminal screen. It
// carries no layout opinion of its own: the tree already computed every
// pane's absolute geometry, so this package's only job is compositing
// that geometry into z-ordered [Layer]s (one per visible guest, one per
// separator) and turning pointer clicks back into the NodeID they hit.
package dockrender

import (
	"fmt"
	"image"
	"iter"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/klardock/docklayout/internal/pool"
)

// Layer is a positioned, z-ordered region of a screen. It is the same
// compositing primitive a plain string-content TUI layout would use, but
// here every Layer's position comes directly from dock geometry rather
// than from percentage/cell math.
type Layer interface {
	GetID() string
	GetX() int
	GetY() int
	GetZ() int
	X(x int) Layer
	Y(y int) Layer
	Z(z int) Layer
	GetParent() Layer
	Parent(layer Layer) Layer
	GetChildren() []Layer
	AddChild(layers ...Layer) Layer
	Bounds() image.Rectangle
	Draw(scr uv.Screen, area image.Rectangle)
	DrawSelf(scr uv.Screen, area image.Rectangle)
	// Hit returns the ID of the top-most layer (by z) whose bounds
	// contain (x, y), or "" if none does.
	Hit(x, y int) string
	String() string
}

func layerTreeIter(l Layer) iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		if !yield(l) {
			return
		}
		for _, child := range l.GetChildren() {
			if !yield(child) {
				return
			}
			layerTreeIter(child)(yield)
		}
	}
}

var _ Layer = (*layer)(nil)

type layer struct {
	id            string
	content       string
	width, height int
	x, y, z       int

	parent   Layer
	children []Layer
}

// layerPool recycles *layer structs across paint passes: a dock tree with
// a dozen panes and separators rebuilds that many Layers on every resize
// or drag tick, so reusing the backing structs avoids reallocating the
// whole tree every frame.
var layerPool = pool.New(func() *layer { return &layer{} })

// Reset implements [pool.Resetable].
func (l *layer) Reset() {
	l.id = ""
	l.content = ""
	l.width, l.height = 0, 0
	l.x, l.y, l.z = 0, 0, 0
	l.parent = nil
	l.children = l.children[:0]
}

// NewLayer creates a leaf Layer of fixed width/height rendering content
// (already styled) at its eventual (x, y).
func NewLayer(id string, width, height int, content string) Layer {
	l := layerPool.Get()
	l.id, l.content, l.width, l.height = id, content, width, height
	return l
}

// NewGroup creates a Layer with no content of its own, purely to host
// children (used for the root of a paint pass).
func NewGroup(id string, children ...Layer) Layer {
	l := layerPool.Get()
	l.id = id
	l.AddChild(children...)
	return l
}

// Recycle returns root and every descendant to the layer pool. Call it on
// a paint's root once it's been superseded by a fresh one, so the next
// paint pass can reuse the structs instead of allocating new ones.
func Recycle(root Layer) {
	if root == nil {
		return
	}
	for _, child := range root.GetChildren() {
		Recycle(child)
	}
	if l, ok := root.(*layer); ok {
		layerPool.Put(l)
	}
}

func (l *layer) GetID() string { return l.id }

func (l *layer) X(x int) Layer { l.x = x; return l }
func (l *layer) Y(y int) Layer { l.y = y; return l }
func (l *layer) Z(z int) Layer { l.z = z; return l }

func (l *layer) GetX() int {
	if l.parent != nil {
		return l.parent.GetX() + l.x
	}
	return l.x
}

func (l *layer) GetY() int {
	if l.parent != nil {
		return l.parent.GetY() + l.y
	}
	return l.y
}

func (l *layer) GetZ() int { return l.z }

func (l *layer) Parent(p Layer) Layer  { l.parent = p; return l }
func (l *layer) GetParent() Layer      { return l.parent }
func (l *layer) GetChildren() []Layer  { return l.children }

func (l *layer) AddChild(layers ...Layer) Layer {
	for i, child := range layers {
		if child == nil {
			panic(fmt.Sprintf("dockrender: child at index %d is nil", i))
		}
		l.children = append(l.children, child.Parent(l))
	}
	return l
}

func (l *layer) Bounds() image.Rectangle {
	x, y := l.GetX(), l.GetY()
	this := image.Rect(x, y, x+l.width, y+l.height)
	for _, child := range l.children {
		this = this.Union(child.Bounds())
	}
	return this
}

func (l *layer) Hit(x, y int) string {
	layers := slices.Collect(layerTreeIter(l))
	sortByZ(layers)
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].GetID() != "" && image.Pt(x, y).In(layers[i].Bounds()) {
			return layers[i].GetID()
		}
	}
	return ""
}

func (l *layer) DrawSelf(scr uv.Screen, area image.Rectangle) {
	if l.content == "" {
		return
	}
	bounds := l.Bounds()
	if !bounds.Overlaps(area) {
		return
	}
	uv.NewStyledString(l.content).Draw(scr, area.Intersect(bounds))
}

func (l *layer) Draw(scr uv.Screen, area image.Rectangle) {
	layers := slices.Collect(layerTreeIter(l))
	sortByZ(layers)
	for _, child := range layers {
		child.DrawSelf(scr, area.Intersect(child.Bounds()))
	}
}

func (l *layer) String() string {
	indent := strings.Repeat("  ", depth(l))
	b := l.Bounds()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sLayer(id:%q z:%d x:%d y:%d w:%d h:%d)\n", indent, l.id, l.z, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
	children := slices.Clone(l.children)
	sortByZ(children)
	for _, child := range children {
		sb.WriteString(child.String())
	}
	return sb.String()
}

func sortByZ(layers []Layer) {
	slices.SortFunc(layers, func(a, b Layer) int { return a.GetZ() - b.GetZ() })
}

func depth(l Layer) int {
	if l.GetParent() == nil {
		return 0
	}
	return depth(l.GetParent()) + 1
}

// Render composites root onto a width x height canvas and returns the
// resulting string, ready to hand to a bubbletea view.
func Render(width, height int, root Layer) string {
	if root == nil || width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewCanvas(width, height).Compose(root).Render()
}
