// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// NumChildren returns the total number of children (visible + placeholder).
func (t *Tree) NumChildren(id NodeID) int {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return 0
	}
	return len(n.children)
}

// NumVisibleChildren returns the number of visible children.
func (t *Tree) NumVisibleChildren(id NodeID) int {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return 0
	}
	count := 0
	for _, c := range n.children {
		if t.IsVisible(c) {
			count++
		}
	}
	return count
}

// HasVisibleChildren reports whether id has at least one visible child.
func (t *Tree) HasVisibleChildren(id NodeID) bool {
	return t.NumVisibleChildren(id) > 0
}

// IndexOfChild returns the index of child within id's child list, or -1.
func (t *Tree) IndexOfChild(id, child NodeID) int {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return -1
	}
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// VisibleChildren returns id's children filtered to the visible ones, in order.
func (t *Tree) VisibleChildren(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return nil
	}
	out := make([]NodeID, 0, len(n.children))
	for _, c := range n.children {
		if t.IsVisible(c) {
			out = append(out, c)
		}
	}
	return out
}

// HasSingleVisibleItem reports whether id has exactly one visible child.
func (t *Tree) HasSingleVisibleItem(id NodeID) bool {
	return t.NumVisibleChildren(id) == 1
}

// Contains reports whether child is a direct child of id.
func (t *Tree) Contains(id, child NodeID) bool {
	return t.IndexOfChild(id, child) != -1
}

// ContainsRecursive reports whether item is id or a descendant of id.
func (t *Tree) ContainsRecursive(id, item NodeID) bool {
	if id == item {
		return true
	}
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return false
	}
	for _, c := range n.children {
		if t.ContainsRecursive(c, item) {
			return true
		}
	}
	return false
}

// UsableLength returns a container's length along its own orientation
// minus the separators between visible children.
func (t *Tree) UsableLength(id NodeID) int {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return 0
	}
	length := geometry.LengthAlong(n.geom.Size, n.orientation)
	visible := t.NumVisibleChildren(id)
	if visible > 1 {
		length -= (visible - 1) * t.sepThickness
	}
	return length
}

// AvailableLength returns how many pixels id's usable length exceeds its
// own minimum along its orientation.
func (t *Tree) AvailableLength(id NodeID) int {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return 0
	}
	min := geometry.LengthAlong(t.containerMinSize(id), n.orientation)
	return t.UsableLength(id) - min
}

// NeighbourFor returns the child adjacent to item on side, irrespective of
// visibility, or -1 if there is none.
func (t *Tree) NeighbourFor(id, item NodeID, side geometry.Side) NodeID {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return -1
	}
	idx := t.IndexOfChild(id, item)
	if idx == -1 {
		return -1
	}
	var ni int
	if side == geometry.Side1 {
		ni = idx - 1
	} else {
		ni = idx + 1
	}
	if ni < 0 || ni >= len(n.children) {
		return -1
	}
	return n.children[ni]
}

// VisibleNeighbourFor returns the visible child adjacent to item on side,
// amongst id's visible children, or -1 if there is none.
func (t *Tree) VisibleNeighbourFor(id, item NodeID, side geometry.Side) NodeID {
	vis := t.VisibleChildren(id)
	idx := -1
	for i, c := range vis {
		if c == item {
			idx = i
			break
		}
	}
	if idx == -1 {
		return -1
	}
	var ni int
	if side == geometry.Side1 {
		ni = idx - 1
	} else {
		ni = idx + 1
	}
	if ni < 0 || ni >= len(vis) {
		return -1
	}
	return vis[ni]
}

// containerMinSize implements invariant 3: along the orientation, the sum
// of visible children's minimums plus separators; orthogonally, the max
// of visible children's minimums. A container with no visible children
// (only possible for the root) has the hardcoded floor.
func (t *Tree) containerMinSize(id NodeID) geometry.Size {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return t.minFloor
	}
	vis := t.VisibleChildren(id)
	if len(vis) == 0 {
		return t.minFloor
	}
	var along, ortho int
	o := n.orientation
	for _, c := range vis {
		cmin := t.MinSize(c)
		along += geometry.LengthAlong(cmin, o)
		ortho = max(ortho, geometry.LengthAlong(cmin, geometry.Opposite(o)))
	}
	if len(vis) > 1 {
		along += (len(vis) - 1) * t.sepThickness
	}
	return geometry.WithLengthAlong(geometry.WithLengthAlong(geometry.Size{}, o, along), geometry.Opposite(o), ortho)
}

// containerMaxSize is effectively unbounded unless all children are
// individually bounded; this engine treats containers as unbounded,
// matching the "effectively unbounded" default for guests that never set
// a real MaxSize.
func (t *Tree) containerMaxSize(NodeID) geometry.Size {
	return geometry.Size{W: 1 << 30, H: 1 << 30}
}

// updateChildPercentages recomputes percentage-within-parent for every
// child of id: visible children get length/usableLength, placeholders
// get exactly 0 (invariant 7).
func (t *Tree) updateChildPercentages(id NodeID) {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return
	}
	usable := t.UsableLength(id)
	for _, c := range n.children {
		cn := t.get(c)
		if cn == nil {
			continue
		}
		if !cn.visible {
			cn.percentage = 0
			continue
		}
		if usable <= 0 {
			cn.percentage = 0
			continue
		}
		cn.percentage = float64(geometry.LengthAlong(cn.geom.Size, n.orientation)) / float64(usable)
	}
}
