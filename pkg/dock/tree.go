// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// Tree is the arena holding every Item (leaf and container) of one dock
// layout. It is single-threaded and cooperative: every method must be
// called from the owning goroutine/UI thread, and every call returns with
// the tree in an invariant-preserving state (or leaves it entirely
// unchanged, on error).
type Tree struct {
	nodes  map[NodeID]*node
	nextID NodeID
	rootID NodeID

	sepThickness int
	minFloor     geometry.Size

	observer Observer

	resizeGuard  bool // re-entrancy guard for Resize
	minSizeGuard bool // collapses cascading min-size propagation into one pass

	resizing       bool // true while any separator is Dragging
	rootSizePinned bool // when true, RequestRootGrowth always fails
}

// NewTree creates a tree with a root container sized to rootSize.
func NewTree(rootSize geometry.Size) *Tree {
	t := &Tree{
		nodes:        make(map[NodeID]*node),
		sepThickness: DefaultSeparatorThickness,
		minFloor:     DefaultMinSize,
		observer:     NopObserver{},
	}
	root := &node{
		kind:     KindContainer,
		parent:   noParent,
		geom:     geometry.Rect{Size: rootSize},
		minSize:  t.minFloor,
		maxSize:  geometry.Size{W: 1 << 30, H: 1 << 30},
		visible:  true,
		children: nil,
	}
	t.rootID = t.insertNode(root)
	return t
}

func (t *Tree) insertNode(n *node) NodeID {
	id := t.nextID
	t.nextID++
	n.id = id
	t.nodes[id] = n
	return id
}

func (t *Tree) get(id NodeID) *node {
	return t.nodes[id]
}

// SetObserver registers the observer that receives change notifications.
// Pass NopObserver{} to stop receiving them.
func (t *Tree) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	t.observer = o
}

// Root returns the root container's NodeID.
func (t *Tree) Root() NodeID { return t.rootID }

// SeparatorThickness returns the pixel gap rendered between neighbouring
// visible children.
func (t *Tree) SeparatorThickness() int { return t.sepThickness }

// SetSeparatorThickness overrides the default separator gap. Must be
// called before any items are inserted to keep existing geometry valid.
func (t *Tree) SetSeparatorThickness(px int) {
	if px >= 0 {
		t.sepThickness = px
	}
}

// MinFloor returns the hardcoded minimum-size floor every item is
// clamped to.
func (t *Tree) MinFloor() geometry.Size { return t.minFloor }

// SetMinFloor overrides the minimum-size floor every item's minimum is
// clamped to. Must be called before any items are inserted to keep
// existing geometry valid.
func (t *Tree) SetMinFloor(s geometry.Size) {
	if s.W > 0 && s.H > 0 {
		t.minFloor = s
	}
}

// IsResizing reports whether a separator drag is currently in progress.
// Callers use this to suspend expensive work while true.
func (t *Tree) IsResizing() bool { return t.resizing }

// PinRootSize controls whether RequestRootGrowth may succeed. A host with
// a fixed window size should pin it; a host that can grow its window
// should leave it unpinned (the default).
func (t *Tree) PinRootSize(pinned bool) { t.rootSizePinned = pinned }

func (t *Tree) isContainer(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.isContainer()
}

func (t *Tree) isLeaf(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.isLeaf()
}

// IsContainer reports whether id is a container (splittable, has children)
// rather than a leaf.
func (t *Tree) IsContainer(id NodeID) bool { return t.isContainer(id) }

// IsLeaf reports whether id is a leaf (holds, or once held, a guest).
func (t *Tree) IsLeaf(id NodeID) bool { return t.isLeaf(id) }

// Walk visits every node in the tree in depth-first order, root first.
func (t *Tree) Walk(visit func(id NodeID)) {
	t.walk(t.rootID, visit)
}

func (t *Tree) walk(id NodeID, visit func(id NodeID)) {
	n := t.get(id)
	if n == nil {
		return
	}
	visit(id)
	for _, c := range n.children {
		t.walk(c, visit)
	}
}

// AbsoluteGeometry returns id's geometry mapped to root-relative
// coordinates, the same coordinate space guests receive through
// Guest.SetGeometry.
func (t *Tree) AbsoluteGeometry(id NodeID) geometry.Rect {
	n := t.get(id)
	if n == nil {
		return geometry.Rect{}
	}
	return t.mapToRoot(n.parent, n.geom)
}

// Exists reports whether id refers to a live node.
func (t *Tree) Exists(id NodeID) bool { return t.get(id) != nil }

// IsVisible reports whether the item is visible (for a leaf: has a guest
// attached; for a container: its visible flag, which a soft RemoveItem
// clears once no child of it is visible, even if it keeps children).
func (t *Tree) IsVisible(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.visible
}

// IsPlaceholder reports whether the leaf is hidden.
func (t *Tree) IsPlaceholder(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.isPlaceholder()
}

// Geometry returns the item's current geometry, parent-relative.
func (t *Tree) Geometry(id NodeID) geometry.Rect {
	n := t.get(id)
	if n == nil {
		return geometry.Rect{}
	}
	return n.geom
}

// MinSize returns the item's effective minimum size: for a leaf, its
// recorded minimum clamped to the hardcoded floor; for a container, the
// computed minimum described by invariant 3.
func (t *Tree) MinSize(id NodeID) geometry.Size {
	n := t.get(id)
	if n == nil {
		return geometry.Size{}
	}
	if n.isLeaf() {
		return n.minSize
	}
	return t.containerMinSize(id)
}

// MaxSize returns the item's effective maximum size.
func (t *Tree) MaxSize(id NodeID) geometry.Size {
	n := t.get(id)
	if n == nil {
		return geometry.Size{}
	}
	if n.isLeaf() {
		return n.maxSize
	}
	return t.containerMaxSize(id)
}

// Percentage returns the item's recorded percentage-within-parent.
func (t *Tree) Percentage(id NodeID) float64 {
	n := t.get(id)
	if n == nil {
		return 0
	}
	return n.percentage
}

// ParentOf returns the parent NodeID, or noParent (-1) for the root.
func (t *Tree) ParentOf(id NodeID) NodeID {
	n := t.get(id)
	if n == nil {
		return noParent
	}
	return n.parent
}

// Orientation returns a container's orientation, which it adopts from the
// first location-based insertion into it. Returns Horizontal for a leaf,
// an unknown id, or a container that has not had one.
func (t *Tree) Orientation(id NodeID) geometry.Orientation {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return geometry.Horizontal
	}
	return n.orientation
}

// Children returns a container's child NodeIDs in order, including
// placeholders.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Guest returns the guest attached to a leaf, or nil if it's a placeholder.
func (t *Tree) Guest(id NodeID) Guest {
	n := t.get(id)
	if n == nil || !n.isLeaf() {
		return nil
	}
	return n.guest
}

// RefCount returns a leaf's reference count.
func (t *Tree) RefCount(id NodeID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}
	return n.refCount
}

// absolutePos returns id's own position, summed with every ancestor's
// position, yielding a root-relative point (the root itself always sits
// at the origin of its host region).
func (t *Tree) absolutePos(id NodeID) geometry.Point {
	var p geometry.Point
	for n := t.get(id); n != nil; n = t.get(n.parent) {
		p.X += n.geom.X
		p.Y += n.geom.Y
		if n.parent == noParent {
			break
		}
	}
	return p
}

// mapToRoot converts a rectangle r, expressed in the coordinate system of
// container id (i.e. as if it were one of id's direct children), to
// root-relative coordinates.
func (t *Tree) mapToRoot(id NodeID, r geometry.Rect) geometry.Rect {
	origin := t.absolutePos(id)
	r.X += origin.X
	r.Y += origin.Y
	return r
}

// rootNode is a convenience accessor for the root container.
func (t *Tree) rootNode() *node { return t.get(t.rootID) }
