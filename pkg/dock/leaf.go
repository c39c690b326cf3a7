// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// NewLeaf creates a detached placeholder leaf not yet part of any tree.
// Callers insert it into a container with InsertChildAt or InsertAtLocation.
func (t *Tree) NewLeaf() NodeID {
	n := &node{
		kind:    KindLeaf,
		parent:  noParent,
		minSize: t.minFloor,
		maxSize: geometry.Size{W: 1 << 30, H: 1 << 30},
		visible: false,
	}
	return t.insertNode(n)
}

// SetGuest attaches g to the leaf id, rebinding the leaf's minimum size to
// the guest's (clamped to the hardcoded floor) and its maximum size to the
// guest's. The leaf keeps its own geometry and pushes it to the guest via
// SetGeometry; the guest's current geometry is not read. Returns
// ErrAlreadyAttached if a guest is already set.
func (t *Tree) SetGuest(id NodeID, g Guest) error {
	n := t.get(id)
	if n == nil {
		return ErrUnknownNode
	}
	if !n.isLeaf() {
		return ErrNotLeaf
	}
	if n.guest != nil {
		return ErrAlreadyAttached
	}
	n.guest = g
	n.guestID = g.StableID()
	n.minSize = geometry.Max(g.MinSize(), t.minFloor)
	n.maxSize = g.MaxSize()
	n.visible = true
	g.SetGeometry(t.mapToRoot(n.parent, n.geom))
	t.observer.OnMinSizeChanged(id)
	return nil
}

// ClearGuest detaches id's guest without any layout side effects, so a
// subsequent SetGuest can succeed. Prefer TurnIntoPlaceholder when the
// leaf should also give up its space.
func (t *Tree) ClearGuest(id NodeID) {
	n := t.get(id)
	if n == nil || !n.isLeaf() {
		return
	}
	n.guest = nil
}

// TurnIntoPlaceholder transitions a visible leaf to a placeholder: it
// detaches the guest, hides the item, and asks the parent container to
// grow the freed space into the visible neighbours. Fatal (panics) if
// called on a container, matching the spec's "fatal if called on a
// container" for a leaf-only operation.
func (t *Tree) TurnIntoPlaceholder(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	if !n.isLeaf() {
		panic("dock: TurnIntoPlaceholder called on a container")
	}
	if !n.visible {
		return
	}
	parent := n.parent
	side1 := t.VisibleNeighbourFor(parent, id, geometry.Side1)
	side2 := t.VisibleNeighbourFor(parent, id, geometry.Side2)

	if n.guest != nil {
		n.guest.SetVisible(false)
		n.guest = nil
	}
	n.visible = false
	n.percentage = 0
	n.restored = false
	t.observer.OnVisibilityChanged(id)

	t.growNeighbours(parent, side1, side2)
	t.updateChildPercentages(parent)
	t.onChildVisibleChanged(parent, false)
}

// Restore transitions a placeholder leaf back to visible by reattaching a
// guest, growing it back into its recorded length clamped to
// min+available. Returns ErrAlreadyRestored if id is already visible.
func (t *Tree) Restore(id NodeID, g Guest) error {
	n := t.get(id)
	if n == nil {
		return ErrUnknownNode
	}
	if !n.isLeaf() {
		return ErrNotLeaf
	}
	if n.visible {
		return ErrAlreadyRestored
	}

	n.guest = g
	n.guestID = g.StableID()
	n.minSize = geometry.Max(g.MinSize(), t.minFloor)
	n.maxSize = g.MaxSize()
	n.restored = true

	parent := n.parent
	t.restorePlaceholderInContainer(parent, id)

	n.visible = true
	g.SetVisible(true)
	g.SetGeometry(t.mapToRoot(parent, n.geom))
	t.observer.OnVisibilityChanged(id)
	t.onChildVisibleChanged(parent, true)
	return nil
}

// RebindGuest attaches g to a leaf produced by Unmarshal, whose geometry
// and visibility already reflect a previously saved layout. Unlike
// SetGuest it performs no growth math: the leaf keeps the geometry the
// deserializer gave it and g is simply told about it.
func (t *Tree) RebindGuest(id NodeID, g Guest) error {
	n := t.get(id)
	if n == nil {
		return ErrUnknownNode
	}
	if !n.isLeaf() {
		return ErrNotLeaf
	}
	if n.guest != nil {
		return ErrAlreadyAttached
	}
	n.guest = g
	n.guestID = g.StableID()
	n.minSize = geometry.Max(g.MinSize(), t.minFloor)
	n.maxSize = g.MaxSize()
	g.SetVisible(n.visible)
	if n.visible {
		g.SetGeometry(t.mapToRoot(n.parent, n.geom))
	}
	return nil
}

// Ref increments id's reference count. Typically called once per external
// LastPosition holder created for this leaf.
func (t *Tree) Ref(id NodeID) {
	n := t.get(id)
	if n != nil {
		n.refCount++
	}
}

// Unref decrements id's reference count. When it reaches zero while the
// leaf is hidden, the leaf is removed from its parent (which may cascade
// container collapses).
func (t *Tree) Unref(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	if n.refCount > 0 {
		n.refCount--
	}
	if n.refCount == 0 && n.isPlaceholder() {
		t.RemoveItem(id, true)
	}
}

// OnGuestDetached is called by the host when it observes that a guest has
// been torn off its hosting widget hierarchy; the engine reacts by
// auto-converting the leaf to a placeholder.
func (t *Tree) OnGuestDetached(id NodeID) {
	t.TurnIntoPlaceholder(id)
}

// OnGuestMinSizeChanged is called by the host when a guest reports a new
// minimum size. It rebinds the leaf's minimum and propagates the change,
// collapsing a cascade of such notifications into a single root-resize
// attempt via the min-size guard.
func (t *Tree) OnGuestMinSizeChanged(id NodeID) {
	n := t.get(id)
	if n == nil || !n.isLeaf() || n.guest == nil {
		return
	}
	n.minSize = geometry.Max(n.guest.MinSize(), t.minFloor)
	n.maxSize = n.guest.MaxSize()
	t.observer.OnMinSizeChanged(id)

	if t.minSizeGuard {
		return
	}
	t.minSizeGuard = true
	defer func() { t.minSizeGuard = false }()

	if n.parent != noParent {
		t.onChildMinSizeChanged(n.parent, id)
	}
}
