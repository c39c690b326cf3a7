// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// RequestRootGrowth implements §4.7: grows the root by exactly missing
// pixels along whichever axes are non-zero, then runs one
// resize-propagation pass. Fails with ErrInsufficientSpace if the root is
// pinned (PinRootSize(true)); the tree is left unchanged in that case.
func (t *Tree) RequestRootGrowth(missing geometry.Size) error {
	if missing.W <= 0 && missing.H <= 0 {
		return nil
	}
	if t.rootSizePinned {
		return ErrInsufficientSpace
	}
	root := t.rootNode()
	grown := geometry.Size{
		W: root.geom.Size.W + max(missing.W, 0),
		H: root.geom.Size.H + max(missing.H, 0),
	}
	return t.Resize(grown)
}

// Engine is the façade of §10: the entry point a host embeds, bundling a
// Tree with the higher-level operations (AddGuest, RemoveGuest, drop-rect
// suggestion, sanity checks) that compose several Tree primitives and the
// root-growth policy.
type Engine struct {
	tree *Tree
}

// NewEngine creates an Engine with a fresh root container sized to
// rootSize.
func NewEngine(rootSize geometry.Size) *Engine {
	return &Engine{tree: NewTree(rootSize)}
}

// Tree exposes the underlying arena for lower-level operations (observer
// registration, direct geometry queries, separator drags) the façade
// doesn't wrap.
func (e *Engine) Tree() *Tree { return e.tree }

// SetObserver registers the observer that receives change notifications.
func (e *Engine) SetObserver(o Observer) { e.tree.SetObserver(o) }

// AddGuest creates a leaf hosting g and inserts it into container relative
// to anchor and loc (anchor == container means "self-relative", per
// §4.2). If the insertion's minimum doesn't fit along the insertion axis,
// the root is grown first (§4.7); if the root is pinned, the guest is not
// added and ErrInsufficientSpace is returned.
func (e *Engine) AddGuest(g Guest, container, anchor NodeID, loc geometry.Location) (NodeID, error) {
	t := e.tree
	if loc == geometry.LocationNone {
		return noParent, ErrInvalidLocation
	}
	if !t.isContainer(container) {
		return noParent, ErrNotContainer
	}

	o := geometry.OrientationFor(loc)
	needed := geometry.LengthAlong(geometry.Max(g.MinSize(), t.minFloor), o)

	var available int
	if t.NumVisibleChildren(container) == 0 {
		available = geometry.LengthAlong(t.Geometry(container).Size, o)
	} else {
		available = t.AvailableLength(container) - t.sepThickness
	}
	if shortfall := needed - available; shortfall > 0 {
		missing := geometry.WithLengthAlong(geometry.Size{}, o, shortfall)
		if err := t.RequestRootGrowth(missing); err != nil {
			return noParent, ErrInsufficientSpace
		}
	}

	id := t.NewLeaf()
	if err := t.SetGuest(id, g); err != nil {
		delete(t.nodes, id)
		return noParent, err
	}
	if err := t.InsertAtLocation(container, id, anchor, loc); err != nil {
		delete(t.nodes, id)
		return noParent, err
	}
	return id, nil
}

// RemoveGuest removes item from the tree, turning it into a placeholder
// (hardRemove == false) or destroying it outright (hardRemove == true).
func (e *Engine) RemoveGuest(item NodeID, hardRemove bool) {
	e.tree.RemoveItem(item, hardRemove)
}

// ResizeRoot resizes the whole layout to newSize.
func (e *Engine) ResizeRoot(newSize geometry.Size) error {
	return e.tree.Resize(newSize)
}

// SuggestDropRect returns, in root-relative coordinates, the rectangle a
// pane of minSize would occupy if dropped at loc relative to anchor (or
// the root, if anchor is -1) within container.
func (e *Engine) SuggestDropRect(container NodeID, minSize geometry.Size, anchor NodeID, loc geometry.Location) (geometry.Rect, error) {
	rect, err := e.tree.SuggestedDropRect(container, minSize, anchor, loc)
	if err != nil {
		return geometry.Rect{}, err
	}
	return e.tree.MapRectToRoot(container, rect), nil
}

// TurnIntoPlaceholder hides item's guest and grows its visible neighbours
// into the freed space, without removing item from the tree.
func (e *Engine) TurnIntoPlaceholder(id NodeID) { e.tree.TurnIntoPlaceholder(id) }

// Restore reattaches g to the placeholder left behind by a prior
// TurnIntoPlaceholder (or a soft RemoveGuest), growing it back into its
// recorded length.
func (e *Engine) Restore(id NodeID, g Guest) error { return e.tree.Restore(id, g) }

// CheckSanity runs the non-mutating invariant audit.
func (e *Engine) CheckSanity() error { return e.tree.CheckSanity() }

// DumpLayout renders the human-readable tree dump.
func (e *Engine) DumpLayout() string { return e.tree.DumpLayout() }

// LastPosition is a ref-counted holder for a placeholder leaf (§4.5): a
// client keeps one around after a guest is removed in order to restore
// the same guest (or a different one) to the same slot later. Creating
// one increments the leaf's ref count; Release decrements it, and the
// leaf is destroyed once the count reaches zero while hidden.
type LastPosition struct {
	tree *Tree
	item NodeID
}

// NewLastPosition creates a LastPosition over item and increments its ref
// count. item should already be a placeholder (TurnIntoPlaceholder having
// been called), though this isn't enforced: refs are valid on visible
// leaves too, they simply don't trigger removal while visible.
func (t *Tree) NewLastPosition(item NodeID) *LastPosition {
	t.Ref(item)
	return &LastPosition{tree: t, item: item}
}

// Item returns the NodeID this holder refers to.
func (lp *LastPosition) Item() NodeID { return lp.item }

// Restore reattaches g to the held leaf. The first LastPosition to call
// Restore wins; later calls on the now-visible leaf fail with
// ErrAlreadyRestored, matching §4.5's "first restore wins" rule.
func (lp *LastPosition) Restore(g Guest) error {
	return lp.tree.Restore(lp.item, g)
}

// Release drops this holder's reference. Once the last reference to a
// hidden leaf is released, the leaf is removed from its parent, which may
// cascade container collapses.
func (lp *LastPosition) Release() {
	lp.tree.Unref(lp.item)
}
