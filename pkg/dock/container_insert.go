// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// InsertChildAt inserts child into container's child list at index. If
// grow and child is visible, the parent's available space is reclaimed
// into it via restorePlaceholderInContainer; otherwise it is left at its
// current (zero, for a fresh leaf) size.
func (t *Tree) InsertChildAt(container, child NodeID, index int, grow bool) error {
	cn := t.get(container)
	if cn == nil || !cn.isContainer() {
		return ErrNotContainer
	}
	if t.Contains(container, child) {
		return ErrDuplicateInsertion
	}
	chn := t.get(child)
	if chn == nil {
		return ErrUnknownNode
	}

	if index < 0 || index > len(cn.children) {
		index = len(cn.children)
	}
	cn.children = append(cn.children, noParent)
	copy(cn.children[index+1:], cn.children[index:])
	cn.children[index] = child
	chn.parent = container

	if grow && chn.visible {
		t.restorePlaceholderInContainer(container, child)
	}

	t.updateChildPercentages(container)
	t.observer.OnStructureChanged()
	return nil
}

// InsertAtLocation implements the spec's location-relative insertion
// (§4.2 "Insert (child, location)"), with three cases:
//
//  1. anchor == container: self-relative insertion, possibly adopting or
//     wrapping the container's orientation.
//  2. anchor is a child of container, same orientation: insert beside
//     anchor on the requested side.
//  3. anchor is a child of container, orthogonal orientation: convert
//     anchor into a sub-container of the new orientation, then insert
//     into that sub-container.
func (t *Tree) InsertAtLocation(container, child, anchor NodeID, loc geometry.Location) error {
	if loc == geometry.LocationNone {
		return ErrInvalidLocation
	}
	if t.get(container) == nil || !t.isContainer(container) {
		return ErrNotContainer
	}
	if t.get(child) == nil {
		return ErrUnknownNode
	}
	if t.ContainsRecursive(t.rootID, child) {
		return ErrDuplicateInsertion
	}
	if anchor != container && !t.Contains(container, anchor) {
		return ErrUnknownAnchor
	}

	o := geometry.OrientationFor(loc)
	cn := t.get(container)

	if anchor == container {
		if len(cn.children) <= 1 || !cn.hasOrientation {
			cn.orientation = o
			cn.hasOrientation = true
			idx := 0
			if geometry.IsSide2(loc) {
				idx = len(cn.children)
			}
			return t.InsertChildAt(container, child, idx, true)
		}
		if cn.orientation == o {
			idx := 0
			if geometry.IsSide2(loc) {
				idx = len(cn.children)
			}
			return t.InsertChildAt(container, child, idx, true)
		}
		// Orthogonal self-insertion: wrap the container's existing
		// children in a fresh sub-container of the opposite orientation,
		// then insert at the requested side of *this* container (which
		// now adopts o).
		t.wrapChildrenInSubcontainer(container)
		cn = t.get(container)
		cn.orientation = o
		idx := 0
		if geometry.IsSide2(loc) {
			idx = len(cn.children)
		}
		return t.InsertChildAt(container, child, idx, true)
	}

	if cn.orientation == o || !cn.hasOrientation {
		idx := t.IndexOfChild(container, anchor)
		if geometry.IsSide2(loc) {
			idx++
		}
		return t.InsertChildAt(container, child, idx, true)
	}

	// Orthogonal to an interior anchor: convert it into a sub-container
	// of orientation o, then insert relative to it as the self-relative
	// case inside that sub-container.
	sub := t.convertChildToContainer(container, anchor)
	return t.InsertAtLocation(sub, child, sub, loc)
}

// wrapChildrenInSubcontainer moves every existing child of container into
// a brand-new sub-container of the opposite orientation, leaving
// container with that single sub-container as its only child. Used when
// an orthogonal self-relative insertion arrives at a container that
// already has an orientation and more than one child.
func (t *Tree) wrapChildrenInSubcontainer(container NodeID) {
	cn := t.get(container)
	sub := &node{
		kind:           KindContainer,
		parent:         container,
		geom:           cn.geom,
		minSize:        t.minFloor,
		maxSize:        geometry.Size{W: 1 << 30, H: 1 << 30},
		visible:        true,
		orientation:    cn.orientation,
		hasOrientation: cn.hasOrientation,
		children:       cn.children,
	}
	subID := t.insertNode(sub)
	for _, c := range sub.children {
		if cc := t.get(c); cc != nil {
			cc.parent = subID
		}
	}
	cn.children = []NodeID{subID}
	t.updateChildPercentages(container)
}

// convertChildToContainer replaces leaf in its parent's child list with a
// new sub-container at the same index and geometry, then re-inserts leaf
// as that sub-container's sole child.
func (t *Tree) convertChildToContainer(container, leaf NodeID) NodeID {
	idx := t.IndexOfChild(container, leaf)
	leafGeom := t.Geometry(leaf)

	sub := &node{
		kind:    KindContainer,
		parent:  container,
		geom:    leafGeom,
		minSize: t.minFloor,
		maxSize: geometry.Size{W: 1 << 30, H: 1 << 30},
		visible: true,
	}
	subID := t.insertNode(sub)

	cn := t.get(container)
	cn.children[idx] = subID

	ln := t.get(leaf)
	ln.parent = subID
	ln.geom.Point = geometry.Point{}
	sub.children = []NodeID{leaf}
	sub.percentage = ln.percentage
	ln.percentage = 1

	t.updateChildPercentages(container)
	t.observer.OnStructureChanged()
	return subID
}
