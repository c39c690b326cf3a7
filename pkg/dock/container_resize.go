// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// Resize resizes the root container to newSize, proportionally resizing
// every descendant. Nested calls made while already inside a Resize
// short-circuit: the outermost call owns the resize pass. Returns
// ErrConstraintViolation (and leaves the tree unchanged) if newSize is
// below the root's computed minimum.
func (t *Tree) Resize(newSize geometry.Size) error {
	if t.resizeGuard {
		return nil
	}
	if !geometry.Covers(newSize, t.containerMinSize(t.rootID)) {
		return ErrConstraintViolation
	}

	t.resizeGuard = true
	defer func() { t.resizeGuard = false }()

	root := t.rootNode()
	root.geom.Size = newSize
	t.resizeContainer(t.rootID)
	t.setGeometryRecursiveNotify(t.rootID)
	return nil
}

// resizeContainer implements the Resize algorithm of §4.2: along the
// container's orientation each visible child's new length is
// percentage*usableLength, with the remainder assigned to the last
// visible child so the sum is exact; orthogonally every visible child
// gets the container's orthogonal length. Recurses into sub-containers.
func (t *Tree) resizeContainer(id NodeID) {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return
	}
	vis := t.VisibleChildren(id)
	if len(vis) == 0 {
		return
	}

	o := n.orientation
	usable := t.UsableLength(id)
	orthoLen := geometry.LengthAlong(n.geom.Size, geometry.Opposite(o))

	if len(vis) == 1 {
		c := t.get(vis[0])
		c.geom.Size = geometry.WithLengthAlong(geometry.WithLengthAlong(c.geom.Size, o, max(usable, geometry.LengthAlong(c.minSize, o))), geometry.Opposite(o), orthoLen)
	} else {
		assigned := 0
		for i, cid := range vis {
			c := t.get(cid)
			var length int
			if i == len(vis)-1 {
				length = usable - assigned
			} else {
				length = int(c.percentage * float64(usable))
				assigned += length
			}
			length = max(length, geometry.LengthAlong(t.MinSize(cid), o))
			c.geom.Size = geometry.WithLengthAlong(geometry.WithLengthAlong(c.geom.Size, o, length), geometry.Opposite(o), orthoLen)
		}
	}

	t.positionItems(id)

	for _, cid := range vis {
		if t.isContainer(cid) {
			t.resizeContainer(cid)
		}
	}
}

// positionItems is the deterministic positioning pass of §4.2: walks
// children in order along the container's orientation, skipping
// placeholders (they keep their slot but occupy no length), assigning
// cumulative positions separated by the separator thickness.
func (t *Tree) positionItems(id NodeID) {
	n := t.get(id)
	if n == nil || !n.isContainer() {
		return
	}
	o := n.orientation
	cumulative := 0
	for _, cid := range n.children {
		c := t.get(cid)
		if c == nil || !c.visible {
			continue
		}
		c.geom.Point = geometry.WithPosAlong(c.geom.Point, o, cumulative)
		c.geom.Point = geometry.WithPosAlong(c.geom.Point, geometry.Opposite(o), 0)
		cumulative += geometry.LengthAlong(c.geom.Size, o) + t.sepThickness
	}
}

// setGeometryRecursiveNotify propagates the already-computed geometry of
// id and its descendants to guests and observers.
func (t *Tree) setGeometryRecursiveNotify(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		if n.visible && n.guest != nil {
			n.guest.SetGeometry(t.mapToRoot(n.parent, n.geom))
		}
		t.observer.OnGeometryChanged(id)
		return
	}
	t.observer.OnGeometryChanged(id)
	for _, cid := range n.children {
		t.setGeometryRecursiveNotify(cid)
	}
}
