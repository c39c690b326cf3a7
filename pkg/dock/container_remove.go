// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

// RemoveItem implements §4.2 "Remove (item, hardRemove)". If hardRemove
// (or item was already a placeholder being finally released), item is
// unlinked and destroyed outright; otherwise it is turned into a
// placeholder. Either way, if the parent container is now
// empty-of-visible-children and isn't root, the parent removes itself
// from its own parent recursively; otherwise the freed space is absorbed
// by grow-neighbours.
func (t *Tree) RemoveItem(item NodeID, hardRemove bool) {
	n := t.get(item)
	if n == nil || n.isRoot() {
		return
	}
	container := n.parent

	alreadyPlaceholder := n.isLeaf() && !n.visible

	if !hardRemove && alreadyPlaceholder {
		return
	}

	// Capture the flanking visible siblings before mutating anything:
	// hardRemove unlinks item outright, after which its former index is
	// unrecoverable.
	side1 := t.visibleBracketLeft(container, item)
	side2 := t.visibleBracketRight(container, item)

	if hardRemove {
		t.unlinkAndDestroy(container, item)
	} else {
		if n.guest != nil {
			n.guest.SetVisible(false)
			n.guest = nil
		}
		n.visible = false
		n.percentage = 0
		t.observer.OnVisibilityChanged(item)
	}

	cn := t.get(container)
	if cn == nil {
		return
	}
	containerEmpty := hardRemove && len(cn.children) == 0
	containerNoVisible := !hardRemove && !t.HasVisibleChildren(container)

	if !cn.isRoot() && (containerEmpty || containerNoVisible) {
		t.RemoveItem(container, hardRemove)
		return
	}

	t.growNeighbours(container, side1, side2)
	t.updateChildPercentages(container)
	t.observer.OnStructureChanged()
}

// unlinkAndDestroy removes item from container's child list and
// recursively destroys it (and, for a container, all its descendants),
// detaching any guest first.
func (t *Tree) unlinkAndDestroy(container, item NodeID) {
	n := t.get(item)
	if n == nil {
		return
	}
	if n.isContainer() {
		for _, c := range n.children {
			t.unlinkAndDestroy(item, c)
		}
	} else if n.guest != nil {
		n.guest.SetVisible(false)
		n.guest = nil
	}

	cn := t.get(container)
	if cn != nil {
		idx := t.IndexOfChild(container, item)
		if idx != -1 {
			cn.children = append(cn.children[:idx], cn.children[idx+1:]...)
		}
	}
	delete(t.nodes, item)
}

// visibleBracketLeft/Right find the nearest visible siblings flanking
// item's slot in container. RemoveItem calls them before it unlinks or
// hides item; once item has been unlinked they return -1.
func (t *Tree) visibleBracketLeft(container, item NodeID) NodeID {
	cn := t.get(container)
	if cn == nil {
		return -1
	}
	idx := t.IndexOfChild(container, item)
	if idx == -1 {
		// item already unlinked: its former slot is not recoverable, so
		// there is nothing to search relative to. RemoveItem captures the
		// brackets before unlinking for this reason.
		return -1
	}
	for i := idx - 1; i >= 0; i-- {
		if t.IsVisible(cn.children[i]) {
			return cn.children[i]
		}
	}
	return -1
}

func (t *Tree) visibleBracketRight(container, item NodeID) NodeID {
	cn := t.get(container)
	if cn == nil {
		return -1
	}
	idx := t.IndexOfChild(container, item)
	if idx == -1 {
		return -1
	}
	for i := idx + 1; i < len(cn.children); i++ {
		if t.IsVisible(cn.children[i]) {
			return cn.children[i]
		}
	}
	return -1
}
