// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import (
	"testing"

	"github.com/klardock/docklayout/pkg/geometry"
)

// TestRemoveGuestSoftLeavesPlaceholder covers RemoveGuest(hardRemove =
// false): the leaf survives as a hidden placeholder rather than being
// removed from the tree.
func TestRemoveGuestSoftLeavesPlaceholder(t *testing.T) {
	t.Parallel()

	engine := NewEngine(geometry.Size{W: 1000, H: 1000})
	root := engine.Tree().Root()
	min := geometry.Size{W: 100, H: 100}

	l1, err := engine.AddGuest(newFakeGuest("l1", min), root, root, geometry.LocationLeft)
	if err != nil {
		t.Fatalf("AddGuest(l1): %v", err)
	}
	if _, err := engine.AddGuest(newFakeGuest("l2", min), root, root, geometry.LocationRight); err != nil {
		t.Fatalf("AddGuest(l2): %v", err)
	}

	engine.RemoveGuest(l1, false)
	if engine.Tree().IsVisible(l1) {
		t.Errorf("l1 should be hidden after a soft RemoveGuest")
	}
	if _, ok := engine.Tree().nodes[l1]; !ok {
		t.Errorf("l1 should still exist in the tree after a soft RemoveGuest")
	}
	if err := engine.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity: %v", err)
	}
}

// TestRemoveGuestHardDestroysLeaf covers RemoveGuest(hardRemove = true):
// the leaf is gone entirely, and the sole remaining sibling reclaims the
// freed space.
func TestRemoveGuestHardDestroysLeaf(t *testing.T) {
	t.Parallel()

	engine := NewEngine(geometry.Size{W: 1000, H: 1000})
	root := engine.Tree().Root()
	min := geometry.Size{W: 100, H: 100}

	l1, err := engine.AddGuest(newFakeGuest("l1", min), root, root, geometry.LocationLeft)
	if err != nil {
		t.Fatalf("AddGuest(l1): %v", err)
	}
	l2, err := engine.AddGuest(newFakeGuest("l2", min), root, root, geometry.LocationRight)
	if err != nil {
		t.Fatalf("AddGuest(l2): %v", err)
	}

	engine.RemoveGuest(l1, true)
	if _, ok := engine.Tree().nodes[l1]; ok {
		t.Errorf("l1 should no longer exist in the tree after a hard RemoveGuest")
	}
	if got := engine.Tree().Geometry(l2).W; got != 1000 {
		t.Errorf("l2.width after hard remove = %d, want 1000 (reclaimed the whole root)", got)
	}
	if err := engine.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity: %v", err)
	}
}

// TestLastPositionFirstRestoreWins covers §4.5: two holders over the same
// placeholder, the first Restore call wins and the second fails with
// ErrAlreadyRestored.
func TestLastPositionFirstRestoreWins(t *testing.T) {
	t.Parallel()

	engine := NewEngine(geometry.Size{W: 1000, H: 1000})
	root := engine.Tree().Root()
	min := geometry.Size{W: 100, H: 100}

	l1, err := engine.AddGuest(newFakeGuest("l1", min), root, root, geometry.LocationLeft)
	if err != nil {
		t.Fatalf("AddGuest(l1): %v", err)
	}
	if _, err := engine.AddGuest(newFakeGuest("l2", min), root, root, geometry.LocationRight); err != nil {
		t.Fatalf("AddGuest(l2): %v", err)
	}

	engine.RemoveGuest(l1, false)

	tree := engine.Tree()
	lp1 := tree.NewLastPosition(l1)
	lp2 := tree.NewLastPosition(l1)

	if err := lp1.Restore(newFakeGuest("l1-a", min)); err != nil {
		t.Fatalf("lp1.Restore: %v", err)
	}
	if err := lp2.Restore(newFakeGuest("l1-b", min)); err != ErrAlreadyRestored {
		t.Fatalf("lp2.Restore error = %v, want ErrAlreadyRestored", err)
	}

	lp1.Release()
	lp2.Release()
	if err := engine.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity: %v", err)
	}
}

// TestLastPositionLastUnrefWhileHiddenRemoves covers the other half of
// §4.5: if every holder releases while the leaf is still hidden (nobody
// ever restored it), the leaf is removed once the ref count hits zero.
func TestLastPositionLastUnrefWhileHiddenRemoves(t *testing.T) {
	t.Parallel()

	engine := NewEngine(geometry.Size{W: 1000, H: 1000})
	root := engine.Tree().Root()
	min := geometry.Size{W: 100, H: 100}

	l1, err := engine.AddGuest(newFakeGuest("l1", min), root, root, geometry.LocationLeft)
	if err != nil {
		t.Fatalf("AddGuest(l1): %v", err)
	}
	l2, err := engine.AddGuest(newFakeGuest("l2", min), root, root, geometry.LocationRight)
	if err != nil {
		t.Fatalf("AddGuest(l2): %v", err)
	}

	engine.RemoveGuest(l1, false)

	tree := engine.Tree()
	lp1 := tree.NewLastPosition(l1)
	lp2 := tree.NewLastPosition(l1)
	if got := tree.RefCount(l1); got != 2 {
		t.Fatalf("RefCount after two holders = %d, want 2", got)
	}

	lp1.Release()
	if _, ok := tree.nodes[l1]; !ok {
		t.Fatalf("l1 should still exist after only one of two refs released")
	}

	lp2.Release()
	if _, ok := tree.nodes[l1]; ok {
		t.Errorf("l1 should be removed once its last ref is released while hidden")
	}
	if got := tree.Geometry(l2).W; got != 1000 {
		t.Errorf("l2.width after last-unref removal = %d, want 1000", got)
	}
	if err := engine.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity: %v", err)
	}
}

// TestSuggestDropRectIsRootRelativeInNestedContainer covers the façade's
// root-relative mapping: a drop suggestion computed inside a nested
// sub-container must come back in root coordinates, not relative to that
// sub-container's own origin.
func TestSuggestDropRectIsRootRelativeInNestedContainer(t *testing.T) {
	t.Parallel()

	engine := NewEngine(geometry.Size{W: 1000, H: 1000})
	root := engine.Tree().Root()
	min := geometry.Size{W: 100, H: 100}

	l1, err := engine.AddGuest(newFakeGuest("l1", min), root, root, geometry.LocationLeft)
	if err != nil {
		t.Fatalf("AddGuest(l1): %v", err)
	}
	l2, err := engine.AddGuest(newFakeGuest("l2", min), root, root, geometry.LocationRight)
	if err != nil {
		t.Fatalf("AddGuest(l2): %v", err)
	}
	_, err = engine.AddGuest(newFakeGuest("l3", min), root, l2, geometry.LocationBottom)
	if err != nil {
		t.Fatalf("AddGuest(l3): %v", err)
	}

	tree := engine.Tree()
	sub := tree.ParentOf(l2)
	if sub == root {
		t.Fatalf("expected l2/l3 to live in a nested sub-container, got root directly")
	}

	rect, err := engine.SuggestDropRect(sub, geometry.Size{W: 50, H: 50}, l2, geometry.LocationTop)
	if err != nil {
		t.Fatalf("SuggestDropRect: %v", err)
	}

	subOrigin := tree.MapRectToRoot(sub, geometry.Rect{})
	if rect.X < subOrigin.X || rect.Y < subOrigin.Y {
		t.Errorf("SuggestDropRect = %+v, expected root-relative coordinates at or past sub's origin %+v", rect, subOrigin)
	}
	if got, want := rect.X, tree.Geometry(l1).W+tree.SeparatorThickness(); got < want {
		t.Errorf("SuggestDropRect.X = %d, want >= %d (past l1 and its separator)", got, want)
	}
}
