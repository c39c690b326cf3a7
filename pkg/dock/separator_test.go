// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import (
	"testing"

	"github.com/klardock/docklayout/pkg/geometry"
)

func newSeparatorFixture(t *testing.T) (tree *Tree, l1, l2 NodeID) {
	t.Helper()
	tree = NewTree(geometry.Size{W: 1000, H: 1000})
	root := tree.Root()
	min := geometry.Size{W: 100, H: 100}
	l1 = mustInsertGuest(t, tree, root, root, geometry.LocationLeft, "l1", min)
	l2 = mustInsertGuest(t, tree, root, root, geometry.LocationRight, "l2", min)
	return tree, l1, l2
}

// TestSeparatorEagerDragAppliesIncrementally covers eager mode: every Move
// past the drag threshold immediately moves pixels from one side to the
// other.
func TestSeparatorEagerDragAppliesIncrementally(t *testing.T) {
	t.Parallel()

	tree, l1, l2 := newSeparatorFixture(t)
	root := tree.Root()
	l1Before, l2Before := tree.Geometry(l1).W, tree.Geometry(l2).W

	sep := tree.NewSeparator(root, l1, l2, EagerDrag)
	sep.Press()
	if got := sep.State(); got != SeparatorPressing {
		t.Fatalf("State() after Press = %v, want Pressing", got)
	}

	sep.Move(2) // below startDragDistance: no transition, no effect
	if got := sep.State(); got != SeparatorPressing {
		t.Fatalf("State() after small Move = %v, want Pressing", got)
	}
	if got := tree.Geometry(l1).W; got != l1Before {
		t.Errorf("l1.width changed on sub-threshold Move: got %d, want %d", got, l1Before)
	}

	sep.Move(-50)
	if got := sep.State(); got != SeparatorDragging {
		t.Fatalf("State() after large Move = %v, want Dragging", got)
	}
	if got := tree.Geometry(l1).W; got != l1Before-50 {
		t.Errorf("l1.width after Move(-50) = %d, want %d", got, l1Before-50)
	}
	if got := tree.Geometry(l2).W; got != l2Before+50 {
		t.Errorf("l2.width after Move(-50) = %d, want %d", got, l2Before+50)
	}
	if err := tree.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity mid-drag: %v", err)
	}

	sep.Release()
	if got := sep.State(); got != SeparatorIdle {
		t.Fatalf("State() after Release = %v, want Idle", got)
	}
}

// TestSeparatorLazyDragDefersUntilRelease covers lazy mode: intermediate
// Move calls record the pending delta without touching the layout; only
// Release commits it.
func TestSeparatorLazyDragDefersUntilRelease(t *testing.T) {
	t.Parallel()

	tree, l1, l2 := newSeparatorFixture(t)
	root := tree.Root()
	l1Before, l2Before := tree.Geometry(l1).W, tree.Geometry(l2).W

	sep := tree.NewSeparator(root, l1, l2, LazyDrag)
	sep.Press()
	sep.Move(-40)
	if got := tree.Geometry(l1).W; got != l1Before {
		t.Errorf("lazy drag applied mid-drag: l1.width = %d, want unchanged %d", got, l1Before)
	}

	sep.Release()
	if got := tree.Geometry(l1).W; got != l1Before-40 {
		t.Errorf("l1.width after Release = %d, want %d", got, l1Before-40)
	}
	if got := tree.Geometry(l2).W; got != l2Before+40 {
		t.Errorf("l2.width after Release = %d, want %d", got, l2Before+40)
	}
}

// TestSeparatorCancelDiscardsPendingDelta covers §5's cancellation rule:
// increments already committed by eager mode stay; only the step that
// hasn't landed yet is discarded, and Cancel never commits a lazy delta.
func TestSeparatorCancelDiscardsPendingDelta(t *testing.T) {
	t.Parallel()

	tree, l1, l2 := newSeparatorFixture(t)
	root := tree.Root()
	l1Before := tree.Geometry(l1).W

	sep := tree.NewSeparator(root, l1, l2, LazyDrag)
	sep.Press()
	sep.Move(30)
	sep.Cancel()

	if got := sep.State(); got != SeparatorIdle {
		t.Fatalf("State() after Cancel = %v, want Idle", got)
	}
	if got := tree.Geometry(l1).W; got != l1Before {
		t.Errorf("l1.width after Cancel = %d, want unchanged %d", got, l1Before)
	}
}

// TestSeparatorNotifyPointerReleasedCommitsLazyDelta covers the
// pointer-release-loss guard: NotifyPointerReleased forces the same
// Dragging->Idle transition Release would, including committing a lazy
// drag's pending delta.
func TestSeparatorNotifyPointerReleasedCommitsLazyDelta(t *testing.T) {
	t.Parallel()

	tree, l1, l2 := newSeparatorFixture(t)
	root := tree.Root()
	l1Before := tree.Geometry(l1).W

	sep := tree.NewSeparator(root, l1, l2, LazyDrag)
	sep.Press()
	sep.Move(-25)

	sep.NotifyPointerReleased()
	if got := sep.State(); got != SeparatorIdle {
		t.Fatalf("State() after NotifyPointerReleased = %v, want Idle", got)
	}
	if got := tree.Geometry(l1).W; got != l1Before-25 {
		t.Errorf("l1.width after NotifyPointerReleased = %d, want %d", got, l1Before-25)
	}

	// A second call, already Idle, must be a no-op rather than re-applying.
	sep.NotifyPointerReleased()
	if got := tree.Geometry(l1).W; got != l1Before-25 {
		t.Errorf("l1.width after second NotifyPointerReleased = %d, want unchanged %d", got, l1Before-25)
	}
}

// TestSeparatorClampsAtNeighbourMinimum covers the neighbour-minimum
// clamp: dragging past what side2 can give up without violating its
// minimum size stops at the clamp, it doesn't overshoot into invalid
// geometry.
func TestSeparatorClampsAtNeighbourMinimum(t *testing.T) {
	t.Parallel()

	tree, l1, l2 := newSeparatorFixture(t)
	root := tree.Root()
	l2MinWidth := tree.MinSize(l2).W

	sep := tree.NewSeparator(root, l1, l2, EagerDrag)
	sep.Press()
	sep.Move(10000)

	if got := tree.Geometry(l2).W; got != l2MinWidth {
		t.Errorf("l2.width after overshoot drag = %d, want clamped to min %d", got, l2MinWidth)
	}
	if err := tree.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity after overshoot drag: %v", err)
	}
}
