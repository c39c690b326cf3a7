// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// SeparatorState is the drag state machine of §4.4.
type SeparatorState int

const (
	SeparatorIdle SeparatorState = iota
	SeparatorPressing
	SeparatorDragging
)

// DragMode controls when a separator drag's delta is actually applied to
// the layout.
type DragMode int

const (
	// EagerDrag applies grow-item on every pointer move.
	EagerDrag DragMode = iota
	// LazyDrag defers applying any delta until Release; the host is
	// expected to render a rubber-band at the pending position in the
	// meantime.
	LazyDrag
)

// startDragDistance is the pointer travel, in pixels, a Press must exceed
// before a separator transitions Pressing -> Dragging.
const startDragDistance = 4

// Separator is a value object bound to one container and the boundary
// between exactly two of its visible children (§4.4). It is not part of
// the Tree's arena: hosts create one on Press and discard it on
// Release/Cancel.
type Separator struct {
	tree      *Tree
	container NodeID
	side1     NodeID
	side2     NodeID
	mode      DragMode
	state     SeparatorState

	applied int // total delta already committed to the layout
	pending int // last delta reported by Move, not yet committed (lazy mode)
}

// NewSeparator binds a separator to the boundary between side1 and side2,
// both of which must be visible children of container.
func (t *Tree) NewSeparator(container, side1, side2 NodeID, mode DragMode) *Separator {
	return &Separator{tree: t, container: container, side1: side1, side2: side2, mode: mode}
}

// State reports the separator's current state.
func (s *Separator) State() SeparatorState { return s.state }

// Press begins a potential drag.
func (s *Separator) Press() {
	s.state = SeparatorPressing
	s.applied = 0
	s.pending = 0
}

// Move reports the pointer's signed travel since Press, along the
// container's orientation. Once travel exceeds startDragDistance the
// separator transitions to Dragging; eager mode applies the incremental
// delta immediately, lazy mode only records it.
func (s *Separator) Move(distance int) {
	switch s.state {
	case SeparatorIdle:
		return
	case SeparatorPressing:
		if abs(distance) <= startDragDistance {
			return
		}
		s.state = SeparatorDragging
		s.tree.resizing = true
		fallthrough
	case SeparatorDragging:
		s.pending = distance
		if s.mode == EagerDrag {
			step := distance - s.applied
			applied := s.tree.growAcrossSeparator(s.container, s.side1, s.side2, step)
			s.applied += applied
		}
	}
}

// Release commits a lazy drag's final delta (a no-op in eager mode, where
// every step was already applied) and returns to Idle.
func (s *Separator) Release() {
	if s.state != SeparatorDragging {
		s.state = SeparatorIdle
		return
	}
	if s.mode == LazyDrag {
		step := s.pending - s.applied
		s.tree.growAcrossSeparator(s.container, s.side1, s.side2, step)
	}
	s.state = SeparatorIdle
	s.tree.resizing = false
}

// NotifyPointerReleased is the guard against pointer-event loss described
// in §4.4: a host that discovers (e.g. by polling its platform) that the
// primary button is no longer down despite never having delivered a
// release event calls this to force the same transition Release would
// have performed.
func (s *Separator) NotifyPointerReleased() {
	if s.state == SeparatorDragging {
		s.Release()
	}
}

// Cancel aborts a drag without applying its pending (unapplied) delta,
// per §5's cancellation rule. Increments already committed by eager mode
// are not unwound; only the step that hasn't landed yet is discarded.
func (s *Separator) Cancel() {
	s.state = SeparatorIdle
	s.tree.resizing = false
}

// growAcrossSeparator moves delta pixels from side2 to side1 (or the
// reverse, for negative delta) along container's orientation, clamping so
// neither drops below its minimum, and returns the amount actually
// applied.
func (t *Tree) growAcrossSeparator(container, side1, side2 NodeID, delta int) int {
	if delta == 0 {
		return 0
	}
	cn := t.get(container)
	s1, s2 := t.get(side1), t.get(side2)
	if cn == nil || s1 == nil || s2 == nil {
		return 0
	}
	o := cn.orientation

	len1 := geometry.LengthAlong(s1.geom.Size, o)
	len2 := geometry.LengthAlong(s2.geom.Size, o)
	min1 := geometry.LengthAlong(t.MinSize(side1), o)
	min2 := geometry.LengthAlong(t.MinSize(side2), o)

	if delta > 0 {
		delta = min(delta, len2-min2)
	} else {
		delta = max(delta, -(len1 - min1))
	}
	if delta == 0 {
		return 0
	}

	s1.geom.Size = geometry.WithLengthAlong(s1.geom.Size, o, len1+delta)
	s2.geom.Size = geometry.WithLengthAlong(s2.geom.Size, o, len2-delta)

	if t.isContainer(side1) {
		t.resizeContainer(side1)
	}
	if t.isContainer(side2) {
		t.resizeContainer(side2)
	}
	t.positionItems(container)
	t.updateChildPercentages(container)
	t.setGeometryRecursiveNotify(container)
	return delta
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
