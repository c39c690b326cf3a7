// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "errors"

// Error kinds returned by the engine's public operations. Structural
// validation errors leave the tree unchanged; see SPEC_FULL.md §15 for the
// full propagation policy.
var (
	// ErrAlreadyAttached is returned by SetGuest when a guest is already
	// attached without a prior SetGuest(nil).
	ErrAlreadyAttached = errors.New("dock: leaf already has a guest attached")

	// ErrConstraintViolation is returned when an operation would put an
	// item below its minimum size and no growth (including root growth)
	// is possible.
	ErrConstraintViolation = errors.New("dock: operation would violate a minimum-size constraint")

	// ErrInsufficientSpace is returned when a drop cannot be realized even
	// after attempting to grow the root.
	ErrInsufficientSpace = errors.New("dock: insufficient space for insertion, even after root growth")

	// ErrUnknownAnchor is returned when an anchor passed to an insertion
	// or drop computation isn't part of this tree.
	ErrUnknownAnchor = errors.New("dock: anchor item is not part of this tree")

	// ErrDuplicateInsertion is returned when inserting an item already
	// present in the tree.
	ErrDuplicateInsertion = errors.New("dock: item is already part of this tree")

	// ErrInvalidLocation is returned for LocationNone or any other
	// meaningless location value.
	ErrInvalidLocation = errors.New("dock: invalid or meaningless location")

	// ErrAlreadyRestored is returned by Restore when called on a leaf
	// that is already visible.
	ErrAlreadyRestored = errors.New("dock: leaf is already visible")

	// ErrSerializationVersionMismatch is returned when reading a snapshot
	// whose version exceeds what this reader understands.
	ErrSerializationVersionMismatch = errors.New("dock: serialization version is newer than this reader supports")

	// ErrNotLeaf and ErrNotContainer guard operations against being
	// called on the wrong Item variant.
	ErrNotLeaf      = errors.New("dock: operation only valid on a leaf item")
	ErrNotContainer = errors.New("dock: operation only valid on a container item")

	// ErrUnknownNode is returned when a NodeID doesn't exist in the tree
	// (e.g. was already removed).
	ErrUnknownNode = errors.New("dock: unknown node id")
)
