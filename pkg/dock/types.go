// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package dock implements the recursive docking-layout engine: a tree of
// splittable containers and leaf items, sized such that every item
// respects its minimum, space is redistributed proportionally on resize,
// and hidden items can be restored to their prior relative position.
package dock

import "github.com/klardock/docklayout/pkg/geometry"

// NodeID identifies a node within a [Tree]'s arena. Children reference
// their parent, and containers their children, by NodeID rather than by
// pointer, so that the tree can be walked and reparented without raw
// back-pointers (see the design notes on arena-indexed parents).
type NodeID int

// noParent marks a node with no parent: the root.
const noParent NodeID = -1

// Kind tags a node as one of the two Item variants.
type Kind int

const (
	KindLeaf Kind = iota
	KindContainer
)

// GrowthStrategy controls how grow-item distributes pixels to neighbours.
type GrowthStrategy int

const (
	// BothSidesEqually splits the requested growth between both
	// neighbouring sides around the target item.
	BothSidesEqually GrowthStrategy = iota
)

// SizingOption names whether an insertion calculates a size for the
// incoming item or uses whatever size it was already carrying. No function
// in this package takes a SizingOption; insertions always calculate.
type SizingOption int

const (
	SizingCalculate SizingOption = iota
	SizingUseProvided
)

// DefaultMinSize is the hardcoded floor every item's minimum size is
// clamped to, per the engine's sizing policy.
var DefaultMinSize = geometry.Size{W: 80, H: 90}

// DefaultSeparatorThickness is the pixel gap rendered between two
// neighbouring visible children of a container.
const DefaultSeparatorThickness = 5

// Guest is the capability a client widget implements so the engine can
// host it inside a leaf item without knowing anything about its concrete
// type.
type Guest interface {
	// MinSize returns the guest's current minimum size in pixels.
	MinSize() geometry.Size
	// MaxSize returns the guest's current maximum size in pixels.
	MaxSize() geometry.Size
	// SetGeometry positions the guest at rect, in root-relative coordinates.
	SetGeometry(rect geometry.Rect)
	// SetVisible is invoked when the hosting leaf transitions visible <-> placeholder.
	SetVisible(visible bool)
	// StableID returns an identifier stable across save/restore, used by the serializer.
	StableID() string
}

// Observer receives synchronous notifications after the tree has
// re-established its invariants inside a mutating operation.
type Observer interface {
	OnGeometryChanged(id NodeID)
	OnVisibilityChanged(id NodeID)
	OnMinSizeChanged(id NodeID)
	OnStructureChanged()
}

// NopObserver implements Observer with no-ops, for callers that don't
// need notifications.
type NopObserver struct{}

func (NopObserver) OnGeometryChanged(NodeID)  {}
func (NopObserver) OnVisibilityChanged(NodeID) {}
func (NopObserver) OnMinSizeChanged(NodeID)    {}
func (NopObserver) OnStructureChanged()        {}

// node is the tagged-variant representation of an Item: the fields above
// the kind-specific block are common to leaves and containers; the ones
// below dispatch on kind.
type node struct {
	kind   Kind
	id     NodeID
	parent NodeID

	geom       geometry.Rect
	minSize    geometry.Size
	maxSize    geometry.Size
	percentage float64 // percentage-within-parent; 0 while hidden
	visible    bool
	refCount   int

	// leaf-only
	guest    Guest
	guestID  string // stable id, retained across placeholder transitions for serialization
	restored bool   // guards AlreadyRestored: true once a guest has been (re)attached

	// container-only
	orientation    geometry.Orientation
	hasOrientation bool
	children       []NodeID
}

func (n *node) isContainer() bool { return n.kind == KindContainer }
func (n *node) isLeaf() bool      { return n.kind == KindLeaf }
func (n *node) isRoot() bool      { return n.parent == noParent }

// isPlaceholder reports whether a leaf is hidden. Containers are never
// placeholders themselves.
func (n *node) isPlaceholder() bool { return n.kind == KindLeaf && !n.visible }
