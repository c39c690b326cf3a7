// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import (
	"encoding/json"
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/klardock/docklayout/pkg/geometry"
)

// CurrentSerializationVersion is the version this package writes and the
// highest it will read (§4.6, §6).
const CurrentSerializationVersion = 3

// wireNode is the JSON shape of both ContainerNode and LeafNode from §6;
// a single struct covers both since JSON decoding is tolerant of the
// fields the other kind doesn't use.
type wireNode struct {
	Kind        string          `json:"kind"`
	Orientation string          `json:"orientation,omitempty"`
	Children    []*wireNode     `json:"children,omitempty"`
	GuestID     string          `json:"guestId,omitempty"`
	Visible     *bool           `json:"visible,omitempty"`
	Geometry    *geometry.Rect  `json:"geometry,omitempty"`
	MinSize     *geometry.Size  `json:"minSize,omitempty"`
	Percentage  *float64        `json:"percentage,omitempty"`
}

type document struct {
	SerializationVersion int            `json:"serializationVersion"`
	RootSize             geometry.Size  `json:"rootSize"`
	ScreenSize           *geometry.Size `json:"screenSize,omitempty"` // v2 field name, accepted on read
	MinSize              geometry.Size  `json:"minSize"`
	Root                 *wireNode      `json:"root"`
}

// Marshal serializes the tree per §4.6/§6: containers contribute their
// orientation and ordered children; leaves (visible or placeholder)
// contribute their percentage, min size, root-relative geometry, and
// their guest's stable id.
func (t *Tree) Marshal() ([]byte, error) {
	doc := document{
		SerializationVersion: CurrentSerializationVersion,
		RootSize:             t.rootNode().geom.Size,
		MinSize:              t.minFloor,
		Root:                 t.toWire(t.rootID),
	}
	return json.MarshalIndent(&doc, "", "  ")
}

func (t *Tree) toWire(id NodeID) *wireNode {
	n := t.get(id)
	if n.isLeaf() {
		if n.guestID == "" {
			n.guestID = ksuid.New().String()
		}
		visible := n.visible
		geom := t.mapToRoot(n.parent, n.geom)
		minSize := n.minSize
		pct := n.percentage
		return &wireNode{
			Kind:       "leaf",
			GuestID:    n.guestID,
			Visible:    &visible,
			Geometry:   &geom,
			MinSize:    &minSize,
			Percentage: &pct,
		}
	}
	w := &wireNode{Kind: "container", Orientation: orientationString(n.orientation)}
	for _, c := range n.children {
		w.Children = append(w.Children, t.toWire(c))
	}
	return w
}

func orientationString(o geometry.Orientation) string {
	if o == geometry.Vertical {
		return "v"
	}
	return "h"
}

func orientationFromString(s string) geometry.Orientation {
	if s == "v" {
		return geometry.Vertical
	}
	return geometry.Horizontal
}

// UnmarshalOptions controls the "Rescaling on restore" behaviour of §4.6.
type UnmarshalOptions struct {
	// HostSize is the current host size at restore time. Zero value means
	// "use the document's saved root size unchanged".
	HostSize geometry.Size
	// RelativeToHostSize, when HostSize differs from the document's saved
	// root size, rescales every absolute coordinate by
	// (currentSize/savedSize) along each axis, re-deriving geometry from
	// percentages along each container's orientation. When false, the
	// layout is restored at its saved absolute sizes and the root is
	// grown (never shrunk) to at least HostSize.
	RelativeToHostSize bool
}

// Unmarshal reconstructs a Tree from data written by Marshal (or by the
// original implementation's v1/v2 writers; see the migration notes
// below). It returns the tree and a map from guest stable id to the
// NodeID of the leaf that held it, so the host can rebind real Guest
// instances with Tree.RebindGuest.
func Unmarshal(data []byte, opts UnmarshalOptions) (*Tree, map[string]NodeID, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("dock: serialize: decode: %w", err)
	}
	if doc.SerializationVersion > CurrentSerializationVersion {
		return nil, nil, ErrSerializationVersionMismatch
	}
	if doc.SerializationVersion <= 2 && doc.ScreenSize != nil && doc.RootSize == (geometry.Size{}) {
		// v2 wrote the root size under "screenSize"; v1 predates the
		// field's rename entirely and is read the same way.
		doc.RootSize = *doc.ScreenSize
	}
	if doc.Root == nil {
		return nil, nil, fmt.Errorf("dock: serialize: document has no root node")
	}

	t := &Tree{
		nodes:        make(map[NodeID]*node),
		sepThickness: DefaultSeparatorThickness,
		minFloor:     geometry.Max(doc.MinSize, DefaultMinSize),
		observer:     NopObserver{},
	}
	rootID, err := t.buildFromWire(noParent, doc.Root)
	if err != nil {
		return nil, nil, err
	}
	t.rootID = rootID

	absolute := make(map[NodeID]geometry.Rect, len(t.nodes))
	t.computeAbsolute(t.rootID, absolute)
	t.applyParentRelative(t.rootID, absolute, geometry.Point{})
	t.rootNode().geom.Size = doc.RootSize
	t.Walk(func(id NodeID) {
		if t.isContainer(id) {
			t.updateChildPercentages(id)
		}
	})

	if opts.HostSize != (geometry.Size{}) && opts.HostSize != doc.RootSize {
		if opts.RelativeToHostSize {
			t.rootNode().geom.Size = opts.HostSize
			t.resizeContainer(t.rootID)
			t.positionItems(t.rootID)
		} else {
			t.rootNode().geom.Size = geometry.Max(opts.HostSize, doc.RootSize)
		}
	}

	guestIDs := make(map[string]NodeID)
	t.collectGuestIDs(t.rootID, guestIDs)
	return t, guestIDs, nil
}

func (t *Tree) buildFromWire(parent NodeID, w *wireNode) (NodeID, error) {
	switch w.Kind {
	case "container":
		n := &node{
			kind:           KindContainer,
			parent:         parent,
			minSize:        t.minFloor,
			maxSize:        geometry.Size{W: 1 << 30, H: 1 << 30},
			visible:        true,
			orientation:    orientationFromString(w.Orientation),
			hasOrientation: w.Orientation != "",
		}
		id := t.insertNode(n)
		for _, cw := range w.Children {
			cid, err := t.buildFromWire(id, cw)
			if err != nil {
				return noParent, err
			}
			n.children = append(n.children, cid)
		}
		return id, nil
	case "leaf":
		visible := w.Visible != nil && *w.Visible
		var geom geometry.Rect
		if w.Geometry != nil {
			geom = *w.Geometry
		}
		minSize := t.minFloor
		if w.MinSize != nil {
			minSize = geometry.Max(*w.MinSize, t.minFloor)
		}
		pct := 0.0
		if w.Percentage != nil {
			pct = *w.Percentage
		}
		n := &node{
			kind:       KindLeaf,
			parent:     parent,
			geom:       geom, // holds the wire's root-relative rect until computeAbsolute/applyParentRelative run
			minSize:    minSize,
			maxSize:    geometry.Size{W: 1 << 30, H: 1 << 30},
			visible:    visible,
			percentage: pct,
			guestID:    w.GuestID,
		}
		return t.insertNode(n), nil
	default:
		return noParent, fmt.Errorf("dock: serialize: unknown node kind %q", w.Kind)
	}
}

// computeAbsolute fills absolute[id] with id's root-relative rect: for a
// leaf, exactly what the wire format recorded; for a container, the
// bounding box of its children's root-relative rects (recursing first).
func (t *Tree) computeAbsolute(id NodeID, absolute map[NodeID]geometry.Rect) {
	n := t.get(id)
	if n.isLeaf() {
		absolute[id] = n.geom
		return
	}
	var box geometry.Rect
	first := true
	for _, c := range n.children {
		t.computeAbsolute(c, absolute)
		cr := absolute[c]
		if first {
			box = cr
			first = false
			continue
		}
		minX, minY := min(box.X, cr.X), min(box.Y, cr.Y)
		maxX, maxY := max(box.X+box.W, cr.X+cr.W), max(box.Y+box.H, cr.Y+cr.H)
		box = geometry.Rect{Point: geometry.Point{X: minX, Y: minY}, Size: geometry.Size{W: maxX - minX, H: maxY - minY}}
	}
	absolute[id] = box
}

// applyParentRelative converts every node's geom from the root-relative
// value computed by computeAbsolute to parent-relative, the form node.geom
// is kept in everywhere else in this package.
func (t *Tree) applyParentRelative(id NodeID, absolute map[NodeID]geometry.Rect, parentOrigin geometry.Point) {
	n := t.get(id)
	abs := absolute[id]
	n.geom = geometry.Rect{
		Point: geometry.Point{X: abs.X - parentOrigin.X, Y: abs.Y - parentOrigin.Y},
		Size:  abs.Size,
	}
	if n.isContainer() {
		for _, c := range n.children {
			t.applyParentRelative(c, absolute, abs.Point)
		}
	}
}

func (t *Tree) collectGuestIDs(id NodeID, out map[string]NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	if n.isLeaf() {
		if n.guestID != "" {
			out[n.guestID] = id
		}
		return
	}
	for _, c := range n.children {
		t.collectGuestIDs(c, out)
	}
}
