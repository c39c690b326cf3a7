// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import (
	"testing"

	"github.com/klardock/docklayout/pkg/geometry"
)

// TestMarshalUnmarshalRoundTrip is property P5: a tree written by Marshal
// and read back by Unmarshal preserves structure, geometry, and guest
// identity.
func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	tree := NewTree(geometry.Size{W: 1000, H: 800})
	root := tree.Root()
	min := geometry.Size{W: 100, H: 100}

	l1 := mustInsertGuest(t, tree, root, root, geometry.LocationLeft, "l1", min)
	l2 := mustInsertGuest(t, tree, root, root, geometry.LocationRight, "l2", min)
	l3 := tree.NewLeaf()
	if err := tree.SetGuest(l3, newFakeGuest("l3", min)); err != nil {
		t.Fatalf("SetGuest(l3): %v", err)
	}
	if err := tree.InsertAtLocation(root, l3, l2, geometry.LocationBottom); err != nil {
		t.Fatalf("InsertAtLocation(l3): %v", err)
	}
	tree.TurnIntoPlaceholder(l1)

	wantL2, wantL3 := tree.Geometry(l2), tree.Geometry(l3)

	data, err := tree.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	restored, guestIDs, err := Unmarshal(data, UnmarshalOptions{})
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := restored.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity after round-trip: %v", err)
	}

	if got := len(guestIDs); got != 3 {
		t.Fatalf("guestIDs has %d entries, want 3", got)
	}
	rl2, ok := guestIDs["l2"]
	if !ok {
		t.Fatalf("guestIDs missing l2")
	}
	rl3, ok := guestIDs["l3"]
	if !ok {
		t.Fatalf("guestIDs missing l3")
	}
	rl1, ok := guestIDs["l1"]
	if !ok {
		t.Fatalf("guestIDs missing l1 (placeholder)")
	}
	if restored.IsVisible(rl1) {
		t.Errorf("l1 should still be a placeholder after round-trip")
	}
	if got := restored.Geometry(rl2); got != wantL2 {
		t.Errorf("l2 geometry after round-trip = %+v, want %+v", got, wantL2)
	}
	if got := restored.Geometry(rl3); got != wantL3 {
		t.Errorf("l3 geometry after round-trip = %+v, want %+v", got, wantL3)
	}
	if got := restored.Geometry(restored.Root()).Size; got != (geometry.Size{W: 1000, H: 800}) {
		t.Errorf("root size after round-trip = %+v, want {1000 800}", got)
	}
}

// TestUnmarshalAcceptsV2ScreenSizeField is the "accept older documents"
// resolution recorded in DESIGN.md: a v2 document stores the root size
// under "screenSize" rather than "rootSize", matching the original
// implementation's own v1/v2 migration.
func TestUnmarshalAcceptsV2ScreenSizeField(t *testing.T) {
	t.Parallel()

	doc := `{
		"serializationVersion": 2,
		"screenSize": {"W": 640, "H": 480},
		"minSize": {"W": 80, "H": 90},
		"root": {
			"kind": "leaf",
			"guestId": "only",
			"visible": true,
			"geometry": {"X": 0, "Y": 0, "W": 640, "H": 480},
			"minSize": {"W": 80, "H": 90},
			"percentage": 1
		}
	}`

	tree, guestIDs, err := Unmarshal([]byte(doc), UnmarshalOptions{})
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := tree.Geometry(tree.Root()).Size; got != (geometry.Size{W: 640, H: 480}) {
		t.Errorf("root size = %+v, want {640 480} (from screenSize)", got)
	}
	if _, ok := guestIDs["only"]; !ok {
		t.Errorf("guestIDs missing %q", "only")
	}
}

// TestUnmarshalRejectsNewerVersion covers the version-mismatch error path.
func TestUnmarshalRejectsNewerVersion(t *testing.T) {
	t.Parallel()

	doc := `{"serializationVersion": 99, "rootSize": {"W": 1, "H": 1}, "minSize": {"W": 1, "H": 1}, "root": {"kind": "leaf"}}`
	_, _, err := Unmarshal([]byte(doc), UnmarshalOptions{})
	if err != ErrSerializationVersionMismatch {
		t.Fatalf("Unmarshal error = %v, want ErrSerializationVersionMismatch", err)
	}
}

// TestUnmarshalRelativeToHostSizeRescales covers the "Rescaling on
// restore" option: a document saved at one size, restored into a
// differently-sized host with RelativeToHostSize, re-derives geometry
// from percentages rather than keeping the saved absolute rects.
func TestUnmarshalRelativeToHostSizeRescales(t *testing.T) {
	t.Parallel()

	tree := NewTree(geometry.Size{W: 1000, H: 1000})
	root := tree.Root()
	min := geometry.Size{W: 100, H: 100}
	mustInsertGuest(t, tree, root, root, geometry.LocationLeft, "l1", min)
	mustInsertGuest(t, tree, root, root, geometry.LocationRight, "l2", min)

	data, err := tree.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	restored, guestIDs, err := Unmarshal(data, UnmarshalOptions{
		HostSize:           geometry.Size{W: 2000, H: 1000},
		RelativeToHostSize: true,
	})
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := restored.CheckSanity(); err != nil {
		t.Fatalf("CheckSanity: %v", err)
	}
	if got := restored.Geometry(restored.Root()).Size; got != (geometry.Size{W: 2000, H: 1000}) {
		t.Errorf("root size = %+v, want {2000 1000}", got)
	}
	rl1, rl2 := guestIDs["l1"], guestIDs["l2"]
	widthSum := restored.Geometry(rl1).W + restored.Geometry(rl2).W
	if got, want := widthSum+restored.SeparatorThickness(), 2000; got != want {
		t.Errorf("l1.width+l2.width+separator = %d, want %d", got, want)
	}
}
