// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package geometry

import "testing"

func TestOrientationFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  Location
		want Orientation
	}{
		{name: "left is horizontal", loc: LocationLeft, want: Horizontal},
		{name: "right is horizontal", loc: LocationRight, want: Horizontal},
		{name: "top is vertical", loc: LocationTop, want: Vertical},
		{name: "bottom is vertical", loc: LocationBottom, want: Vertical},
		{name: "none defaults vertical", loc: LocationNone, want: Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := OrientationFor(tt.loc); got != tt.want {
				t.Errorf("OrientationFor(%v) = %v, want %v", tt.loc, got, tt.want)
			}
		})
	}
}

func TestLengthAlongAndPosAlong(t *testing.T) {
	t.Parallel()

	sz := Size{W: 100, H: 200}
	if got := LengthAlong(sz, Horizontal); got != 100 {
		t.Errorf("LengthAlong horizontal = %d, want 100", got)
	}
	if got := LengthAlong(sz, Vertical); got != 200 {
		t.Errorf("LengthAlong vertical = %d, want 200", got)
	}

	p := Point{X: 5, Y: 9}
	if got := PosAlong(p, Horizontal); got != 5 {
		t.Errorf("PosAlong horizontal = %d, want 5", got)
	}
	if got := PosAlong(p, Vertical); got != 9 {
		t.Errorf("PosAlong vertical = %d, want 9", got)
	}
}

func TestOppositeLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		loc  Location
		want Location
	}{
		{LocationLeft, LocationRight},
		{LocationRight, LocationLeft},
		{LocationTop, LocationBottom},
		{LocationBottom, LocationTop},
	}

	for _, tt := range tests {
		if got := Opposite2(tt.loc); got != tt.want {
			t.Errorf("Opposite2(%v) = %v, want %v", tt.loc, got, tt.want)
		}
	}
}

func TestCovers(t *testing.T) {
	t.Parallel()

	if !Covers(Size{W: 100, H: 100}, Size{W: 80, H: 90}) {
		t.Error("expected 100x100 to cover 80x90")
	}
	if Covers(Size{W: 70, H: 100}, Size{W: 80, H: 90}) {
		t.Error("expected 70x100 to not cover 80x90")
	}
}

func TestFuzzyEqual(t *testing.T) {
	t.Parallel()

	if !FuzzyEqual(1.0, 0.9999999, 0.001) {
		t.Error("expected near-1.0 values to be fuzzy-equal")
	}
	if FuzzyEqual(1.0, 0.9, 0.001) {
		t.Error("expected 1.0 and 0.9 to not be fuzzy-equal")
	}
}
