// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package geometry provides the sizing primitives shared by the dock
// layout engine: points, sizes, rectangles, orientations, sides, and the
// drop locations used when inserting a new pane relative to an anchor.
package geometry

// Orientation is the axis a container lays its children out along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Opposite returns the orientation perpendicular to o.
func Opposite(o Orientation) Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Side identifies one of the two neighbours flanking an item along its
// container's orientation.
type Side int

const (
	Side1 Side = iota
	Side2
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// Location is a drop location relative to an anchor item.
type Location int

const (
	LocationNone Location = iota
	LocationLeft
	LocationTop
	LocationRight
	LocationBottom
)

// OrientationFor returns the orientation a Location implies.
func OrientationFor(loc Location) Orientation {
	switch loc {
	case LocationLeft, LocationRight:
		return Horizontal
	default:
		return Vertical
	}
}

// IsSide1 reports whether loc inserts on the leading side (left/top).
func IsSide1(loc Location) bool {
	return loc == LocationLeft || loc == LocationTop
}

// IsSide2 reports whether loc inserts on the trailing side (right/bottom).
func IsSide2(loc Location) bool {
	return loc == LocationRight || loc == LocationBottom
}

// Opposite2 returns the location on the other side along the same orientation.
func Opposite2(loc Location) Location {
	switch loc {
	case LocationLeft:
		return LocationRight
	case LocationRight:
		return LocationLeft
	case LocationTop:
		return LocationBottom
	case LocationBottom:
		return LocationTop
	default:
		return LocationNone
	}
}

// Adjacent returns the location 90 degrees clockwise from loc.
func Adjacent(loc Location) Location {
	switch loc {
	case LocationLeft:
		return LocationTop
	case LocationTop:
		return LocationRight
	case LocationRight:
		return LocationBottom
	case LocationBottom:
		return LocationLeft
	default:
		return LocationNone
	}
}

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is an integer pixel width/height pair.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Rect is a position plus size, position relative to the owning parent
// unless stated otherwise.
type Rect struct {
	Point
	Size
}

// PosAlong returns the coordinate of p along o.
func PosAlong(p Point, o Orientation) int {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// LengthAlong returns the extent of sz along o.
func LengthAlong(sz Size, o Orientation) int {
	if o == Vertical {
		return sz.H
	}
	return sz.W
}

// WithLengthAlong returns sz with its extent along o replaced by length.
func WithLengthAlong(sz Size, o Orientation, length int) Size {
	if o == Vertical {
		sz.H = length
		return sz
	}
	sz.W = length
	return sz
}

// WithPosAlong returns p with its coordinate along o replaced by pos.
func WithPosAlong(p Point, o Orientation, pos int) Point {
	if o == Vertical {
		p.Y = pos
		return p
	}
	p.X = pos
	return p
}

// Covers reports whether sz componentwise dominates min.
func Covers(sz, min Size) bool {
	return sz.W >= min.W && sz.H >= min.H
}

// Max returns the componentwise maximum of a and b.
func Max(a, b Size) Size {
	return Size{W: max(a.W, b.W), H: max(a.H, b.H)}
}

// Clamp clamps v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FuzzyEqual reports whether a and b are within eps of each other, used for
// the percentage-sum invariant which accumulates floating point error.
func FuzzyEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
