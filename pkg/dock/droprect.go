// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// SuggestedDropRect implements §4.3: given a prospective pane of minSize,
// an anchor (or -1 for "relative to the root"), and a location, computes
// the rectangle the new pane would occupy, in the coordinate system of
// the owning container. Use mapToRoot-equivalent logic at the call site
// (MapRectToRoot) to lift it to root coordinates.
func (t *Tree) SuggestedDropRect(container NodeID, minSize geometry.Size, anchor NodeID, loc geometry.Location) (geometry.Rect, error) {
	if loc == geometry.LocationNone {
		return geometry.Rect{}, ErrInvalidLocation
	}
	cn := t.get(container)
	if cn == nil || !cn.isContainer() {
		return geometry.Rect{}, ErrNotContainer
	}
	if anchor != -1 {
		an := t.get(anchor)
		if an == nil {
			return geometry.Rect{}, ErrUnknownAnchor
		}
		if an.parent != container {
			return geometry.Rect{}, ErrUnknownAnchor
		}
		if !an.visible {
			return geometry.Rect{}, ErrUnknownAnchor
		}
	}

	o := cn.orientation
	itemMin := geometry.LengthAlong(minSize, o)
	available := t.AvailableLength(container) - t.sepThickness
	vis := t.VisibleChildren(container)

	if anchor != -1 && len(vis) == 1 {
		anchor = -1
	}

	if anchor != -1 {
		equitable := t.UsableLength(container) / (len(cn.children) + 1)
		suggestedLength := max(min(available, equitable), itemMin)

		idx := 0
		for i, v := range vis {
			if v == anchor {
				idx = i
				break
			}
		}
		an := t.get(anchor)
		relPos := geometry.PosAlong(an.geom.Point, o)

		var suggestedPos int
		reqOrientation := geometry.OrientationFor(loc)

		if reqOrientation == o {
			if geometry.IsSide1(loc) {
				if idx == 0 {
					suggestedPos = 0
				} else {
					s1 := t.lengthOnSide(vis, idx-1, geometry.Side1, o)
					s2 := t.lengthOnSide(vis, idx, geometry.Side2, o)
					min1 := relPos - s1.available()
					max2 := relPos + s2.available() - suggestedLength
					suggestedPos = geometry.Clamp(relPos-suggestedLength/2, min1, max2)
				}
			} else {
				if idx == len(vis)-1 {
					suggestedPos = geometry.LengthAlong(cn.geom.Size, o) - suggestedLength
				} else {
					anLen := geometry.LengthAlong(an.geom.Size, o)
					s1 := t.lengthOnSide(vis, idx, geometry.Side1, o)
					s2 := t.lengthOnSide(vis, idx+1, geometry.Side2, o)
					min1 := relPos + anLen - s1.available()
					max2 := relPos + anLen + s2.available() - suggestedLength
					suggestedPos = geometry.Clamp(relPos+anLen-suggestedLength/2, min1, max2)
				}
			}

			var rect geometry.Rect
			if o == geometry.Vertical {
				rect.Point = geometry.Point{X: an.geom.X, Y: suggestedPos}
				rect.Size = geometry.Size{W: an.geom.W, H: suggestedLength}
			} else {
				rect.Point = geometry.Point{X: suggestedPos, Y: an.geom.Y}
				rect.Size = geometry.Size{W: suggestedLength, H: an.geom.H}
			}
			return rect, nil
		}

		// Orthogonal to the container's orientation: collapse to half the
		// anchor's orthogonal extent, positioned at the matching edge.
		var rect geometry.Rect
		switch loc {
		case geometry.LocationLeft:
			rect = geometry.Rect{Point: an.geom.Point, Size: geometry.Size{W: suggestedLength, H: an.geom.H}}
		case geometry.LocationTop:
			rect = geometry.Rect{Point: an.geom.Point, Size: geometry.Size{W: an.geom.W, H: suggestedLength}}
		case geometry.LocationRight:
			rect = geometry.Rect{
				Point: geometry.Point{X: an.geom.X + an.geom.W - suggestedLength, Y: an.geom.Y},
				Size:  geometry.Size{W: suggestedLength, H: an.geom.H},
			}
		case geometry.LocationBottom:
			rect = geometry.Rect{
				Point: geometry.Point{X: an.geom.X, Y: an.geom.Y + an.geom.H - suggestedLength},
				Size:  geometry.Size{W: an.geom.W, H: suggestedLength},
			}
		}
		return rect, nil
	}

	if container != t.rootID {
		// A drop with no anchor only makes sense relative to the root.
		anchor = -1
	}

	rect := geometry.Rect{Size: cn.geom.Size}
	oneThird := geometry.LengthAlong(cn.geom.Size, o) / 3
	suggestedLength := max(min(available, oneThird), itemMin)

	switch loc {
	case geometry.LocationLeft:
		rect.W = suggestedLength
	case geometry.LocationTop:
		rect.H = suggestedLength
	case geometry.LocationRight:
		rect.X = rect.W - suggestedLength
		rect.W = suggestedLength
	case geometry.LocationBottom:
		rect.Y = rect.H - suggestedLength
		rect.H = suggestedLength
	}
	return rect, nil
}

// MapRectToRoot lifts a rectangle expressed in container's coordinate
// system to root-relative coordinates.
func (t *Tree) MapRectToRoot(container NodeID, r geometry.Rect) geometry.Rect {
	return t.mapToRoot(container, r)
}
