// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// growNeighbours implements §4.2 "grow-neighbours": the freed length left
// behind by a removed or hidden item is split equally between its two
// visible neighbours; if only one exists, it absorbs all of it; if
// neither exists, there's nothing to do (the container had exactly one
// visible child, or none).
func (t *Tree) growNeighbours(container, side1, side2 NodeID) {
	cn := t.get(container)
	if cn == nil || !cn.isContainer() {
		return
	}
	o := cn.orientation

	switch {
	case side1 != -1 && side2 != -1:
		s1, s2 := t.get(side1), t.get(side2)
		gap := geometry.PosAlong(s2.geom.Point, o) - (geometry.PosAlong(s1.geom.Point, o) + geometry.LengthAlong(s1.geom.Size, o)) - t.sepThickness
		half := gap / 2
		s1.geom.Size = geometry.WithLengthAlong(s1.geom.Size, o, geometry.LengthAlong(s1.geom.Size, o)+half)
		s2.geom.Size = geometry.WithLengthAlong(s2.geom.Size, o, geometry.LengthAlong(s2.geom.Size, o)+(gap-half))
	case side1 != -1:
		s1 := t.get(side1)
		edge := geometry.PosAlong(cn.geom.Point, o) + geometry.LengthAlong(cn.geom.Size, o)
		_ = edge
		newLen := geometry.LengthAlong(cn.geom.Size, o) - geometry.PosAlong(s1.geom.Point, o)
		s1.geom.Size = geometry.WithLengthAlong(s1.geom.Size, o, newLen)
	case side2 != -1:
		s2 := t.get(side2)
		newLen := geometry.PosAlong(s2.geom.Point, o) + geometry.LengthAlong(s2.geom.Size, o)
		s2.geom.Point = geometry.WithPosAlong(s2.geom.Point, o, 0)
		s2.geom.Size = geometry.WithLengthAlong(s2.geom.Size, o, newLen)
	default:
		return
	}

	if t.isContainer(side1) {
		t.resizeContainer(side1)
	}
	if t.isContainer(side2) {
		t.resizeContainer(side2)
	}
	t.positionItems(container)
	t.setGeometryRecursiveNotify(container)
}

// lengthOnSide sums the length and min-length of a contiguous run of
// visible children on one side of a given index within vis.
type lengthOnSide struct {
	length, minLength int
}

func (l lengthOnSide) available() int { return l.length - l.minLength }

func (t *Tree) lengthOnSide(vis []NodeID, fromIdx int, side geometry.Side, o geometry.Orientation) lengthOnSide {
	if fromIdx < 0 || fromIdx >= len(vis) {
		return lengthOnSide{}
	}
	start, end := 0, fromIdx
	if side == geometry.Side2 {
		start, end = fromIdx, len(vis)-1
	}
	var r lengthOnSide
	for i := start; i <= end; i++ {
		r.length += geometry.LengthAlong(t.get(vis[i]).geom.Size, o)
		r.minLength += geometry.LengthAlong(t.MinSize(vis[i]), o)
	}
	return r
}

// GrowItem grows item by amount pixels along its container's orientation,
// taking the space proportionally from item's neighbours without ever
// dropping one below its minimum (§4.2 "grow-item(item, amount,
// strategy)"). Negative amount shrinks item and grows its neighbours
// back.
func (t *Tree) GrowItem(item NodeID, amount int, _ GrowthStrategy) {
	if amount == 0 {
		return
	}
	n := t.get(item)
	if n == nil {
		return
	}
	container := n.parent
	cn := t.get(container)
	if cn == nil {
		return
	}
	o := cn.orientation

	if t.NumVisibleChildren(container) == 1 {
		n.geom.Size = geometry.WithLengthAlong(n.geom.Size, o, geometry.LengthAlong(n.geom.Size, o)+amount)
		t.positionItems(container)
		t.setGeometryRecursiveNotify(container)
		return
	}

	side1Growth, side2Growth := t.growthSides(container, item, amount)
	t.squeezeNeighbours(container, item, side1Growth, side2Growth)
	n.geom.Size = geometry.WithLengthAlong(n.geom.Size, o, geometry.LengthAlong(n.geom.Size, o)+amount)
	t.finishGrow(container)
}

// growItemToLength sets item's own length along its container's
// orientation directly to targetLength and squeezes neighbours to make
// room, without adding to item's existing length the way GrowItem does.
// This is the shape restoring a placeholder needs: the item's recorded
// length is a stale value from before it was hidden, not a baseline to
// grow from, and the target is an absolute clamp (min length plus
// available space), not a delta.
func (t *Tree) growItemToLength(item NodeID, targetLength int) {
	n := t.get(item)
	if n == nil {
		return
	}
	container := n.parent
	cn := t.get(container)
	if cn == nil {
		return
	}
	o := cn.orientation

	if t.NumVisibleChildren(container) == 1 {
		n.geom.Point = geometry.Point{}
		n.geom.Size = cn.geom.Size
		t.positionItems(container)
		t.setGeometryRecursiveNotify(container)
		return
	}

	n.geom.Size = geometry.WithLengthAlong(n.geom.Size, o, targetLength)
	n.geom.Size = geometry.WithLengthAlong(n.geom.Size, geometry.Opposite(o), geometry.LengthAlong(cn.geom.Size, geometry.Opposite(o)))
	side1Growth, side2Growth := t.growthSides(container, item, targetLength)
	t.squeezeNeighbours(container, item, side1Growth, side2Growth)
	t.finishGrow(container)
}

// growthSides computes how many pixels must be squeezed from item's side1
// and side2 neighbours so item ends up occupying needed pixels along
// container's orientation. Growth is weighted toward whichever side has
// more room, then clamped so neither side is pushed past its own
// available space; whatever can't fit on one side falls to the other.
func (t *Tree) growthSides(container, item NodeID, needed int) (side1Growth, side2Growth int) {
	cn := t.get(container)
	o := cn.orientation
	vis := t.VisibleChildren(container)
	idx := indexOfVisible(vis, item)
	if idx == -1 {
		return 0, 0
	}

	side1 := t.lengthOnSide(vis, idx-1, geometry.Side1, o)
	side2 := t.lengthOnSide(vis, idx+1, geometry.Side2, o)
	available1 := side1.available()
	available2 := side2.available()

	min1 := 0
	max2 := geometry.LengthAlong(cn.geom.Size, o) - 1
	newPosition := 0

	var side1Neighbour *node
	if idx > 0 {
		side1Neighbour = t.get(vis[idx-1])
		min1 = geometry.PosAlong(side1Neighbour.geom.Point, o) + geometry.LengthAlong(side1Neighbour.geom.Size, o) - available1
		newPosition = geometry.PosAlong(side1Neighbour.geom.Point, o) + geometry.LengthAlong(side1Neighbour.geom.Size, o) - needed/2
	}
	if idx < len(vis)-1 {
		max2 = geometry.PosAlong(t.get(vis[idx+1]).geom.Point, o) + available2
	}

	if newPosition < min1 {
		newPosition = min1
	} else if newPosition+needed > max2 {
		newPosition = max2 - needed - t.sepThickness + 1
	}

	if newPosition > 0 && side1Neighbour != nil {
		side1Growth = geometry.PosAlong(side1Neighbour.geom.Point, o) + geometry.LengthAlong(side1Neighbour.geom.Size, o) - newPosition
	}
	side2Growth = needed - side1Growth + t.sepThickness
	if idx < len(vis)-1 && side2Growth > available2 {
		side1Growth += side2Growth - available2
		side2Growth = available2
	}
	return side1Growth, side2Growth
}

// squeezeNeighbours applies squeeze vectors to the neighbours on each side
// of item within container. It never touches item's own geometry.
func (t *Tree) squeezeNeighbours(container, item NodeID, side1Growth, side2Growth int) {
	vis := t.VisibleChildren(container)
	o := t.get(container).orientation
	idx := indexOfVisible(vis, item)
	if idx == -1 {
		return
	}

	if side1Growth > 0 {
		left := vis[:idx]
		squeezes := t.calculateSqueezes(left, o, side1Growth)
		for i, sq := range squeezes {
			if sq == 0 {
				continue
			}
			c := t.get(left[i])
			c.geom.Size = geometry.WithLengthAlong(c.geom.Size, o, geometry.LengthAlong(c.geom.Size, o)-sq)
		}
	}
	if side2Growth > 0 {
		right := vis[idx+1:]
		squeezes := t.calculateSqueezes(right, o, side2Growth)
		for i, sq := range squeezes {
			if sq == 0 {
				continue
			}
			c := t.get(right[i])
			c.geom.Size = geometry.WithLengthAlong(c.geom.Size, o, geometry.LengthAlong(c.geom.Size, o)-sq)
		}
	}
}

// finishGrow re-lays-out container after a squeeze: nested containers get
// their children repositioned to their new size, siblings are packed back
// to back, percentages are refreshed, and the observer is notified.
func (t *Tree) finishGrow(container NodeID) {
	for _, c := range t.VisibleChildren(container) {
		if t.isContainer(c) {
			t.resizeContainer(c)
		}
	}
	t.positionItems(container)
	t.updateChildPercentages(container)
	t.setGeometryRecursiveNotify(container)
}

// indexOfVisible returns the index of item within vis, or -1.
func indexOfVisible(vis []NodeID, item NodeID) int {
	for i, v := range vis {
		if v == item {
			return i
		}
	}
	return -1
}

// calculateSqueezes implements §4.2 "calculate-squeezes": repeatedly take
// perDonor = max(1, needed/numDonors) from each sibling with remaining
// availableLength, until needed pixels have been extracted. Panics (dump
// layout) if no donor remains — this is a programmer error, not a
// recoverable one, since callers must only ask for what availability
// analysis already proved obtainable.
func (t *Tree) calculateSqueezes(siblings []NodeID, o geometry.Orientation, needed int) []int {
	avail := make([]int, len(siblings))
	for i, s := range siblings {
		avail[i] = geometry.LengthAlong(t.get(s).geom.Size, o) - geometry.LengthAlong(t.MinSize(s), o)
	}
	squeezes := make([]int, len(siblings))
	missing := needed
	for missing > 0 {
		numDonors := 0
		for _, a := range avail {
			if a > 0 {
				numDonors++
			}
		}
		if numDonors == 0 {
			t.DumpLayout()
			panic("dock: calculateSqueezes ran out of donors")
		}
		toTake := missing / numDonors
		if toTake == 0 {
			toTake = missing
		}
		for i, a := range avail {
			if a == 0 {
				continue
			}
			took := min(toTake, a)
			avail[i] -= took
			squeezes[i] += took
			missing -= took
			if missing == 0 {
				break
			}
		}
	}
	return squeezes
}

// restorePlaceholderInContainer implements §4.2 "Restore placeholder":
// marks item visible within container, then grows it to
// min(previousLength, minLength+available) by taking space from
// neighbours. previousLength is whatever length the item had recorded
// before it was hidden; it's a stale number (a sibling may since have
// grown to fill the whole container), so it's a starting proposal to
// clamp, never a baseline to add a delta to.
func (t *Tree) restorePlaceholderInContainer(container, item NodeID) {
	n := t.get(item)
	n.visible = true

	if t.NumVisibleChildren(container) == 1 {
		n.geom.Point = geometry.Point{}
		cn := t.get(container)
		n.geom.Size = cn.geom.Size
		t.updateChildPercentages(container)
		return
	}

	available := t.AvailableLength(container)
	o := t.get(container).orientation
	minLen := geometry.LengthAlong(t.MinSize(item), o)
	proposed := geometry.LengthAlong(n.geom.Size, o)
	maxLen := minLen + available
	wanted := proposed
	if wanted > maxLen {
		wanted = maxLen
	}
	if wanted < minLen {
		wanted = minLen
	}
	t.growItemToLength(item, wanted)
	t.updateChildPercentages(container)
}

// onChildMinSizeChanged implements §4.2's reaction to a child reporting a
// new minimum: if the container is now missing space, it requests root
// growth (the single-threaded resize-propagation pass); otherwise, if the
// child needs more room than it currently has, grow-item is invoked both
// sides equally.
func (t *Tree) onChildMinSizeChanged(container, child NodeID) {
	missing := t.missingSizeFor(container)
	if missing != (geometry.Size{}) {
		t.RequestRootGrowth(missing)
	}

	if t.NumVisibleChildren(container) == 1 {
		cn := t.get(container)
		c := t.get(child)
		c.geom.Size = cn.geom.Size
		c.geom.Point = geometry.Point{}
		return
	}

	o := t.get(container).orientation
	missingForChild := t.missingSizeFor2(container, child)
	need := geometry.LengthAlong(missingForChild, o)
	if need > 0 {
		t.GrowItem(child, need, BothSidesEqually)
	}
}

// missingSizeFor returns how far short id's current size falls of its
// own computed minimum; zero if it already covers it.
func (t *Tree) missingSizeFor(id NodeID) geometry.Size {
	min := t.containerMinSize(id)
	cur := t.get(id).geom.Size
	return geometry.Size{
		W: max(min.W-cur.W, 0),
		H: max(min.H-cur.H, 0),
	}
}

// missingSizeFor2 returns how far item's current size falls short of its
// own minimum.
func (t *Tree) missingSizeFor2(_, item NodeID) geometry.Size {
	n := t.get(item)
	min := t.MinSize(item)
	return geometry.Size{
		W: max(min.W-n.geom.Size.W, 0),
		H: max(min.H-n.geom.Size.H, 0),
	}
}

// onChildVisibleChanged notifies the observer that container's visibility
// may have changed, on every call; it does not notify ancestors.
func (t *Tree) onChildVisibleChanged(container NodeID, _ bool) {
	if container == noParent {
		return
	}
	t.observer.OnVisibilityChanged(container)
}
