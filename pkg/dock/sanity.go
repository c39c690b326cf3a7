// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import (
	"fmt"
	"strings"

	"github.com/klardock/docklayout/pkg/geometry"
)

// CheckSanity implements §6's non-mutating invariant audit: it walks the
// tree from the root and reports the first violation of invariants 2-4 of
// §3 (usable-length accounting, minimum-size compliance, and
// percentage-sum) it finds, or nil if none exist.
func (t *Tree) CheckSanity() error {
	return t.checkSanityRec(t.rootID)
}

func (t *Tree) checkSanityRec(id NodeID) error {
	n := t.get(id)
	if n == nil {
		return fmt.Errorf("dock: sanity: node %d does not exist", id)
	}

	if !n.isRoot() {
		parent := t.get(n.parent)
		if parent == nil || !t.Contains(n.parent, id) {
			return fmt.Errorf("dock: sanity: node %d's recorded parent %d does not list it as a child", id, n.parent)
		}
	}

	if n.visible && !geometry.Covers(n.geom.Size, t.MinSize(id)) {
		return fmt.Errorf("dock: sanity: node %d has size %v below its minimum %v", id, n.geom.Size, t.MinSize(id))
	}

	if !n.isContainer() {
		return nil
	}

	vis := t.VisibleChildren(id)
	o := n.orientation

	if len(vis) > 0 {
		sum := 0
		for _, c := range vis {
			sum += geometry.LengthAlong(t.Geometry(c).Size, o)
		}
		sum += (len(vis) - 1) * t.sepThickness
		containerLen := geometry.LengthAlong(n.geom.Size, o)
		if sum != containerLen {
			return fmt.Errorf("dock: sanity: container %d usable-length accounting is off: children+separators sum to %d, container is %d", id, sum, containerLen)
		}

		pctSum := 0.0
		for _, c := range vis {
			pctSum += t.Percentage(c)
		}
		if !geometry.FuzzyEqual(pctSum, 1.0, 0.01) {
			return fmt.Errorf("dock: sanity: container %d visible-child percentages sum to %f, want ~1.0", id, pctSum)
		}
	}

	for _, c := range n.children {
		if err := t.checkSanityRec(c); err != nil {
			return err
		}
	}
	return nil
}

// DumpLayout renders a human-readable tree dump, used by tests and by the
// fatal-in-debug sanity-check failure path.
func (t *Tree) DumpLayout() string {
	var b strings.Builder
	t.dumpRec(&b, t.rootID, 0)
	return b.String()
}

func (t *Tree) dumpRec(b *strings.Builder, id NodeID, depth int) {
	n := t.get(id)
	if n == nil {
		fmt.Fprintf(b, "%s<missing %d>\n", strings.Repeat("  ", depth), id)
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.isLeaf() {
		guestID := n.guestID
		if guestID == "" {
			guestID = "-"
		}
		fmt.Fprintf(b, "%sleaf#%d guest=%s visible=%t pct=%.3f geom=%+v min=%+v ref=%d\n",
			indent, id, guestID, n.visible, n.percentage, n.geom, n.minSize, n.refCount)
		return
	}
	orientation := "h"
	if n.orientation == geometry.Vertical {
		orientation = "v"
	}
	fmt.Fprintf(b, "%scontainer#%d orientation=%s geom=%+v children=%d\n", indent, id, orientation, n.geom, len(n.children))
	for _, c := range n.children {
		t.dumpRec(b, c, depth+1)
	}
}
