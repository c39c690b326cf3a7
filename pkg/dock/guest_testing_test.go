// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package dock

import "github.com/klardock/docklayout/pkg/geometry"

// fakeGuest is a minimal Guest used across this package's tests: it
// records the geometry and visibility it was last told about, with a
// fixed min/max size.
type fakeGuest struct {
	id      string
	min     geometry.Size
	max     geometry.Size
	geom    geometry.Rect
	visible bool
}

func newFakeGuest(id string, min geometry.Size) *fakeGuest {
	return &fakeGuest{id: id, min: min, max: geometry.Size{W: 1 << 30, H: 1 << 30}}
}

func (g *fakeGuest) MinSize() geometry.Size         { return g.min }
func (g *fakeGuest) MaxSize() geometry.Size         { return g.max }
func (g *fakeGuest) SetGeometry(r geometry.Rect)    { g.geom = r }
func (g *fakeGuest) SetVisible(v bool)              { g.visible = v }
func (g *fakeGuest) StableID() string               { return g.id }
