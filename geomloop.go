/*
Copyright © 2026 the GridFlow authors.
This file is part of GridFlow.

GridFlow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridFlow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridFlow.  If not, see <http://www.gnu.org/licenses/>.
*/

package gridflow

// InteriorLoop runs body once per cell of the caller's region that lies
// inside the solid. Each interior box is intersected with the region
// anchored at (ix, iy, iz) with extents (nx, ny, nz); boxes with no
// overlap contribute zero iterations.
func (s *Scheduler) InteriorLoop(sol Solid, ix, iy, iz, nx, ny, nz int,
	body func(i, j, k int)) {

	r := region(ix, iy, iz, nx, ny, nz)
	for _, box := range sol.InteriorBoxes() {
		b := box.Intersect(r)
		if b.Empty() {
			continue
		}
		sz := b.Size()
		s.BoxLoop0(b.Lo[0], b.Lo[1], b.Lo[2], sz[0], sz[1], sz[2], body)
	}
}

// SurfaceLoop runs body once per surface cell of the solid within the
// caller's region, visiting the six canonical faces in order. The body
// additionally receives fdir, the outward unit normal of the face whose
// boxes are being walked; it is shared read-only by every cell of that
// face, not recomputed per cell.
func (s *Scheduler) SurfaceLoop(sol Solid, ix, iy, iz, nx, ny, nz int,
	body func(i, j, k int, fdir [3]int)) {

	r := region(ix, iy, iz, nx, ny, nz)
	for f := Face(0); f < NumFaces; f++ {
		fdir := f.Direction()
		for _, box := range sol.SurfaceBoxes(f) {
			b := box.Intersect(r)
			if b.Empty() {
				continue
			}
			sz := b.Size()
			s.BoxLoop0(b.Lo[0], b.Lo[1], b.Lo[2], sz[0], sz[1], sz[2],
				func(i, j, k int) { body(i, j, k, fdir) })
		}
	}
}

// PatchBody holds the three phases a patch sweep runs per cell: Setup,
// then the handler of the face being walked, then Finalize. The split
// lets one walk of the patch geometry serve six face-specific
// boundary-condition formulas. Setup and Finalize may be nil, as may
// handlers of faces the patch never touches.
type PatchBody struct {
	Setup    func(i, j, k, ival int)
	Face     [NumFaces]func(i, j, k, ival int)
	Finalize func(i, j, k, ival int)
}

// PatchLoop runs the three-phase body once per cell of the given patch of
// the solid within the caller's region. Alongside the cell coordinates,
// each phase receives ival, the cell's position within the linearized 2-D
// table of surface values for the intersected sub-box it belongs to.
//
// Exactly one axis of a surface-aligned box collapses to a single plane;
// ival linearizes the remaining two axes with the fixed (outer, inner)
// order matching the collapsed axis.
func (s *Scheduler) PatchLoop(sol Solid, patch int, ix, iy, iz, nx, ny, nz int,
	body PatchBody) {

	r := region(ix, iy, iz, nx, ny, nz)
	for f := Face(0); f < NumFaces; f++ {
		handler := body.Face[f]
		for _, box := range sol.PatchBoxes(patch, f) {
			b := box.Intersect(r)
			if b.Empty() {
				continue
			}
			sz := b.Size()
			diffX := b.Up[0] - b.Lo[0]
			diffY := b.Up[1] - b.Lo[1]
			diffZ := b.Up[2] - b.Lo[2]
			s.forEachCell(sz[0], sz[1], sz[2], func(_, di, dj, dk int) {
				var ival int
				switch {
				case diffZ == 0:
					ival = diffX*dj + di
				case diffY == 0:
					ival = diffX*dk + di
				default:
					ival = diffY*dk + dj
				}
				i, j, k := b.Lo[0]+di, b.Lo[1]+dj, b.Lo[2]+dk
				if body.Setup != nil {
					body.Setup(i, j, k, ival)
				}
				if handler != nil {
					handler(i, j, k, ival)
				}
				if body.Finalize != nil {
					body.Finalize(i, j, k, ival)
				}
			})
		}
	}
}
