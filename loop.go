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

// BoxLoop0 runs body once per cell of the box anchored at (ix, iy, iz)
// with extents (nx, ny, nz). Cells are visited exactly once each, in no
// particular order and possibly concurrently. The body must not depend on
// inter-cell ordering, and any writes outside its own cell's memory must
// go through the atomic reducers or a reduction loop.
func (s *Scheduler) BoxLoop0(ix, iy, iz, nx, ny, nz int, body func(i, j, k int)) {
	s.forEachCell(nx, ny, nz, func(_, di, dj, dk int) {
		body(ix+di, iy+dj, iz+dk)
	})
}

// BoxLoop1 is BoxLoop0 with one co-iterated array: body additionally
// receives the flat index of the cell in an array starting at flat index
// i1 with geometry a1.
func (s *Scheduler) BoxLoop1(ix, iy, iz, nx, ny, nz int,
	i1 int, a1 ArrayStride,
	body func(i, j, k, i1 int)) {

	jinc1, kinc1 := a1.Increments(nx, ny)
	sx1 := a1.Stride[0]
	s.forEachCell(nx, ny, nz, func(_, di, dj, dk int) {
		body(ix+di, iy+dj, iz+dk,
			IncIndex(i1, di, dj, dk, nx, ny, sx1, jinc1, kinc1))
	})
}

// BoxLoop2 is BoxLoop0 with two co-iterated arrays.
func (s *Scheduler) BoxLoop2(ix, iy, iz, nx, ny, nz int,
	i1 int, a1 ArrayStride,
	i2 int, a2 ArrayStride,
	body func(i, j, k, i1, i2 int)) {

	jinc1, kinc1 := a1.Increments(nx, ny)
	jinc2, kinc2 := a2.Increments(nx, ny)
	sx1, sx2 := a1.Stride[0], a2.Stride[0]
	s.forEachCell(nx, ny, nz, func(_, di, dj, dk int) {
		body(ix+di, iy+dj, iz+dk,
			IncIndex(i1, di, dj, dk, nx, ny, sx1, jinc1, kinc1),
			IncIndex(i2, di, dj, dk, nx, ny, sx2, jinc2, kinc2))
	})
}

// BoxLoop3 is BoxLoop0 with three co-iterated arrays.
func (s *Scheduler) BoxLoop3(ix, iy, iz, nx, ny, nz int,
	i1 int, a1 ArrayStride,
	i2 int, a2 ArrayStride,
	i3 int, a3 ArrayStride,
	body func(i, j, k, i1, i2, i3 int)) {

	jinc1, kinc1 := a1.Increments(nx, ny)
	jinc2, kinc2 := a2.Increments(nx, ny)
	jinc3, kinc3 := a3.Increments(nx, ny)
	sx1, sx2, sx3 := a1.Stride[0], a2.Stride[0], a3.Stride[0]
	s.forEachCell(nx, ny, nz, func(_, di, dj, dk int) {
		body(ix+di, iy+dj, iz+dk,
			IncIndex(i1, di, dj, dk, nx, ny, sx1, jinc1, kinc1),
			IncIndex(i2, di, dj, dk, nx, ny, sx2, jinc2, kinc2),
			IncIndex(i3, di, dj, dk, nx, ny, sx3, jinc3, kinc3))
	})
}
