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

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// ArrayStride describes the memory geometry of one co-iterated array: the
// array's own allocated size and its element stride along each axis, in
// x, y, z order. A zero stride broadcasts the array along that axis.
//
// The iteration box handed to a loop must be containable within the
// array's allocated region; the loop family does not validate this.
type ArrayStride struct {
	Size   [3]int
	Stride [3]int
}

// UnitStride returns the descriptor of a contiguous unpadded array with
// the given allocated extents.
func UnitStride(nx, ny, nz int) ArrayStride {
	return ArrayStride{
		Size:   [3]int{nx, ny, nz},
		Stride: [3]int{1, 1, 1},
	}
}

// DenseStride returns the descriptor of a dense grid array with Shape
// ordered [z, y, x], the layout the simulator's preprocessor produces.
// A 2-D array (Shape [y, x]) is broadcast along z with a zero stride.
func DenseStride(a *sparse.DenseArray) (ArrayStride, error) {
	switch len(a.Shape) {
	case 3:
		return UnitStride(a.Shape[2], a.Shape[1], a.Shape[0]), nil
	case 2:
		return ArrayStride{
			Size:   [3]int{a.Shape[1], a.Shape[0], 1},
			Stride: [3]int{1, 1, 0},
		}, nil
	default:
		return ArrayStride{}, fmt.Errorf("gridflow: array must have 2 or 3 dimensions but has %d", len(a.Shape))
	}
}

// Increments derives the constants that let IncIndex advance through the
// array by additions while sweeping an iteration box with extents
// (nx, ny, *) along x and y. It runs once per loop invocation, not per
// cell.
//
// Applying IncIndex with these increments across an ascending i/j/k sweep
// reproduces the direct formula
//
//	di*sx + dj*sy*Size[0] + dk*sz*Size[0]*Size[1]
//
// exactly, including for padded, strided, and broadcast (zero-stride)
// arrays.
func (a ArrayStride) Increments(nx, ny int) (jinc, kinc int) {
	jinc = a.Stride[1]*a.Size[0] - nx*a.Stride[0]
	kinc = a.Stride[2]*a.Size[0]*a.Size[1] - ny*a.Stride[1]*a.Size[0]
	return jinc, kinc
}

// IncIndex maps the local offset (di, dj, dk) within an iteration box with
// x and y extents (nx, ny) to a flat offset in an array with element
// stride sx and precomputed increments (jinc, kinc), relative to the flat
// index base of the box's first cell.
//
// No bounds checking is performed; the caller guarantees the offsets stay
// within the declared extents.
func IncIndex(base, di, dj, dk, nx, ny, sx, jinc, kinc int) int {
	return base +
		dk*kinc +
		(dk*ny+dj)*jinc +
		(dk*ny*nx+dj*nx+di)*sx
}
