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

import "fmt"

// Face identifies one of the six canonical faces of a voxelized solid, in
// the order {-x, +x, -y, +y, -z, +z}.
type Face int

// The canonical faces.
const (
	FaceXMinus Face = iota
	FaceXPlus
	FaceYMinus
	FaceYPlus
	FaceZMinus
	FaceZPlus
)

// NumFaces is the number of canonical faces of a voxelized solid.
const NumFaces = 6

// faceDirections holds the outward unit normal of each canonical face.
// It is only accessed through Face.Direction, which copies, so the table
// cannot be mutated by callers.
var faceDirections = [NumFaces][3]int{
	{-1, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
}

var faceNames = [NumFaces]string{"-x", "+x", "-y", "+y", "-z", "+z"}

// Direction returns the outward unit normal of face f.
func (f Face) Direction() [3]int { return faceDirections[f] }

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Box is an axis-aligned integer 3-D index range. Both corners are
// inclusive, so a box with Lo == Up contains one cell.
type Box struct {
	Lo, Up [3]int
}

// Empty reports whether b contains no cells.
func (b Box) Empty() bool {
	return b.Up[0] < b.Lo[0] || b.Up[1] < b.Lo[1] || b.Up[2] < b.Lo[2]
}

// Size returns the number of cells along each axis. All axes of an empty
// box report zero.
func (b Box) Size() [3]int {
	if b.Empty() {
		return [3]int{}
	}
	return [3]int{
		b.Up[0] - b.Lo[0] + 1,
		b.Up[1] - b.Lo[1] + 1,
		b.Up[2] - b.Lo[2] + 1,
	}
}

// Cells returns the total number of cells in b.
func (b Box) Cells() int {
	sz := b.Size()
	return sz[0] * sz[1] * sz[2]
}

// Intersect returns the overlap of b and o. The result may be empty.
func (b Box) Intersect(o Box) Box {
	var r Box
	for d := 0; d < 3; d++ {
		r.Lo[d] = imax(b.Lo[d], o.Lo[d])
		r.Up[d] = imin(b.Up[d], o.Up[d])
	}
	return r
}

// region builds the box anchored at (ix, iy, iz) with extents
// (nx, ny, nz), the form in which callers hand iteration bounds to the
// loop family.
func region(ix, iy, iz, nx, ny, nz int) Box {
	return Box{
		Lo: [3]int{ix, iy, iz},
		Up: [3]int{ix + nx - 1, iy + ny - 1, iz + nz - 1},
	}
}

// BoxArray is an ordered collection of boxes, typically one entry per
// geometric face. It is produced by the geometry subsystem and consumed
// here read-only.
type BoxArray []Box

// Solid describes the voxelized boxes of a solid as produced by the
// geometry subsystem. The interior boxes cover the cells inside the solid;
// the surface and patch boxes are keyed by canonical face and hold the
// boundary cells whose outward normal points through that face.
type Solid interface {
	InteriorBoxes() BoxArray
	SurfaceBoxes(f Face) BoxArray
	PatchBoxes(patch int, f Face) BoxArray
}

// RectSolid is a Solid covering a rectangular block of cells. It has a
// single interior box, one single-plane box per face, and one patch
// (number zero) spanning the whole surface. It stands in for the octree
// voxelizer in tests and drivers; irregular solids come from the geometry
// subsystem.
type RectSolid struct {
	interior BoxArray
	surface  [NumFaces]BoxArray
}

// NewRectSolid returns a Solid covering the cells between lo and up,
// inclusive.
func NewRectSolid(lo, up [3]int) (*RectSolid, error) {
	b := Box{Lo: lo, Up: up}
	if b.Empty() {
		return nil, fmt.Errorf("gridflow: empty solid bounds lo=%v up=%v", lo, up)
	}
	s := &RectSolid{interior: BoxArray{b}}
	for f := Face(0); f < NumFaces; f++ {
		plane := b
		dir := f.Direction()
		for d := 0; d < 3; d++ {
			if dir[d] < 0 {
				plane.Up[d] = b.Lo[d]
			} else if dir[d] > 0 {
				plane.Lo[d] = b.Up[d]
			}
		}
		s.surface[f] = BoxArray{plane}
	}
	return s, nil
}

// InteriorBoxes returns the single box spanning the block.
func (s *RectSolid) InteriorBoxes() BoxArray { return s.interior }

// SurfaceBoxes returns the single-plane box of face f.
func (s *RectSolid) SurfaceBoxes(f Face) BoxArray { return s.surface[f] }

// PatchBoxes returns the face boxes of the block's only patch, patch
// number zero. Other patch numbers have no boxes.
func (s *RectSolid) PatchBoxes(patch int, f Face) BoxArray {
	if patch != 0 {
		return nil
	}
	return s.surface[f]
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
