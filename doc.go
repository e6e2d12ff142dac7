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

// Package gridflow is the parallel structured-grid iteration engine
// underlying a finite-difference groundwater-flow simulator.
//
// Physics kernels express their per-cell work as a body function that the
// box loop family (BoxLoop0 through BoxLoop3) executes once per logical
// grid cell, in parallel, while advancing a flat memory index for each
// co-iterated array. The geometry-constrained loops (InteriorLoop,
// SurfaceLoop, and PatchLoop) restrict the iteration to the voxelized
// interior or boundary of a solid, as described by externally supplied
// per-face box lists.
//
// The engine makes no ordering guarantee between cells. A body that writes
// shared state outside its own cell's memory must use the atomic reducers
// or the reduction loop variants; everything else is a data race that the
// engine does not detect.
package gridflow

// Version gives the version number of this version of GridFlow.
const Version = "0.1.0"
