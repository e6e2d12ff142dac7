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

import "sync"

// critSec serializes the atomic reducers. A single section shared by all
// addresses keeps the update pattern race-free without a per-address lock.
var critSec sync.Mutex

// AtomicMax raises *addr to val if val exceeds the current value. It is
// safe to call concurrently from any number of loop bodies on the same
// address; after all calls complete, *addr holds the maximum of its
// initial value and every submitted val, regardless of interleaving.
func AtomicMax(addr *float64, val float64) {
	critSec.Lock()
	if *addr < val {
		*addr = val
	}
	critSec.Unlock()
}

// AtomicMin lowers *addr to val if val is less than the current value.
// See AtomicMax for the concurrency contract.
func AtomicMin(addr *float64, val float64) {
	critSec.Lock()
	if *addr > val {
		*addr = val
	}
	critSec.Unlock()
}

// AtomicMaxInt is AtomicMax for integer accumulators.
func AtomicMaxInt(addr *int, val int) {
	critSec.Lock()
	if *addr < val {
		*addr = val
	}
	critSec.Unlock()
}

// AtomicMinInt is AtomicMin for integer accumulators.
func AtomicMinInt(addr *int, val int) {
	critSec.Lock()
	if *addr > val {
		*addr = val
	}
	critSec.Unlock()
}

// BoxLoopReduce0 runs body once per cell of the box and returns sum plus
// the fold of every cell's contribution. Each worker accumulates a local
// partial sum; the partials are combined after the join in an unspecified
// order, so for floating-point contributions the result is only
// reproducible up to reordering-induced rounding.
func (s *Scheduler) BoxLoopReduce0(sum float64, ix, iy, iz, nx, ny, nz int,
	body func(i, j, k int) float64) float64 {

	partial := make([]float64, s.nprocs)
	s.forEachCell(nx, ny, nz, func(pp, di, dj, dk int) {
		partial[pp] += body(ix+di, iy+dj, iz+dk)
	})
	for _, p := range partial {
		sum += p
	}
	return sum
}

// BoxLoopReduce1 is BoxLoopReduce0 with one co-iterated array.
func (s *Scheduler) BoxLoopReduce1(sum float64, ix, iy, iz, nx, ny, nz int,
	i1 int, a1 ArrayStride,
	body func(i, j, k, i1 int) float64) float64 {

	jinc1, kinc1 := a1.Increments(nx, ny)
	sx1 := a1.Stride[0]
	partial := make([]float64, s.nprocs)
	s.forEachCell(nx, ny, nz, func(pp, di, dj, dk int) {
		partial[pp] += body(ix+di, iy+dj, iz+dk,
			IncIndex(i1, di, dj, dk, nx, ny, sx1, jinc1, kinc1))
	})
	for _, p := range partial {
		sum += p
	}
	return sum
}

// BoxLoopReduce2 is BoxLoopReduce0 with two co-iterated arrays.
func (s *Scheduler) BoxLoopReduce2(sum float64, ix, iy, iz, nx, ny, nz int,
	i1 int, a1 ArrayStride,
	i2 int, a2 ArrayStride,
	body func(i, j, k, i1, i2 int) float64) float64 {

	jinc1, kinc1 := a1.Increments(nx, ny)
	jinc2, kinc2 := a2.Increments(nx, ny)
	sx1, sx2 := a1.Stride[0], a2.Stride[0]
	partial := make([]float64, s.nprocs)
	s.forEachCell(nx, ny, nz, func(pp, di, dj, dk int) {
		partial[pp] += body(ix+di, iy+dj, iz+dk,
			IncIndex(i1, di, dj, dk, nx, ny, sx1, jinc1, kinc1),
			IncIndex(i2, di, dj, dk, nx, ny, sx2, jinc2, kinc2))
	})
	for _, p := range partial {
		sum += p
	}
	return sum
}
