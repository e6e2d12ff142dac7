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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Scheduler executes the loop family over a bounded pool of worker
// goroutines. A loop invocation blocks the caller until every worker has
// finished; there is no detached variant.
//
// A Scheduler is safe for use by one loop at a time. Bodies must not start
// another loop on the same Scheduler; AssertNotParallel exists to catch
// that mistake.
type Scheduler struct {
	// Rank identifies this process within a domain-decomposed run. It is
	// set by the communication layer and only appears in guard failure
	// reports.
	Rank int

	nprocs int
	depth  int32 // active parallel-region nesting level
}

// NewScheduler returns a Scheduler running loops across nprocs worker
// goroutines. If nprocs < 1, the number of available processors is used.
func NewScheduler(nprocs int) *Scheduler {
	if nprocs < 1 {
		nprocs = runtime.GOMAXPROCS(0)
	}
	return &Scheduler{nprocs: nprocs}
}

// NumProcs returns the worker count loops fork.
func (s *Scheduler) NumProcs() int { return s.nprocs }

// InParallel reports whether a loop is currently executing on s.
func (s *Scheduler) InParallel() bool {
	return atomic.LoadInt32(&s.depth) != 0
}

// AssertNotParallel terminates the process if it is called while a loop is
// executing on s. It is a fail-fast precondition check for code that is
// about to fork its own parallel work: nesting parallel regions is a
// programming error, reported with the process rank and the offending call
// site, and is not recoverable.
func (s *Scheduler) AssertNotParallel() {
	if atomic.LoadInt32(&s.depth) == 0 {
		return
	}
	pc, file, line, _ := runtime.Caller(1)
	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	logrus.WithFields(logrus.Fields{
		"rank": s.Rank,
	}).Fatalf("gridflow: hit parallel region in %s (%s:%d) when not allowed", fn, file, line)
}

// forEachCell covers every local offset of a box with extents
// (nx, ny, nz) exactly once, striding the flattened cell range across the
// worker pool. cell receives the worker number and the offset triplet.
// Zero or negative extents yield zero invocations.
func (s *Scheduler) forEachCell(nx, ny, nz int, cell func(pp, di, dj, dk int)) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return
	}
	atomic.AddInt32(&s.depth, 1)
	defer atomic.AddInt32(&s.depth, -1)

	cells := nx * ny * nz
	nprocs := imin(s.nprocs, cells)
	if nprocs == 1 {
		for dk := 0; dk < nz; dk++ {
			for dj := 0; dj < ny; dj++ {
				for di := 0; di < nx; di++ {
					cell(0, di, dj, dk)
				}
			}
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for c := pp; c < cells; c += nprocs {
				di := c % nx
				dj := (c / nx) % ny
				dk := c / (nx * ny)
				cell(pp, di, dj, dk)
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
}
