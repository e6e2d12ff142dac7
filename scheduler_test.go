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
	"os"
	"os/exec"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewSchedulerDefaults(t *testing.T) {
	if got := NewScheduler(0).NumProcs(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("NumProcs() = %d; want %d", got, runtime.GOMAXPROCS(0))
	}
	if got := NewScheduler(3).NumProcs(); got != 3 {
		t.Errorf("NumProcs() = %d; want 3", got)
	}
}

// The parallel depth must be visible from a body and clear again after the
// loop joins, even with a single worker.
func TestInParallelTracking(t *testing.T) {
	for _, nprocs := range []int{1, 4} {
		s := NewScheduler(nprocs)
		if s.InParallel() {
			t.Fatalf("nprocs=%d: InParallel() true before any loop", nprocs)
		}
		var sawSerial int32
		s.BoxLoop0(0, 0, 0, 2, 2, 2, func(i, j, k int) {
			if !s.InParallel() {
				atomic.AddInt32(&sawSerial, 1)
			}
		})
		if sawSerial != 0 {
			t.Errorf("nprocs=%d: InParallel() false inside a loop body", nprocs)
		}
		if s.InParallel() {
			t.Errorf("nprocs=%d: InParallel() still true after the loop joined", nprocs)
		}
	}
}

// AssertNotParallel must be a no-op outside parallel regions.
func TestAssertNotParallelOutsideRegion(t *testing.T) {
	s := NewScheduler(4)
	s.AssertNotParallel()
	s.BoxLoop0(0, 0, 0, 2, 2, 2, func(i, j, k int) {})
	s.AssertNotParallel()
}

// TestAssertNotParallelAborts re-executes the test binary and checks that
// hitting the guard inside a loop body terminates the subprocess with a
// nonzero exit code.
func TestAssertNotParallelAborts(t *testing.T) {
	if os.Getenv("GRIDFLOW_GUARD_CRASH") == "1" {
		s := NewScheduler(2)
		s.BoxLoop0(0, 0, 0, 2, 2, 2, func(i, j, k int) {
			s.AssertNotParallel()
		})
		// Unreachable if the guard works.
		os.Exit(0)
	}
	cmd := exec.Command(os.Args[0], "-test.run=TestAssertNotParallelAborts")
	cmd.Env = append(os.Environ(), "GRIDFLOW_GUARD_CRASH=1")
	err := cmd.Run()
	if err == nil {
		t.Fatal("subprocess exited cleanly; want a fatal guard abort")
	}
	if e, ok := err.(*exec.ExitError); !ok || e.Success() {
		t.Fatalf("subprocess failed oddly: %v", err)
	}
}
