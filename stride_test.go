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
	"testing"

	"github.com/ctessum/sparse"
	"github.com/google/go-cmp/cmp"
)

// directIndex computes the flat offset of a local offset straight from the
// stride descriptor, without the increment shortcut.
func directIndex(a ArrayStride, base, di, dj, dk int) int {
	return base +
		di*a.Stride[0] +
		dj*a.Stride[1]*a.Size[0] +
		dk*a.Stride[2]*a.Size[0]*a.Size[1]
}

func TestIncIndexUnitStride(t *testing.T) {
	const nx, ny, nz = 4, 3, 5
	a := UnitStride(nx, ny, nz)
	jinc, kinc := a.Increments(nx, ny)
	for dk := 0; dk < nz; dk++ {
		for dj := 0; dj < ny; dj++ {
			for di := 0; di < nx; di++ {
				want := di + dj*nx + dk*nx*ny
				got := IncIndex(0, di, dj, dk, nx, ny, a.Stride[0], jinc, kinc)
				if got != want {
					t.Fatalf("offset(%d,%d,%d) = %d; want %d", di, dj, dk, got, want)
				}
				if again := IncIndex(0, di, dj, dk, nx, ny, a.Stride[0], jinc, kinc); again != got {
					t.Fatalf("offset(%d,%d,%d) not deterministic: %d then %d", di, dj, dk, got, again)
				}
			}
		}
	}
}

// TestIncrementConsistency checks that sweeping with precomputed
// increments visits exactly the offsets the direct formula produces, for
// padded, strided, and broadcast arrays.
func TestIncrementConsistency(t *testing.T) {
	const nx, ny, nz = 3, 4, 2
	descriptors := []struct {
		name string
		a    ArrayStride
		base int
	}{
		{"unit", UnitStride(nx, ny, nz), 0},
		{"padded", UnitStride(nx+2, ny+2, nz+2), (nx + 2) * (ny + 2)},
		{"strided", ArrayStride{Size: [3]int{2 * nx, ny, nz}, Stride: [3]int{2, 1, 1}}, 1},
		{"broadcast", ArrayStride{Size: [3]int{nx, ny, 1}, Stride: [3]int{1, 1, 0}}, 0},
	}
	for _, d := range descriptors {
		jinc, kinc := d.a.Increments(nx, ny)
		seen := make(map[int]int)
		for dk := 0; dk < nz; dk++ {
			for dj := 0; dj < ny; dj++ {
				for di := 0; di < nx; di++ {
					got := IncIndex(d.base, di, dj, dk, nx, ny, d.a.Stride[0], jinc, kinc)
					want := directIndex(d.a, d.base, di, dj, dk)
					if got != want {
						t.Errorf("%s: offset(%d,%d,%d) = %d; want %d",
							d.name, di, dj, dk, got, want)
					}
					seen[got]++
				}
			}
		}
		// A broadcast array revisits the same plane every k step; all
		// other descriptors must visit each offset exactly once.
		wantVisits := 1
		if d.name == "broadcast" {
			wantVisits = nz
		}
		for off, n := range seen {
			if n != wantVisits {
				t.Errorf("%s: offset %d visited %d times; want %d", d.name, off, n, wantVisits)
			}
		}
		wantDistinct := nx * ny * nz / wantVisits
		if len(seen) != wantDistinct {
			t.Errorf("%s: visited %d distinct offsets; want %d", d.name, len(seen), wantDistinct)
		}
	}
}

func TestDenseStride(t *testing.T) {
	a3 := sparse.ZerosDense(5, 3, 4) // [z, y, x]
	s3, err := DenseStride(a3)
	if err != nil {
		t.Fatal(err)
	}
	want := UnitStride(4, 3, 5)
	if diff := cmp.Diff(want, s3); diff != "" {
		t.Errorf("3-D stride mismatch (-want +got):\n%s", diff)
	}

	a2 := sparse.ZerosDense(3, 4) // [y, x]
	s2, err := DenseStride(a2)
	if err != nil {
		t.Fatal(err)
	}
	want = ArrayStride{Size: [3]int{4, 3, 1}, Stride: [3]int{1, 1, 0}}
	if diff := cmp.Diff(want, s2); diff != "" {
		t.Errorf("2-D stride mismatch (-want +got):\n%s", diff)
	}

	if _, err := DenseStride(sparse.ZerosDense(4)); err == nil {
		t.Error("expected an error for a 1-D array")
	}
}
