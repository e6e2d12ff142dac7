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

package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/GaryBoone/GoStats/stats"
	"github.com/ctessum/sparse"
	"github.com/hydromodel/gridflow"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// These variables hold per-run flag overrides for the config file values.
var (
	flagNX, flagNY, flagNZ int
	flagIterations         int
)

// benchConfig holds the benchmark grid dimensions and sweep count.
type benchConfig struct {
	NX, NY, NZ int
	Iterations int
	NProcs     int
}

// loadBenchConfig merges the TOML configuration file at path (if any) over
// the defaults, then applies command-line flag overrides.
func loadBenchConfig(path string) (benchConfig, error) {
	vals := map[string]interface{}{
		"nx":         64,
		"ny":         64,
		"nz":         32,
		"iterations": 50,
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &vals); err != nil {
			return benchConfig{}, fmt.Errorf("gridflow: reading configuration file %s: %v", path, err)
		}
	}
	cfg := benchConfig{
		NX:         cast.ToInt(vals["nx"]),
		NY:         cast.ToInt(vals["ny"]),
		NZ:         cast.ToInt(vals["nz"]),
		Iterations: cast.ToInt(vals["iterations"]),
		NProcs:     nprocs,
	}
	if flagNX > 0 {
		cfg.NX = flagNX
	}
	if flagNY > 0 {
		cfg.NY = flagNY
	}
	if flagNZ > 0 {
		cfg.NZ = flagNZ
	}
	if flagIterations > 0 {
		cfg.Iterations = flagIterations
	}
	if cfg.NX < 1 || cfg.NY < 1 || cfg.NZ < 1 || cfg.Iterations < 1 {
		return benchConfig{}, fmt.Errorf("gridflow: invalid benchmark configuration %+v", cfg)
	}
	return cfg, nil
}

// runBench repeatedly smooths the hydraulic head over a rectangular
// aquifer block with a 7-point Jacobi stencil. The head arrays carry a
// one-cell ghost ring, so grid cell (i,j,k) lives at array index (k,j,i)
// and the solid occupies cells 1..n along each axis.
func runBench(cfg benchConfig) error {
	sched := gridflow.NewScheduler(cfg.NProcs)
	sched.AssertNotParallel()

	log := logrus.WithFields(logrus.Fields{
		"nx": cfg.NX, "ny": cfg.NY, "nz": cfg.NZ, "nprocs": sched.NumProcs(),
	})
	log.Info("starting Jacobi benchmark")

	nx, ny, nz := cfg.NX, cfg.NY, cfg.NZ
	hold := sparse.ZerosDense(nz+2, ny+2, nx+2)
	hnew := sparse.ZerosDense(nz+2, ny+2, nx+2)
	strideH, err := gridflow.DenseStride(hold)
	if err != nil {
		return err
	}
	nxp, nyp := nx+2, ny+2
	offY := nxp
	offZ := nxp * nyp
	at := func(i, j, k int) int { return k*offZ + j*offY + i }
	base := at(1, 1, 1)

	solid, err := gridflow.NewRectSolid([3]int{1, 1, 1}, [3]int{nx, ny, nz})
	if err != nil {
		return err
	}

	// Initial condition: uniform head inside, a gradient from the -x to
	// the +x face on the boundary.
	sched.InteriorLoop(solid, 1, 1, 1, nx, ny, nz, func(i, j, k int) {
		hold.Elements[at(i, j, k)] = 0.5
		hnew.Elements[at(i, j, k)] = 0.5
	})
	sched.SurfaceLoop(solid, 1, 1, 1, nx, ny, nz, func(i, j, k int, fdir [3]int) {
		h := 0.5 * float64(1-fdir[0])
		hold.Elements[at(i, j, k)] = h
		hnew.Elements[at(i, j, k)] = h
	})

	fixedHead := func(h float64) func(i, j, k, ival int) {
		return func(i, j, k, ival int) {
			hnew.Elements[at(i, j, k)] = h
		}
	}
	dirichlet := gridflow.PatchBody{}
	dirichlet.Face[gridflow.FaceXMinus] = fixedHead(1)
	dirichlet.Face[gridflow.FaceXPlus] = fixedHead(0)

	elapsed := make([]float64, 0, cfg.Iterations)
	for it := 1; it <= cfg.Iterations; it++ {
		start := time.Now()
		hold, hnew = hnew, hold

		maxDelta := math.Inf(-1)
		sched.BoxLoop2(1, 1, 1, nx, ny, nz,
			base, strideH, base, strideH,
			func(i, j, k, io, in int) {
				v := (hold.Elements[io-1] + hold.Elements[io+1] +
					hold.Elements[io-offY] + hold.Elements[io+offY] +
					hold.Elements[io-offZ] + hold.Elements[io+offZ]) / 6
				hnew.Elements[in] = v
				gridflow.AtomicMax(&maxDelta, math.Abs(v-hold.Elements[io]))
			})

		// Re-impose the fixed heads on the inflow and outflow faces.
		sched.PatchLoop(solid, 0, 1, 1, 1, nx, ny, nz, dirichlet)

		elapsed = append(elapsed, time.Since(start).Seconds())
		if it%10 == 0 || it == cfg.Iterations {
			residual := sched.BoxLoopReduce2(0, 1, 1, 1, nx, ny, nz,
				base, strideH, base, strideH,
				func(i, j, k, io, in int) float64 {
					return math.Abs(hnew.Elements[in] - hold.Elements[io])
				})
			log.WithFields(logrus.Fields{
				"iteration": it,
				"residual":  residual,
				"maxDelta":  maxDelta,
			}).Info("sweep")
		}
	}

	mean := stats.StatsMean(elapsed)
	sdev := 0.
	if len(elapsed) > 1 {
		sdev = stats.StatsSampleStandardDeviation(elapsed)
	}
	cells := float64(nx * ny * nz)
	log.WithFields(logrus.Fields{
		"meanSeconds": mean,
		"sdevSeconds": sdev,
		"cellsPerSec": cells / mean,
	}).Info("benchmark complete")
	return nil
}
