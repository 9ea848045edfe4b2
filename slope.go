/*
Copyright © 2026 the Siteplan authors.
This file is part of Siteplan.

Siteplan is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Siteplan is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Siteplan.  If not, see <http://www.gnu.org/licenses/>.
*/

package siteplan

import (
	"math"
	"runtime"
	"sync"

	"github.com/ctessum/sparse"
)

// Slope returns the terrain slope in degrees at every cell, derived with
// Horn's method: 3×3 center-weighted finite differences scaled by
// 8×cellSize. Cells outside the grid are treated as replicas of the
// nearest in-grid cell; a cell whose kernel touches a nodata neighbor is
// itself nodata (NaN) in the result.
func (r *Raster) Slope() *sparse.DenseArray {
	out := sparse.ZerosDense(r.Rows(), r.Cols())
	r.eachRow(func(i int) {
		for j := 0; j < r.Cols(); j++ {
			gx, gy := r.gradient(i, j)
			out.Set(degrees(math.Atan(math.Hypot(gx, gy))), i, j)
		}
	})
	return out
}

// Aspect returns the compass bearing of steepest descent in degrees
// [0, 360), 0 = north, increasing clockwise. Flat cells, where both
// gradient components are zero, are assigned bearing 0; the direction of
// steepest descent is undefined there and the fixed sentinel keeps the
// output deterministic. Nodata propagates as in Slope.
func (r *Raster) Aspect() *sparse.DenseArray {
	out := sparse.ZerosDense(r.Rows(), r.Cols())
	r.eachRow(func(i int) {
		for j := 0; j < r.Cols(); j++ {
			gx, gy := r.gradient(i, j)
			out.Set(bearing(gx, gy), i, j)
		}
	})
	return out
}

// gradient estimates the x- and y-direction elevation gradients at
// (i, j) with the Horn 1-2-1 kernel and edge-replicate padding.
func (r *Raster) gradient(i, j int) (gx, gy float64) {
	// The 1-2-1 kernel never samples the center cell, but a nodata
	// cell must still produce a nodata gradient.
	if r.IsNoData(i, j) {
		return math.NaN(), math.NaN()
	}
	z := func(ii, jj int) float64 {
		return r.data.Get(clamp(ii, r.Rows()-1), clamp(jj, r.Cols()-1))
	}
	d := 8 * r.cellSize
	gx = ((z(i-1, j+1) + 2*z(i, j+1) + z(i+1, j+1)) -
		(z(i-1, j-1) + 2*z(i, j-1) + z(i+1, j-1))) / d
	gy = ((z(i+1, j-1) + 2*z(i+1, j) + z(i+1, j+1)) -
		(z(i-1, j-1) + 2*z(i-1, j) + z(i-1, j+1))) / d
	return gx, gy
}

// bearing converts gradient components to a compass bearing in [0, 360).
func bearing(gx, gy float64) float64 {
	if gx == 0 && gy == 0 {
		return 0 // flat ground sentinel
	}
	b := math.Mod(90-degrees(math.Atan2(-gy, gx)), 360)
	if b < 0 {
		b += 360
	}
	return b
}

// eachRow runs f over every row index, spreading rows across processors.
// Each invocation writes only to its own row, so the result does not
// depend on scheduling.
func (r *Raster) eachRow(f func(i int)) {
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for i := p; i < r.Rows(); i += nprocs {
				f(i)
			}
		}(p)
	}
	wg.Wait()
}

func clamp(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
