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

	"github.com/ctessum/sparse"
)

// Mask is a boolean grid aligned with the raster that produced it.
type Mask struct {
	Cells      []bool
	Rows, Cols int
}

// At reports the mask value at row i, column j.
func (m *Mask) At(i, j int) bool { return m.Cells[i*m.Cols+j] }

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.Cells {
		if c {
			n++
		}
	}
	return n
}

// Percent returns the share of true cells as a percentage of all cells.
func (m *Mask) Percent() float64 {
	return 100 * float64(m.Count()) / float64(len(m.Cells))
}

// Buildable thresholds the slope grid at maxSlope degrees, labels the
// 4-connected regions of the result, and clears regions covering less
// than minArea square feet of ground. Nodata slope cells are never
// buildable. The returned mask is the only output; region labels are an
// implementation detail.
//
// Labeling is a row-major two-pass union-find scan, so the mask depends
// only on the grid contents, never on execution order.
func (r *Raster) Buildable(slope *sparse.DenseArray, maxSlope, minArea float64) (*Mask, error) {
	if !r.sameShape(slope) {
		return nil, errInvalid("slope grid shape %v does not match raster %d×%d",
			slope.Shape, r.Rows(), r.Cols())
	}
	if minArea < 0 {
		return nil, errInvalid("minimum region area %g must not be negative", minArea)
	}
	rows, cols := r.Rows(), r.Cols()

	candidate := make([]bool, rows*cols)
	for i, v := range slope.Elements {
		candidate[i] = !math.IsNaN(v) && v <= maxSlope
	}

	labels, counts := labelRegions(candidate, rows, cols)

	cellArea := r.cellSize * r.cellSize * sqFeetPerSqMeter
	out := make([]bool, rows*cols)
	for i, lb := range labels {
		out[i] = lb >= 0 && float64(counts[lb])*cellArea >= minArea
	}
	return &Mask{Cells: out, Rows: rows, Cols: cols}, nil
}

// labelRegions labels the 4-connected true regions of a row-major grid.
// It returns a dense label per cell (-1 where false) and the cell count of
// each label. Labels are assigned in scan order of each region's first
// cell, starting at 0.
func labelRegions(candidate []bool, rows, cols int) (labels []int, counts []int) {
	uf := newUnionFind(len(candidate))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			k := i*cols + j
			if !candidate[k] {
				continue
			}
			if j > 0 && candidate[k-1] {
				uf.union(k, k-1)
			}
			if i > 0 && candidate[k-cols] {
				uf.union(k, k-cols)
			}
		}
	}

	// Second pass: resolve roots to dense ids in first-occurrence order.
	labels = make([]int, len(candidate))
	id := make(map[int]int)
	for k := range candidate {
		if !candidate[k] {
			labels[k] = -1
			continue
		}
		root := uf.find(k)
		lb, ok := id[root]
		if !ok {
			lb = len(counts)
			id[root] = lb
			counts = append(counts, 0)
		}
		labels[k] = lb
		counts[lb]++
	}
	return labels, counts
}

// unionFind is a disjoint-set forest with path compression and union by
// size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(i, j int) {
	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return
	}
	if uf.size[ri] < uf.size[rj] {
		ri, rj = rj, ri
	}
	uf.parent[rj] = ri
	uf.size[ri] += uf.size[rj]
}
