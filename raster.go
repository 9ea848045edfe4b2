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

// Package siteplan analyzes terrain elevation rasters for construction
// feasibility and lays out candidate building lots inside a site boundary.
//
// The terrain branch derives slope and aspect from a digital elevation
// model, filters the result into a buildable mask, and estimates the
// earthwork required to grade a pad. The layout branch places a regular
// grid of lot centers inside a boundary polygon, clips rectangular lots to
// the boundary, and estimates lot yield. The two branches are independent;
// Analysis combines them.
//
// All operations are pure functions over immutable inputs and return typed
// errors; input and output handling belongs to the caller.
package siteplan

import (
	"math"
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Unit conversions. Raster cell sizes are in meters; areas for lot and
// region thresholds are in square feet and earthwork volumes are reported
// in cubic yards, matching the reporting conventions of the surrounding
// civil work.
const (
	sqFeetPerSqMeter        = 10.7639
	cubicYardsPerCubicMeter = 1.30795

	// SqFeetPerAcre converts acreage to the square-foot areas used
	// throughout the layout branch.
	SqFeetPerAcre = 43560.0
)

// NoData is the sentinel marking raster cells with no elevation sample.
var NoData = math.NaN()

// Raster is an immutable grid of elevation samples. Cells with no data
// hold NaN. CellSize is the ground distance covered by one cell edge.
type Raster struct {
	data     *sparse.DenseArray
	cellSize float64
}

// NewRaster creates a raster from row-major elevation values.
// The elevation slice is copied, so the caller may reuse it.
func NewRaster(rows, cols int, cellSize float64, elev []float64) (*Raster, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errInvalid("raster shape %d×%d must be positive", rows, cols)
	}
	if cellSize <= 0 {
		return nil, errInvalid("cell size %g must be positive", cellSize)
	}
	if len(elev) != rows*cols {
		return nil, errInvalid("raster shape %d×%d requires %d values; got %d",
			rows, cols, rows*cols, len(elev))
	}
	data := sparse.ZerosDense(rows, cols)
	copy(data.Elements, elev)
	return &Raster{data: data, cellSize: cellSize}, nil
}

// Rows returns the number of rows in the raster.
func (r *Raster) Rows() int { return r.data.Shape[0] }

// Cols returns the number of columns in the raster.
func (r *Raster) Cols() int { return r.data.Shape[1] }

// CellSize returns the ground distance covered by one cell edge.
func (r *Raster) CellSize() float64 { return r.cellSize }

// Z returns the elevation at row i, column j. The result is NaN for
// nodata cells.
func (r *Raster) Z(i, j int) float64 { return r.data.Get(i, j) }

// IsNoData reports whether the cell at row i, column j has no sample.
func (r *Raster) IsNoData(i, j int) bool { return math.IsNaN(r.data.Get(i, j)) }

// GridStats summarizes the valid cells of a grid.
type GridStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Valid  int     `json:"valid_cells"`
}

// Stats summarizes the valid elevations in the raster.
func (r *Raster) Stats() (GridStats, error) {
	return SummaryStats(r.data)
}

// SummaryStats summarizes the valid (non-NaN) cells of a gridded field,
// such as a slope or aspect grid.
func SummaryStats(field *sparse.DenseArray) (GridStats, error) {
	valid := make([]float64, 0, len(field.Elements))
	for _, v := range field.Elements {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return GridStats{}, errDataQuality("no valid cells to summarize")
	}
	return GridStats{
		Min:    floats.Min(valid),
		Max:    floats.Max(valid),
		Mean:   stat.Mean(valid, nil),
		Median: median(valid),
		StdDev: stat.StdDev(valid, nil),
		Valid:  len(valid),
	}, nil
}

// median returns the statistical median of xs, averaging the two middle
// values for even-length input. xs is reordered in place.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

// sameShape reports whether the field has the raster's shape.
func (r *Raster) sameShape(field *sparse.DenseArray) bool {
	return len(field.Shape) == 2 &&
		field.Shape[0] == r.Rows() && field.Shape[1] == r.Cols()
}
