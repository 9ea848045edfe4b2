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

import "math"

// Earthwork holds grading volumes in cubic yards.
type Earthwork struct {
	CutCY  float64 `json:"cut_cy"`
	FillCY float64 `json:"fill_cy"`
}

// OptimalPadElevation returns the pad elevation minimizing total
// earthwork under a symmetric unit-cost model: the median of the valid
// elevations. A non-nil mask restricts the computation to masked-in
// cells. It returns a DataQualityError when no valid cells remain.
func (r *Raster) OptimalPadElevation(mask *Mask) (float64, error) {
	if err := r.checkMask(mask); err != nil {
		return 0, err
	}
	valid := make([]float64, 0, len(r.data.Elements))
	for k, v := range r.data.Elements {
		if math.IsNaN(v) || (mask != nil && !mask.Cells[k]) {
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return 0, errDataQuality("no valid elevation data in the masked area")
	}
	return median(valid), nil
}

// CutFill sums the elevation excess above the target into cut and the
// deficit below it into fill, scaled by the per-cell ground area and
// converted to cubic yards. Nodata and masked-out cells contribute to
// neither sum. Cut and fill are symmetric bank volumes; no soil swell or
// shrink factors are applied here.
func (r *Raster) CutFill(target float64, mask *Mask) (Earthwork, error) {
	if err := r.checkMask(mask); err != nil {
		return Earthwork{}, err
	}
	var cut, fill float64
	for k, v := range r.data.Elements {
		if math.IsNaN(v) || (mask != nil && !mask.Cells[k]) {
			continue
		}
		diff := v - target
		if diff > 0 {
			cut += diff
		} else {
			fill -= diff
		}
	}
	cellVolume := r.cellSize * r.cellSize
	return Earthwork{
		CutCY:  cut * cellVolume * cubicYardsPerCubicMeter,
		FillCY: fill * cellVolume * cubicYardsPerCubicMeter,
	}, nil
}

func (r *Raster) checkMask(mask *Mask) error {
	if mask != nil && (mask.Rows != r.Rows() || mask.Cols != r.Cols()) {
		return errInvalid("mask shape %d×%d does not match raster %d×%d",
			mask.Rows, mask.Cols, r.Rows(), r.Cols())
	}
	return nil
}
