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
	"errors"
	"math"
	"testing"
)

func TestCutFillFlat(t *testing.T) {
	r, err := NewRaster(2, 2, 1, []float64{10, 10, 10, 10})
	if err != nil {
		t.Fatal(err)
	}
	ew, err := r.CutFill(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ew.CutCY != 0 || ew.FillCY != 0 {
		t.Errorf("flat grid at grade: want 0/0 but have %g/%g", ew.CutCY, ew.FillCY)
	}
}

func TestCutFillVolumes(t *testing.T) {
	// One cell 2 m above target, one 2 m below, 1 m cells.
	r, err := NewRaster(1, 2, 1, []float64{12, 8})
	if err != nil {
		t.Fatal(err)
	}
	ew, err := r.CutFill(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * cubicYardsPerCubicMeter
	if math.Abs(ew.CutCY-want) > testTolerance {
		t.Errorf("cut: want %g but have %g", want, ew.CutCY)
	}
	if math.Abs(ew.FillCY-want) > testTolerance {
		t.Errorf("fill: want %g but have %g", want, ew.FillCY)
	}
}

func TestCutFillCellArea(t *testing.T) {
	// Doubling the cell size quadruples the per-cell volume.
	r, err := NewRaster(1, 1, 2, []float64{11})
	if err != nil {
		t.Fatal(err)
	}
	ew, err := r.CutFill(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := 4 * cubicYardsPerCubicMeter
	if math.Abs(ew.CutCY-want) > testTolerance {
		t.Errorf("cut: want %g but have %g", want, ew.CutCY)
	}
}

func TestOptimalPadElevationIsMedian(t *testing.T) {
	r, err := NewRaster(2, 2, 1, []float64{0, 1, 2, 100})
	if err != nil {
		t.Fatal(err)
	}
	pad, err := r.OptimalPadElevation(nil)
	if err != nil {
		t.Fatal(err)
	}
	if pad != 1.5 {
		t.Errorf("want median 1.5 but have %g", pad)
	}
}

func TestMedianMinimizesEarthwork(t *testing.T) {
	r, err := NewRaster(2, 3, 1, []float64{3, 7, 1, 12, 5, 40})
	if err != nil {
		t.Fatal(err)
	}
	pad, err := r.OptimalPadElevation(nil)
	if err != nil {
		t.Fatal(err)
	}
	atPad, err := r.CutFill(pad, nil)
	if err != nil {
		t.Fatal(err)
	}
	best := atPad.CutCY + atPad.FillCY
	for _, target := range []float64{-10, 0, 1, 3, 5, 6, 7, 12, 40, 100} {
		ew, err := r.CutFill(target, nil)
		if err != nil {
			t.Fatal(err)
		}
		if total := ew.CutCY + ew.FillCY; total < best-testTolerance {
			t.Errorf("target %g: total %g beats the median's %g", target, total, best)
		}
	}
}

func TestOptimalPadElevationMasked(t *testing.T) {
	r, err := NewRaster(1, 4, 1, []float64{1, 2, 3, 1000})
	if err != nil {
		t.Fatal(err)
	}
	mask := &Mask{Cells: []bool{true, true, true, false}, Rows: 1, Cols: 4}
	pad, err := r.OptimalPadElevation(mask)
	if err != nil {
		t.Fatal(err)
	}
	if pad != 2 {
		t.Errorf("masked median: want 2 but have %g", pad)
	}
}

func TestOptimalPadElevationNoData(t *testing.T) {
	r, err := NewRaster(1, 2, 1, []float64{NoData, NoData})
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.OptimalPadElevation(nil)
	var dq *DataQualityError
	if !errors.As(err, &dq) {
		t.Errorf("want DataQualityError but have %v", err)
	}

	// A mask excluding every valid cell fails the same way.
	r2, err := NewRaster(1, 2, 1, []float64{5, 6})
	if err != nil {
		t.Fatal(err)
	}
	mask := &Mask{Cells: []bool{false, false}, Rows: 1, Cols: 2}
	_, err = r2.OptimalPadElevation(mask)
	if !errors.As(err, &dq) {
		t.Errorf("want DataQualityError but have %v", err)
	}
}

func TestCutFillMaskShapeMismatch(t *testing.T) {
	r, err := NewRaster(2, 2, 1, make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	mask := &Mask{Cells: make([]bool, 6), Rows: 2, Cols: 3}
	_, err = r.CutFill(0, mask)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("want InvalidInputError but have %v", err)
	}
}

func TestCutFillExcludesNoData(t *testing.T) {
	r, err := NewRaster(1, 3, 1, []float64{12, NoData, 8})
	if err != nil {
		t.Fatal(err)
	}
	ew, err := r.CutFill(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * cubicYardsPerCubicMeter
	if math.Abs(ew.CutCY-want) > testTolerance || math.Abs(ew.FillCY-want) > testTolerance {
		t.Errorf("want %g/%g but have %g/%g", want, want, ew.CutCY, ew.FillCY)
	}
}
