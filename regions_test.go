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
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

// slopeGrid builds a slope field from row-major values.
func slopeGrid(rows, cols int, vals []float64) *sparse.DenseArray {
	a := sparse.ZerosDense(rows, cols)
	copy(a.Elements, vals)
	return a
}

func TestBuildableFiltersSmallRegions(t *testing.T) {
	// Two 4-connected regions of gentle slope: four cells in the
	// northwest corner and two in the east column. With cellSize 1 m a
	// cell covers 10.7639 sq ft, so a 30 sq ft minimum keeps the
	// 4-cell region and clears the 2-cell region.
	s := 5.0  // buildable slope
	x := 40.0 // too steep
	slope := slopeGrid(4, 4, []float64{
		s, s, x, x,
		s, s, x, s,
		x, x, x, s,
		x, x, x, x,
	})
	r, err := NewRaster(4, 4, 1, make([]float64, 16))
	if err != nil {
		t.Fatal(err)
	}
	mask, err := r.Buildable(slope, 15, 30)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{
		true, true, false, false,
		true, true, false, false,
		false, false, false, false,
		false, false, false, false,
	}
	if !reflect.DeepEqual(mask.Cells, want) {
		t.Errorf("want %v but have %v", want, mask.Cells)
	}
	if have := mask.Count(); have != 4 {
		t.Errorf("count: want 4 but have %d", have)
	}
	if have := mask.Percent(); have != 25 {
		t.Errorf("percent: want 25 but have %g", have)
	}
}

func TestBuildableDiagonalNotConnected(t *testing.T) {
	// Diagonal neighbors form separate regions under 4-connectivity,
	// so two single cells both fall below a 2-cell minimum.
	s, x := 5.0, 40.0
	slope := slopeGrid(2, 2, []float64{
		s, x,
		x, s,
	})
	r, err := NewRaster(2, 2, 1, make([]float64, 4))
	if err != nil {
		t.Fatal(err)
	}
	mask, err := r.Buildable(slope, 15, 2*10.7639)
	if err != nil {
		t.Fatal(err)
	}
	if have := mask.Count(); have != 0 {
		t.Errorf("want 0 buildable cells but have %d", have)
	}
}

func TestBuildableExactThreshold(t *testing.T) {
	// A region whose area equals the minimum exactly is kept.
	s := 5.0
	slope := slopeGrid(1, 3, []float64{s, s, s})
	r, err := NewRaster(1, 3, 1, make([]float64, 3))
	if err != nil {
		t.Fatal(err)
	}
	mask, err := r.Buildable(slope, 15, 3*10.7639)
	if err != nil {
		t.Fatal(err)
	}
	if have := mask.Count(); have != 3 {
		t.Errorf("want 3 buildable cells but have %d", have)
	}
}

func TestBuildableMonotonicInMaxSlope(t *testing.T) {
	slope := slopeGrid(3, 3, []float64{
		1, 8, 20,
		3, 14, 25,
		7, 16, 31,
	})
	r, err := NewRaster(3, 3, 1, make([]float64, 9))
	if err != nil {
		t.Fatal(err)
	}
	prev := 0
	for _, maxSlope := range []float64{0, 5, 10, 15, 20, 25, 30, 35} {
		mask, err := r.Buildable(slope, maxSlope, 0)
		if err != nil {
			t.Fatal(err)
		}
		if mask.Count() < prev {
			t.Fatalf("maxSlope %g: buildable count %d dropped below %d",
				maxSlope, mask.Count(), prev)
		}
		prev = mask.Count()
	}
}

func TestBuildableNoData(t *testing.T) {
	slope := slopeGrid(1, 3, []float64{5, math.NaN(), 5})
	r, err := NewRaster(1, 3, 1, make([]float64, 3))
	if err != nil {
		t.Fatal(err)
	}
	mask, err := r.Buildable(slope, 15, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true}
	if !reflect.DeepEqual(mask.Cells, want) {
		t.Errorf("want %v but have %v", want, mask.Cells)
	}
}

func TestBuildableShapeMismatch(t *testing.T) {
	slope := slopeGrid(2, 2, make([]float64, 4))
	r, err := NewRaster(3, 3, 1, make([]float64, 9))
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Buildable(slope, 15, 0)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("want InvalidInputError but have %v", err)
	}
}

func TestLabelRegionsScanOrder(t *testing.T) {
	// A U shape: the two arms connect through the bottom row and must
	// resolve to one region no matter the union order.
	c := []bool{
		true, false, true,
		true, false, true,
		true, true, true,
	}
	labels, counts := labelRegions(c, 3, 3)
	if len(counts) != 1 {
		t.Fatalf("want 1 region but have %d", len(counts))
	}
	if counts[0] != 7 {
		t.Errorf("region size: want 7 but have %d", counts[0])
	}
	// After the bottom-row merge resolves, both arms share label 0.
	for k, lb := range labels {
		if c[k] && lb != 0 {
			t.Errorf("cell %d: want label 0 but have %d", k, lb)
		}
		if !c[k] && lb != -1 {
			t.Errorf("cell %d: want label -1 but have %d", k, lb)
		}
	}
}
