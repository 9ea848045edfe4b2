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
	"reflect"
	"testing"
)

func TestYield(t *testing.T) {
	// 100 000 sq ft gross, 20% roads, 15% open space, half-acre lots.
	have, err := Yield(100000, 21780, 0.20, 0.15)
	if err != nil {
		t.Fatal(err)
	}
	want := YieldEstimate{
		GrossArea:     100000,
		RoadArea:      20000,
		OpenSpaceArea: 15000,
		NetArea:       65000,
		TargetLotArea: 21780,
		MaxLots:       2,
	}
	if !reflect.DeepEqual(want, have) {
		t.Errorf("want %+v but have %+v", want, have)
	}
}

func TestYieldZeroLotArea(t *testing.T) {
	have, err := Yield(100000, 0, 0.20, 0.15)
	if err != nil {
		t.Fatal(err)
	}
	if have.MaxLots != 0 {
		t.Errorf("non-positive lot area: want 0 lots but have %d", have.MaxLots)
	}
}

func TestYieldInvalid(t *testing.T) {
	var invalid *InvalidInputError
	if _, err := Yield(0, 21780, 0.2, 0.15); !errors.As(err, &invalid) {
		t.Errorf("zero gross area: want InvalidInputError but have %v", err)
	}
	if _, err := Yield(100000, 21780, -0.1, 0.15); !errors.As(err, &invalid) {
		t.Errorf("negative fraction: want InvalidInputError but have %v", err)
	}
}
