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

package estimate

import (
	"math"
	"testing"

	"github.com/sitemodel/siteplan"
)

func testResult() *siteplan.Result {
	return &siteplan.Result{
		Earthwork: siteplan.Earthwork{CutCY: 1000, FillCY: 900},
		Yield: siteplan.YieldEstimate{
			GrossArea:     10 * siteplan.SqFeetPerAcre,
			OpenSpaceArea: 1.5 * siteplan.SqFeetPerAcre,
			MaxLots:       12,
		},
	}
}

func findItem(t *testing.T, sections []Section, code string) LineItem {
	t.Helper()
	for _, s := range sections {
		for _, li := range s.Items {
			if li.Code == code {
				return li
			}
		}
	}
	t.Fatalf("line item %s not found", code)
	return LineItem{}
}

func TestTakeoffQuantities(t *testing.T) {
	cfg := siteplan.DefaultConfig()
	sections := Takeoff(testResult(), cfg)

	if have := findItem(t, sections, "EW-1").Qty; have != 10 {
		t.Errorf("clearing acreage: want 10 but have %g", have)
	}
	if have := findItem(t, sections, "EW-2").Qty; have != 1900 {
		t.Errorf("mass excavation: want 1900 but have %g", have)
	}
	// Haul is the swell/shrink-adjusted imbalance:
	// |1000·1.25 − 900/0.90| = 250.
	if have := findItem(t, sections, "EW-7").Qty; math.Abs(have-250) > 1e-9 {
		t.Errorf("haul: want 250 but have %g", have)
	}
	if have := findItem(t, sections, "EC-6").Qty; have != 1.5 {
		t.Errorf("permanent seeding: want 1.5 but have %g", have)
	}
	for _, code := range []string{"SS-3", "W-5", "PC-6"} {
		if have := findItem(t, sections, code).Qty; have != 12 {
			t.Errorf("%s: want one per lot (12) but have %g", code, have)
		}
	}
}

func TestSectionTotals(t *testing.T) {
	s := Section{Name: "Earthwork", Items: []LineItem{
		{Code: "EW-2", Unit: "CY", Qty: 100, UnitPrice: 5},
		{Code: "EW-7", Unit: "CY", Qty: 10, UnitPrice: 6.50},
	}}
	if have := s.Total(); have != 565 {
		t.Errorf("section total: want 565 but have %g", have)
	}
	if have := GrandTotal([]Section{s, s}); have != 1130 {
		t.Errorf("grand total: want 1130 but have %g", have)
	}
}

func TestTakeoffDoesNotMutateCatalog(t *testing.T) {
	_ = Takeoff(testResult(), siteplan.DefaultConfig())
	for _, s := range DefaultSections() {
		for _, li := range s.Items {
			if li.Unit != "LS" && li.Qty != 0 {
				t.Errorf("catalog item %s quantity changed to %g", li.Code, li.Qty)
			}
		}
	}
}

func TestGrandTotalAfterTakeoff(t *testing.T) {
	sections := Takeoff(testResult(), siteplan.DefaultConfig())
	// 10·5500 + 1900·5 + 250·6.50 + 10·1800 + 1.5·3000 +
	// 12·1200 + 12·1500 + 12·3000.
	want := 55000.0 + 9500 + 1625 + 18000 + 4500 + 14400 + 18000 + 36000
	if have := GrandTotal(sections); math.Abs(have-want) > 1e-6 {
		t.Errorf("grand total: want %g but have %g", want, have)
	}
}
