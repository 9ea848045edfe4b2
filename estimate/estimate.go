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

// Package estimate turns site analysis results into a sectioned
// construction bid estimate. It covers the quantity takeoff and the
// price arithmetic only; rendering the estimate into a workbook or
// report belongs to the caller.
package estimate

import (
	"math"

	"github.com/sitemodel/siteplan"
)

// LineItem is one priced bid item. Qty is in the item's Unit (CY, SY,
// LF, EA, AC, SF, or LS for lump sums).
type LineItem struct {
	Code        string  `json:"item"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns the extended price of the item.
func (li LineItem) Amount() float64 { return li.Qty * li.UnitPrice }

// Section groups related line items under one bid division.
type Section struct {
	Name  string     `json:"section"`
	Items []LineItem `json:"items"`
}

// Total returns the sum of the section's extended prices.
func (s Section) Total() float64 {
	var t float64
	for _, li := range s.Items {
		t += li.Amount()
	}
	return t
}

// GrandTotal sums every section total.
func GrandTotal(sections []Section) float64 {
	var t float64
	for _, s := range sections {
		t += s.Total()
	}
	return t
}

// Takeoff fills the default unit-price catalog with quantities derived
// from an analysis result. The soil swell and shrink factors from the
// configuration are applied here, to the hauled quantities, keeping the
// analysis cut/fill volumes themselves symmetric bank measures.
func Takeoff(res *siteplan.Result, cfg siteplan.Config) []Section {
	sections := DefaultSections()

	grossAcres := res.Yield.GrossArea / siteplan.SqFeetPerAcre
	openAcres := res.Yield.OpenSpaceArea / siteplan.SqFeetPerAcre
	lots := float64(res.Yield.MaxLots)

	// Loose excavated volume expands by the swell factor; placed fill
	// compacts, so more loose material is hauled than ends up in place.
	cutLoose := res.Earthwork.CutCY * cfg.SoilSwellFactor
	fillLoose := res.Earthwork.FillCY / cfg.SoilShrinkFactor

	set := func(code string, qty float64) {
		for si := range sections {
			for ii := range sections[si].Items {
				if sections[si].Items[ii].Code == code {
					sections[si].Items[ii].Qty = qty
					return
				}
			}
		}
	}

	set("EW-1", grossAcres)
	set("EW-2", res.Earthwork.CutCY+res.Earthwork.FillCY)
	set("EW-7", math.Abs(cutLoose-fillLoose))
	set("EC-5", grossAcres)
	set("EC-6", openAcres)
	set("SS-3", lots)
	set("W-5", lots)
	set("PC-6", lots)

	return sections
}

// DefaultSections returns the unit-price catalog. Prices are calibrated
// against recent Upstate South Carolina subdivision bid data; quantities
// start at zero except for the lump-sum items.
func DefaultSections() []Section {
	return []Section{
		{Name: "Earthwork", Items: []LineItem{
			{"EW-1", "Clearing & Grubbing", "AC", 0, 5500},
			{"EW-2", "Mass Excavation/Fill", "CY", 0, 5},
			{"EW-3", "Topsoil Strip & Stockpile", "CY", 0, 2.50},
			{"EW-4", "Topsoil Respread", "CY", 0, 3},
			{"EW-5", "Fine Grade Subgrade", "SY", 0, 0.75},
			{"EW-6", "Proof Rolling", "SY", 0, 0.40},
			{"EW-7", "Import/Export Haul", "CY", 0, 6.50},
		}},
		{Name: "Erosion Control", Items: []LineItem{
			{"EC-1", "Construction Entrance", "EA", 0, 2200},
			{"EC-2", "Silt Fence w/ J-hooks", "LF", 0, 3.50},
			{"EC-3", "Inlet Protection", "EA", 0, 175},
			{"EC-4", "Erosion Control Matting", "SY", 0, 1.40},
			{"EC-5", "Temporary Seeding & Mulch", "AC", 0, 1800},
			{"EC-6", "Permanent Seeding", "AC", 0, 3000},
		}},
		{Name: "Storm Drainage", Items: []LineItem{
			{"SD-1", `15" RCP Storm Pipe`, "LF", 0, 75},
			{"SD-2", `18" RCP Storm Pipe`, "LF", 0, 90},
			{"SD-3", `24" RCP Storm Pipe`, "LF", 0, 125},
			{"SD-4", "Catch Basin / Inlet", "EA", 0, 3200},
			{"SD-5", "Storm Manhole", "EA", 0, 3800},
			{"SD-6", "Headwall / Endwall w/ Riprap", "EA", 0, 3500},
			{"SD-7", "Outlet Control Structure", "EA", 0, 7500},
			{"SD-8", "Pond Excavation", "CY", 0, 6},
			{"SD-9", "Pond Grading", "SY", 0, 1.25},
		}},
		{Name: "Sanitary Sewer", Items: []LineItem{
			{"SS-1", `8" PVC Sanitary Sewer`, "LF", 0, 40},
			{"SS-2", "Sanitary Manhole (4' Dia.)", "EA", 0, 3800},
			{"SS-3", `4" Sewer Service Lateral`, "EA", 0, 1200},
			{"SS-4", "Connect to Existing Sewer", "EA", 0, 2500},
		}},
		{Name: "Water", Items: []LineItem{
			{"W-1", `8" DIP Water Main`, "LF", 0, 45},
			{"W-2", "Fire Hydrant Assembly", "EA", 0, 4000},
			{"W-3", "Gate Valve & Box", "EA", 0, 1600},
			{"W-4", "Tapping Sleeve & Valve", "EA", 0, 3000},
			{"W-5", `3/4" Water Service & Meter`, "EA", 0, 1500},
		}},
		{Name: "Paving & Concrete", Items: []LineItem{
			{"PC-1", `Asphalt Base Course (2")`, "SY", 0, 18},
			{"PC-2", `Asphalt Surface Course (1.5")`, "SY", 0, 22},
			{"PC-3", `Curb & Gutter (24")`, "LF", 0, 26},
			{"PC-4", `4" Concrete Sidewalk`, "SF", 0, 8},
			{"PC-5", "ADA Ramp", "EA", 0, 1000},
			{"PC-6", "Driveway Apron", "EA", 0, 3000},
		}},
		{Name: "Striping & Signage", Items: []LineItem{
			{"ST-1", `4" Thermoplastic Striping`, "LF", 0, 0.90},
			{"ST-2", `Stop Bar (24")`, "EA", 0, 350},
			{"ST-3", "Pavement Arrows", "EA", 0, 250},
			{"ST-4", "Regulatory Signs (Stop, Street)", "EA", 0, 350},
		}},
		{Name: "Fencing & Misc", Items: []LineItem{
			{"FM-1", "6' Chain Link Fence", "LF", 0, 28},
			{"FM-2", "12' Swing Gate", "EA", 0, 1500},
			{"FM-3", "Mobilization", "LS", 1, 0},
			{"FM-4", "Bonds & Insurance", "LS", 1, 0},
		}},
	}
}
