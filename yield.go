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

// YieldEstimate records the derived areas and maximum lot count for a
// site. All areas are in square feet.
type YieldEstimate struct {
	GrossArea     float64 `json:"gross_area"`
	RoadArea      float64 `json:"road_area"`
	OpenSpaceArea float64 `json:"open_space_area"`
	NetArea       float64 `json:"net_area"`
	TargetLotArea float64 `json:"target_lot_area"`
	MaxLots       int     `json:"max_lots"`
}

// Yield estimates the maximum number of lots a site can support after
// reserving fractions of the gross area for roads and open space.
// A non-positive target lot area yields zero lots.
func Yield(grossArea, targetLotArea, roadFrac, openFrac float64) (YieldEstimate, error) {
	if grossArea <= 0 {
		return YieldEstimate{}, errInvalid("gross area %g must be positive", grossArea)
	}
	if roadFrac < 0 || openFrac < 0 {
		return YieldEstimate{}, errInvalid("reservation fractions %g, %g must not be negative",
			roadFrac, openFrac)
	}
	roadArea := grossArea * roadFrac
	openArea := grossArea * openFrac
	netArea := grossArea - roadArea - openArea
	maxLots := 0
	if targetLotArea > 0 {
		maxLots = int(math.Floor(netArea / targetLotArea))
	}
	return YieldEstimate{
		GrossArea:     grossArea,
		RoadArea:      roadArea,
		OpenSpaceArea: openArea,
		NetArea:       netArea,
		TargetLotArea: targetLotArea,
		MaxLots:       maxLots,
	}, nil
}
