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

import "github.com/ctessum/geom"

// Analysis binds a raster, a site boundary, and a configuration for a
// single pipeline invocation. The raster and boundary are owned by the
// invocation and must not be mutated while Run executes.
type Analysis struct {
	Raster   *Raster
	Boundary geom.Polygonal
	Config   Config
}

// Result combines the outputs of both analysis branches.
type Result struct {
	ElevationStats      GridStats     `json:"elevation_stats"`
	SlopeStats          GridStats     `json:"slope_stats"`
	AspectStats         GridStats     `json:"aspect_stats"`
	BuildablePct        float64       `json:"buildable_pct"`
	OptimalPadElevation float64       `json:"optimal_pad_elevation"`
	Earthwork           Earthwork     `json:"cut_fill"`
	Centers             []LotCenter   `json:"lot_centers"`
	Lots                []Lot         `json:"lots"`
	Yield               YieldEstimate `json:"yield"`
}

// Run executes the terrain branch (slope, buildability, pad elevation,
// cut/fill) and the layout branch (lot centers, clipped lots, yield) and
// combines their outputs. The branches share no state; either could run
// without the other.
func (a *Analysis) Run() (*Result, error) {
	if a.Raster == nil {
		return nil, errInvalid("analysis requires an elevation raster")
	}
	if a.Boundary == nil {
		return nil, errInvalid("analysis requires a boundary polygon")
	}
	if err := a.Config.Valid(); err != nil {
		return nil, err
	}
	res := &Result{}

	// Terrain branch.
	elevStats, err := a.Raster.Stats()
	if err != nil {
		return nil, err
	}
	res.ElevationStats = elevStats

	slope := a.Raster.Slope()
	res.SlopeStats, err = SummaryStats(slope)
	if err != nil {
		return nil, err
	}
	res.AspectStats, err = SummaryStats(a.Raster.Aspect())
	if err != nil {
		return nil, err
	}

	mask, err := a.Raster.Buildable(slope, a.Config.MaxSlope, a.Config.MinArea)
	if err != nil {
		return nil, err
	}
	res.BuildablePct = mask.Percent()

	res.OptimalPadElevation, err = a.Raster.OptimalPadElevation(mask)
	if err != nil {
		return nil, err
	}
	res.Earthwork, err = a.Raster.CutFill(res.OptimalPadElevation, mask)
	if err != nil {
		return nil, err
	}

	// Layout branch.
	res.Centers, err = LotCenters(a.Boundary, a.Config.TargetLotArea, a.Config.MinSpacing)
	if err != nil {
		return nil, err
	}
	res.Lots, err = LotBoundaries(res.Centers, a.Config.LotWidth, a.Config.LotDepth, a.Boundary)
	if err != nil {
		return nil, err
	}
	res.Yield, err = Yield(a.Boundary.Area(), a.Config.TargetLotArea,
		a.Config.RoadReserveFraction, a.Config.OpenSpaceFraction)
	if err != nil {
		return nil, err
	}
	return res, nil
}
