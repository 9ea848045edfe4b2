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

	"github.com/ctessum/geom"
)

// LotCenter is a candidate lot center point in site-projected
// coordinates.
type LotCenter struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Lot is a lot polygon clipped to the site boundary. The polygon may be
// concave or multi-part after clipping.
type Lot struct {
	ID      int          `json:"id"`
	Polygon geom.Polygon `json:"polygon"`
}

// LotCenters places a regular grid of candidate lot centers inside the
// boundary. Grid spacing is the larger of minSpacing and the side of a
// square lot of targetLotArea. The scan starts half a spacing in from the
// boundary's minimum corner and proceeds y-ascending outer, x-ascending
// inner; ids follow that order starting at 0, so the enumeration is
// reproducible. Only points strictly inside the boundary are emitted.
func LotCenters(boundary geom.Polygonal, targetLotArea, minSpacing float64) ([]LotCenter, error) {
	if boundary == nil || boundary.Area() == 0 {
		return nil, errInvalid("boundary polygon has zero area")
	}
	if targetLotArea <= 0 {
		return nil, errInvalid("target lot area %g must be positive", targetLotArea)
	}
	spacing := math.Max(minSpacing, math.Sqrt(targetLotArea))

	b := boundary.Bounds()
	var centers []LotCenter
	for y := b.Min.Y + spacing/2; y < b.Max.Y; y += spacing {
		for x := b.Min.X + spacing/2; x < b.Max.X; x += spacing {
			if (geom.Point{X: x, Y: y}).Within(boundary) == geom.Inside {
				centers = append(centers, LotCenter{ID: len(centers), X: x, Y: y})
			}
		}
	}
	return centers, nil
}

// LotBoundaries builds an axis-aligned lotWidth×lotDepth rectangle around
// each center and clips it to the site boundary. Centers whose rectangle
// does not overlap the boundary are dropped entirely. Clipping only
// removes area, so every returned polygon is no larger than its
// generating rectangle.
func LotBoundaries(centers []LotCenter, lotWidth, lotDepth float64, boundary geom.Polygonal) ([]Lot, error) {
	if boundary == nil || boundary.Area() == 0 {
		return nil, errInvalid("boundary polygon has zero area")
	}
	if lotWidth <= 0 || lotDepth <= 0 {
		return nil, errInvalid("lot dimensions %g×%g must be positive", lotWidth, lotDepth)
	}
	var lots []Lot
	for _, c := range centers {
		rect := rectAround(c.X, c.Y, lotWidth, lotDepth)
		clipped := rect.Intersection(boundary).(geom.Polygon)
		if len(clipped) == 0 {
			continue
		}
		if err := checkRings(clipped); err != nil {
			return nil, err
		}
		lots = append(lots, Lot{ID: c.ID, Polygon: clipped})
	}
	return lots, nil
}

// rectAround returns a closed rectangular ring centered on (x, y).
func rectAround(x, y, width, depth float64) geom.Polygon {
	hw, hd := width/2, depth/2
	return geom.Polygon{{
		{X: x - hw, Y: y - hd},
		{X: x + hw, Y: y - hd},
		{X: x + hw, Y: y + hd},
		{X: x - hw, Y: y + hd},
		{X: x - hw, Y: y - hd},
	}}
}

// checkRings rejects clip output that collapsed numerically.
func checkRings(p geom.Polygon) error {
	for _, ring := range p {
		if len(ring) < 3 {
			return errComputation("clipping produced a degenerate ring with %d points", len(ring))
		}
		for _, pt := range ring {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				return errComputation("clipping produced a non-finite vertex")
			}
		}
	}
	if a := p.Area(); math.IsNaN(a) {
		return errComputation("clipping produced a polygon with undefined area")
	}
	return nil
}
