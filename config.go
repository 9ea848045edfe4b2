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

// Version gives the version number.
const Version = "1.0.0"

// Config holds the analysis parameters. It is a plain immutable value
// passed into each operation; there is no ambient or mutable global
// configuration.
type Config struct {
	// MaxSlope is the maximum buildable slope in degrees.
	MaxSlope float64
	// MinArea is the minimum contiguous buildable region area in
	// square feet; smaller isolated patches are discarded.
	MinArea float64

	// RoadReserveFraction and OpenSpaceFraction are the shares of
	// gross site area reserved for roads and open space.
	RoadReserveFraction float64
	OpenSpaceFraction   float64

	// Lot geometry in feet: rectangle dimensions, minimum center
	// spacing, and the target area per lot in square feet.
	LotWidth      float64
	LotDepth      float64
	MinSpacing    float64
	TargetLotArea float64

	// SoilSwellFactor expands excavated cut material and
	// SoilShrinkFactor compacts placed fill. The cut/fill volumes
	// themselves stay symmetric bank measures; these factors apply
	// only in the bid-estimate takeoff.
	SoilSwellFactor  float64
	SoilShrinkFactor float64
}

// DefaultConfig returns the standard subdivision parameters: 15° maximum
// slope, 5000 sq ft minimum region, 20% road and 15% open-space reserve,
// 100×150 ft lots on half-acre targets.
func DefaultConfig() Config {
	return Config{
		MaxSlope:            15,
		MinArea:             5000,
		RoadReserveFraction: 0.20,
		OpenSpaceFraction:   0.15,
		LotWidth:            100,
		LotDepth:            150,
		MinSpacing:          100,
		TargetLotArea:       0.5 * SqFeetPerAcre,
		SoilSwellFactor:     1.25,
		SoilShrinkFactor:    0.90,
	}
}

// Valid checks the configuration for values the pipeline would reject.
func (c Config) Valid() error {
	if c.MaxSlope < 0 {
		return errInvalid("maximum slope %g must not be negative", c.MaxSlope)
	}
	if c.MinArea < 0 {
		return errInvalid("minimum region area %g must not be negative", c.MinArea)
	}
	if c.RoadReserveFraction < 0 || c.OpenSpaceFraction < 0 {
		return errInvalid("reservation fractions %g, %g must not be negative",
			c.RoadReserveFraction, c.OpenSpaceFraction)
	}
	if c.RoadReserveFraction+c.OpenSpaceFraction > 1 {
		return errInvalid("reservation fractions %g + %g exceed the whole site",
			c.RoadReserveFraction, c.OpenSpaceFraction)
	}
	if c.LotWidth <= 0 || c.LotDepth <= 0 {
		return errInvalid("lot dimensions %g×%g must be positive", c.LotWidth, c.LotDepth)
	}
	if c.TargetLotArea <= 0 {
		return errInvalid("target lot area %g must be positive", c.TargetLotArea)
	}
	if c.SoilSwellFactor < 1 {
		return errInvalid("soil swell factor %g must be at least 1", c.SoilSwellFactor)
	}
	if c.SoilShrinkFactor <= 0 || c.SoilShrinkFactor > 1 {
		return errInvalid("soil shrink factor %g must be in (0, 1]", c.SoilShrinkFactor)
	}
	return nil
}
