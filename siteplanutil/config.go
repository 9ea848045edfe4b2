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

package siteplanutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sitemodel/siteplan"
	"github.com/spf13/cast"
)

// AnalysisConfig unmarshals a viper configuration into the analysis
// parameters, falling back to the standard defaults for unset keys.
func AnalysisConfig(cfg *viper.Viper) (siteplan.Config, error) {
	c := siteplan.DefaultConfig()
	fields := []struct {
		key string
		dst *float64
	}{
		{"MaxSlope", &c.MaxSlope},
		{"MinArea", &c.MinArea},
		{"RoadReserveFraction", &c.RoadReserveFraction},
		{"OpenSpaceFraction", &c.OpenSpaceFraction},
		{"LotWidth", &c.LotWidth},
		{"LotDepth", &c.LotDepth},
		{"MinSpacing", &c.MinSpacing},
		{"TargetLotArea", &c.TargetLotArea},
		{"SoilSwellFactor", &c.SoilSwellFactor},
		{"SoilShrinkFactor", &c.SoilShrinkFactor},
	}
	for _, f := range fields {
		if !cfg.IsSet(f.key) {
			continue
		}
		v, err := cast.ToFloat64E(cfg.Get(f.key))
		if err != nil {
			return c, fmt.Errorf("siteplanutil: %s: %v", f.key, err)
		}
		*f.dst = v
	}
	return c, c.Valid()
}

// expandEnv expands environment variables in a file path.
func expandEnv(path string) string {
	return os.ExpandEnv(path)
}
