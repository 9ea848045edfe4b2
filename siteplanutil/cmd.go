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

// Package siteplanutil holds the configuration and command surface
// around the analysis core: option handling, input readers, and the
// JSON web service.
package siteplanutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ctessum/geom"
	"github.com/lnashier/viper"
	"github.com/sitemodel/siteplan"
	"github.com/sitemodel/siteplan/estimate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{
			name:       "config",
			usage:      `config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "dem",
			usage:      `dem specifies the path to the elevation grid in ESRI ASCII format.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name:       "boundary",
			usage:      `boundary specifies the path to the site boundary in GeoJSON format.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "MaxSlope",
			usage:      `MaxSlope is the maximum buildable slope in degrees.`,
			defaultVal: 15.0,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name:       "MinArea",
			usage:      `MinArea is the minimum contiguous buildable area in square feet.`,
			defaultVal: 5000.0,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name:       "TargetLotArea",
			usage:      `TargetLotArea is the target area per lot in square feet.`,
			defaultVal: 0.5 * siteplan.SqFeetPerAcre,
			flagsets:   []*pflag.FlagSet{layoutCmd.Flags()},
		},
		{
			name:       "MinSpacing",
			usage:      `MinSpacing is the minimum spacing between lot centers in feet.`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{layoutCmd.Flags()},
		},
		{
			name:       "addr",
			usage:      `addr specifies the address for the web service to listen on.`,
			defaultVal: ":8080",
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
	}

	Cfg = viper.New()
	Cfg.SetEnvPrefix("SITEPLAN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case float64:
				set.Float64(option.name, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(analyzeCmd)
	Root.AddCommand(layoutCmd)
	Root.AddCommand(estimateCmd)
	Root.AddCommand(serveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(expandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("siteplanutil: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "siteplan",
	Short: "Terrain buildability and lot-yield analysis.",
	Long: `Siteplan analyzes terrain elevation grids for construction
feasibility and lays out candidate building lots inside a site boundary.

Configuration can be changed by using a TOML configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the
format 'SITEPLAN_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Siteplan v%s\n", siteplan.Version)
	},
	DisableAutoGenTag: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full terrain and layout analysis.",
	Long: `analyze runs both analysis branches over the elevation grid
and boundary polygon and writes the combined result as JSON to standard
output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runAnalysis()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	},
	DisableAutoGenTag: true,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Generate lot centers, lot polygons, and a yield estimate.",
	Long: `layout runs only the layout branch: it places lot centers
inside the boundary polygon, clips lot rectangles to the boundary, and
estimates maximum lot yield.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		boundary, err := loadBoundary()
		if err != nil {
			return err
		}
		cfg, err := AnalysisConfig(Cfg)
		if err != nil {
			return err
		}
		centers, err := siteplan.LotCenters(boundary, cfg.TargetLotArea, cfg.MinSpacing)
		if err != nil {
			return err
		}
		lots, err := siteplan.LotBoundaries(centers, cfg.LotWidth, cfg.LotDepth, boundary)
		if err != nil {
			return err
		}
		yield, err := siteplan.Yield(boundary.Area(), cfg.TargetLotArea,
			cfg.RoadReserveFraction, cfg.OpenSpaceFraction)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
			"lot_centers": centers,
			"lots":        lots,
			"yield":       yield,
		})
	},
	DisableAutoGenTag: true,
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Produce a bid estimate from the analysis result.",
	Long: `estimate runs the full analysis and fills the unit-price
catalog with quantities taken off from the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runAnalysis()
		if err != nil {
			return err
		}
		cfg, err := AnalysisConfig(Cfg)
		if err != nil {
			return err
		}
		sections := estimate.Takeoff(res, cfg)
		return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
			"sections":    sections,
			"grand_total": estimate.GrandTotal(sections),
		})
	},
	DisableAutoGenTag: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis web service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := AnalysisConfig(Cfg)
		if err != nil {
			return err
		}
		return Serve(Cfg.GetString("addr"), cfg)
	},
	DisableAutoGenTag: true,
}

func runAnalysis() (*siteplan.Result, error) {
	raster, err := loadRaster()
	if err != nil {
		return nil, err
	}
	boundary, err := loadBoundary()
	if err != nil {
		return nil, err
	}
	cfg, err := AnalysisConfig(Cfg)
	if err != nil {
		return nil, err
	}
	a := &siteplan.Analysis{Raster: raster, Boundary: boundary, Config: cfg}
	return a.Run()
}

func loadRaster() (*siteplan.Raster, error) {
	path := Cfg.GetString("dem")
	if path == "" {
		return nil, fmt.Errorf("siteplanutil: you need to specify the elevation grid " +
			"location with the dem configuration variable")
	}
	f, err := os.Open(expandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEsriASCII(f)
}

func loadBoundary() (geom.Polygonal, error) {
	path := Cfg.GetString("boundary")
	if path == "" {
		return nil, fmt.Errorf("siteplanutil: you need to specify the site boundary " +
			"location with the boundary configuration variable")
	}
	f, err := os.Open(expandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBoundaryGeoJSON(f)
}

func writeJSON(w io.Writer, v interface{}) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
