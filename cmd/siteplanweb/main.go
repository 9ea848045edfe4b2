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

// command siteplanweb is a standalone web interface for the analysis
// service, configured from a TOML file instead of command-line flags.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/sitemodel/siteplan"
	"github.com/sitemodel/siteplan/siteplanutil"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

// serverConfig is the TOML configuration for the web service. Analysis
// parameters left at zero fall back to the defaults.
type serverConfig struct {
	Addr string

	MaxSlope            float64
	MinArea             float64
	RoadReserveFraction float64
	OpenSpaceFraction   float64
	LotWidth            float64
	LotDepth            float64
	MinSpacing          float64
	TargetLotArea       float64
	SoilSwellFactor     float64
	SoilShrinkFactor    float64
}

var config = flag.String("config", "siteplanweb.toml", "Path to the configuration file")

func main() {
	flag.Parse()

	f, err := os.Open(os.ExpandEnv(*config))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	var c serverConfig
	if _, err = toml.NewDecoder(f).Decode(&c); err != nil {
		log.Fatal(err)
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}

	logger.Info("setting up...")
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           siteplanutil.NewServer(analysisConfig(c), logger),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	logger.Infof("listening on http://%s\n", c.Addr)
	logger.Fatal(srv.ListenAndServe())
}

func analysisConfig(c serverConfig) siteplan.Config {
	cfg := siteplan.DefaultConfig()
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&cfg.MaxSlope, c.MaxSlope)
	set(&cfg.MinArea, c.MinArea)
	set(&cfg.RoadReserveFraction, c.RoadReserveFraction)
	set(&cfg.OpenSpaceFraction, c.OpenSpaceFraction)
	set(&cfg.LotWidth, c.LotWidth)
	set(&cfg.LotDepth, c.LotDepth)
	set(&cfg.MinSpacing, c.MinSpacing)
	set(&cfg.TargetLotArea, c.TargetLotArea)
	set(&cfg.SoilSwellFactor, c.SoilSwellFactor)
	set(&cfg.SoilShrinkFactor, c.SoilShrinkFactor)
	return cfg
}
