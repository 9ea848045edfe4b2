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
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sitemodel/siteplan"
	"github.com/sitemodel/siteplan/estimate"
)

// analyzeRequest is the JSON body of an analysis request. Elevation is
// row-major; cells equal to NodataValue (if set) are treated as
// missing. Boundary is a GeoJSON Polygon or MultiPolygon. The optional
// parameter fields override the server's analysis configuration.
type analyzeRequest struct {
	Rows        int             `json:"rows"`
	Cols        int             `json:"cols"`
	CellSize    float64         `json:"cell_size"`
	Elevation   []float64       `json:"elevation"`
	NodataValue *float64        `json:"nodata_value"`
	Boundary    json.RawMessage `json:"boundary"`

	MaxSlope      *float64 `json:"max_slope"`
	MinArea       *float64 `json:"min_area"`
	TargetLotArea *float64 `json:"target_lot_area"`
}

// Server answers analysis requests over HTTP. It is the thin
// presentation layer around the core: it translates typed failures into
// status codes and performs no analysis logic of its own.
type Server struct {
	config siteplan.Config
	logger *logrus.Logger
	mux    *http.ServeMux
}

// NewServer creates an HTTP server with the given analysis defaults.
func NewServer(config siteplan.Config, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{config: config, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/health", s.healthHandler)
	s.mux.HandleFunc("/api/analyze", s.analyzeHandler)
	s.mux.HandleFunc("/api/estimate", s.estimateHandler)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Serve runs the analysis web service until the listener fails.
func Serve(addr string, config siteplan.Config) error {
	logger := logrus.StandardLogger()
	logger.WithField("addr", addr).Info("starting analysis service")
	return http.ListenAndServe(addr, NewServer(config, logger))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": siteplan.Version,
	})
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, res)
}

func (s *Server) estimateHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}
	sections := estimate.Takeoff(res, s.config)
	s.respond(w, http.StatusOK, map[string]interface{}{
		"sections":    sections,
		"grand_total": estimate.GrandTotal(sections),
	})
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request) (*siteplan.Result, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}

	elev := req.Elevation
	if req.NodataValue != nil {
		elev = make([]float64, len(req.Elevation))
		for i, v := range req.Elevation {
			if v == *req.NodataValue {
				v = math.NaN()
			}
			elev[i] = v
		}
	}
	raster, err := siteplan.NewRaster(req.Rows, req.Cols, req.CellSize, elev)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return nil, false
	}
	boundary, err := boundaryFromGeoJSON(req.Boundary)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}

	cfg := s.config
	if req.MaxSlope != nil {
		cfg.MaxSlope = *req.MaxSlope
	}
	if req.MinArea != nil {
		cfg.MinArea = *req.MinArea
	}
	if req.TargetLotArea != nil {
		cfg.TargetLotArea = *req.TargetLotArea
	}

	a := &siteplan.Analysis{Raster: raster, Boundary: boundary, Config: cfg}
	res, err := a.Run()
	if err != nil {
		s.fail(w, statusFor(err), err)
		return nil, false
	}
	return res, true
}

// statusFor maps the core error taxonomy onto HTTP status codes:
// structural input problems are client errors, missing data is absence,
// everything else is the server's fault.
func statusFor(err error) int {
	var invalid *siteplan.InvalidInputError
	var dq *siteplan.DataQualityError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &dq):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.WithError(err).Warn("analysis request failed")
	s.respond(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encoding response")
	}
}
