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
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/sitemodel/siteplan"
)

// ReadEsriASCII parses an ESRI ASCII grid into an elevation raster.
// Cells matching the file's NODATA_value become nodata. Cell sizes are
// taken as meters.
func ReadEsriASCII(r io.Reader) (*siteplan.Raster, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header := map[string]float64{}
	var data []float64
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 2 && !isNumber(fields[0]) {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("siteplanutil: header value %q: %v", fields[1], err)
			}
			header[strings.ToLower(fields[0])] = v
			continue
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("siteplanutil: grid value %q: %v", f, err)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	rows := int(header["nrows"])
	cols := int(header["ncols"])
	cellSize := header["cellsize"]
	if nodata, ok := header["nodata_value"]; ok {
		for i, v := range data {
			if v == nodata {
				data[i] = math.NaN()
			}
		}
	}
	return siteplan.NewRaster(rows, cols, cellSize, data)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// ReadBoundaryGeoJSON decodes a GeoJSON geometry into a boundary
// polygon. MultiPolygons flatten into a single multi-ring polygon.
func ReadBoundaryGeoJSON(r io.Reader) (geom.Polygonal, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return boundaryFromGeoJSON(data)
}

func boundaryFromGeoJSON(data []byte) (geom.Polygonal, error) {
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("siteplanutil: decoding boundary: %v", err)
	}
	switch b := g.(type) {
	case geom.Polygon:
		return b, nil
	case geom.MultiPolygon:
		var p geom.Polygon
		for _, part := range b {
			p = append(p, part...)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("siteplanutil: boundary must be a polygon; got %T", g)
	}
}
