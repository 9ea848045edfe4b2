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

import "fmt"

// InvalidInputError reports an input that violates a structural requirement,
// such as a non-positive cell size, mismatched grid shapes, or a degenerate
// boundary polygon.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "siteplan: invalid input: " + e.Reason
}

// DataQualityError reports that no valid (non-nodata) cells remain for a
// requested statistic after masking.
type DataQualityError struct {
	Reason string
}

func (e *DataQualityError) Error() string {
	return "siteplan: " + e.Reason
}

// ComputationError reports geometry that degenerated during clipping and
// could not be resolved to a valid polygon.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "siteplan: " + e.Reason
}

func errInvalid(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

func errDataQuality(format string, args ...interface{}) error {
	return &DataQualityError{Reason: fmt.Sprintf(format, args...)}
}

func errComputation(format string, args ...interface{}) error {
	return &ComputationError{Reason: fmt.Sprintf(format, args...)}
}
