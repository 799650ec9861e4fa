// lut1d - a one-dimensional lookup-table operator for color pipelines
// Copyright (C) 2026  lut1d contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut1d

import "fmt"

// Kind identifies one of the error categories a LUT operation can fail
// validation with.
type Kind string

const (
	InvalidLength        Kind = "invalid length"
	InvalidHalfDomain    Kind = "invalid half domain"
	InvalidInterpolation Kind = "invalid interpolation"
	InvalidBitDepth      Kind = "invalid bit depth"
	InvalidHueAdjust     Kind = "invalid hue adjust"
	InvalidComposition   Kind = "invalid composition"
)

// ValidationError reports that a parameter of a LUT operation did not
// satisfy its documented constraints. Param names the offending field
// or argument.
type ValidationError struct {
	Kind    Kind
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lut1d: %s: %s: %s", e.Kind, e.Param, e.Message)
}

// Is reports whether target is a *ValidationError with the same Kind,
// so callers can write errors.Is(err, &ValidationError{Kind: InvalidLength}).
// A target with an empty Kind matches any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	other, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if other.Kind == "" {
		return true
	}
	return other.Kind == e.Kind
}

func newValidationError(kind Kind, param, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}
