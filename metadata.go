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

import "golang.org/x/exp/maps"

// Metadata is an unordered set of free-form key/value pairs a LUT
// carries alongside its samples, such as provenance or descriptive
// tags from whatever external format produced it.
type Metadata map[string]string

// Combine returns a new Metadata holding the union of m and other. On
// a key collision, other's value wins, matching the caller-owns-B
// convention Compose uses when folding two operators together.
func (m Metadata) Combine(other Metadata) Metadata {
	out := make(Metadata, len(m)+len(other))
	maps.Copy(out, m)
	maps.Copy(out, other)
	return out
}

func (m Metadata) clone() Metadata {
	out := make(Metadata, len(m))
	maps.Copy(out, m)
	return out
}
