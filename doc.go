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

// Package lut1d implements a one-dimensional lookup-table (LUT) operator
// used in color-management pipelines: a per-channel transfer function
// sampled on either a uniform [0,1] domain or the 65536 IEEE-754 half-float
// codes, together with the algorithms needed to validate it, decide
// whether it is an identity, compose two such operators, prepare an
// inverse, and produce a stable content hash for caching.
//
// # Building a LUT
//
// Use [New] or [NewWithDirection] for a standard-domain identity, or
// [NewHalfDomain] for a half-domain identity:
//
//	l, err := lut1d.New(4096)
//	if err != nil {
//	    // handle error
//	}
//	l.MutableArray().Scale(0.5)
//	if err := l.Finalize(); err != nil {
//	    // handle error
//	}
//	id := l.GetCacheID()
//
// # Composing
//
// [Compose] folds a forward LUT B into a forward LUT A, resampling A's
// domain first if it is not fine enough for the given [ComposeMethod]:
//
//	err := lut1d.Compose(a, b, lut1d.ComposeResampleNo)
//
// # Inverting
//
// [Lut1D.Inverse] returns a clone with the opposite [TransformDirection].
// Calling [Lut1D.Finalize] on an inverse LUT runs the monotonicity repair
// described in the package-level algorithms before fingerprinting.
package lut1d
