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

// ComposeVec treats a's array as a column of pixels, one row per
// entry with three channels, and evaluates ops through it in sequence,
// in place. Callers must ensure ops is channel-separable (true for any
// Op in this package). It fails with InvalidComposition if ops is
// empty.
func ComposeVec(a *Lut1D, ops []Op) error {
	if len(ops) == 0 {
		return newValidationError(InvalidComposition, "ops", "op list is empty")
	}
	pixels := a.array.Values()
	for _, op := range ops {
		op.Apply(pixels)
	}
	return nil
}

// Compose folds forward LUT b into forward LUT a, mutating a in place
// to hold the result. If a's current domain is not fine enough for
// method, a is first replaced with a fresh identity LUT sized for
// method, with the old a prepended as the first composition stage so
// its effect on the new domain's samples is preserved. b is never
// mutated; a clone of it is appended as the final stage.
//
// Compose fails with InvalidComposition if a is an INVERSE-direction
// LUT: a is the operand that gets resampled and replaced, so it must
// be a genuine forward domain. b is only ever read through ComposeVec
// as a plain evaluator, so MakeFastLut1DFromInverse is free to pass an
// inverse LUT as b when it samples one to build a forward
// approximation; the caller is responsible for calling MayCompose
// first if hue-adjust correctness matters.
func Compose(a, b *Lut1D, method ComposeMethod) error {
	if a.direction != DirectionForward {
		return newValidationError(InvalidComposition, "direction",
			"Compose requires a forward-direction A operand")
	}

	minSize, needHalfDomain := method.resampleParams()
	domainIsGood := a.halfFlags.isInputHalf() || (a.array.Length() >= minSize && !needHalfDomain)

	var ops []Op
	if !domainIsGood && method != ComposeResampleNo {
		flags := Standard
		if needHalfDomain {
			flags = InputHalf
		}
		freshDomain, err := NewWithFlags(flags, minSize, DirectionForward)
		if err != nil {
			return err
		}
		ops = append(ops, lut1DOp{lut: a.Clone()})
		a.array = freshDomain.array
		a.halfFlags = freshDomain.halfFlags
		a.cacheID = ""
		a.componentProperties = [maxColorComponents]ComponentProperties{}
	}
	ops = append(ops, lut1DOp{lut: b.Clone()})

	if err := ComposeVec(a, ops); err != nil {
		return err
	}

	a.metadata = a.Metadata().Combine(b.Metadata())
	a.hueAdjust = b.hueAdjust
	return nil
}
