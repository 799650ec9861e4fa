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

import "math"

// Op is a channel-separable evaluator: given a flat row-major buffer of
// pixels (length*3 float32, one row per pixel, three channels per row),
// it transforms the buffer in place. ComposeVec is the only caller that
// walks a chain of Ops; composition dispatches on the concrete type
// rather than on the LUT's own operator kind, so new Op kinds do not
// require touching the composer.
type Op interface {
	Apply(pixels []float32)
}

// IdentityMatrixOp is the cheap stand-in [Lut1D.IdentityReplacement]
// returns for a half-domain identity: a 3x3 identity matrix applied
// per-pixel, which for a diagonal identity is simply a no-op.
type IdentityMatrixOp struct{}

// Apply implements Op; the identity matrix leaves pixels unchanged.
func (IdentityMatrixOp) Apply(pixels []float32) {}

// RangeOp clamps every channel of every pixel into [Min, Max]. It is
// the identity replacement for a standard-domain identity LUT, which
// may still be responsible for a bit-depth-driven clamp.
type RangeOp struct {
	Min, Max float32
}

// Apply implements Op.
func (r RangeOp) Apply(pixels []float32) {
	for i, v := range pixels {
		if v < r.Min {
			pixels[i] = r.Min
		} else if v > r.Max {
			pixels[i] = r.Max
		}
	}
}

// lut1DOp adapts a *Lut1D to Op so it can appear as a composition
// stage; it evaluates the wrapped LUT once per pixel channel using
// linear interpolation on the standard domain or direct half-code
// lookup on the half domain (see evaluateChannel). It ignores the
// wrapped LUT's Interpolation setting, so this is the only evaluator
// the composer needs.
type lut1DOp struct {
	lut *Lut1D
}

// Apply implements Op.
func (o lut1DOp) Apply(pixels []float32) {
	a := o.lut.array
	n := len(pixels) / maxColorComponents
	for i := 0; i < n; i++ {
		for c := 0; c < maxColorComponents; c++ {
			idx := i*maxColorComponents + c
			pixels[idx] = evaluateChannel(a, o.lut.halfFlags, c, pixels[idx])
		}
	}
}

// evaluateChannel evaluates one scalar input x through channel c of a,
// dispatching on whether a is a half-domain or standard-domain array.
func evaluateChannel(a *SampleArray, flags HalfFlags, c int, x float32) float32 {
	if flags.isInputHalf() {
		code := Float32ToHalf(x)
		return a.At(int(code), c)
	}
	return evaluateStandard(a, c, x)
}

// evaluateStandard linearly interpolates x, assumed to already lie in
// the LUT's own [0,1] domain convention, against the length uniformly
// spaced samples of channel c.
func evaluateStandard(a *SampleArray, c int, x float32) float32 {
	n := a.Length()
	if n < 2 {
		return a.At(0, c)
	}
	if math.IsNaN(float64(x)) {
		return x
	}
	pos := float64(x) * float64(n-1)
	if pos <= 0 {
		return a.At(0, c)
	}
	if pos >= float64(n-1) {
		return a.At(n-1, c)
	}
	lo := int(math.Floor(pos))
	hi := lo + 1
	frac := float32(pos - float64(lo))
	loVal := a.At(lo, c)
	hiVal := a.At(hi, c)
	return loVal + frac*(hiVal-loVal)
}
