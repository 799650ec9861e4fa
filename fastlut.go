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

// inversionQualityGuard temporarily overrides a LUT's inversion
// quality, restoring the previous value when released. It exists so
// MakeFastLut1DFromInverse can force EXACT evaluation on its source
// LUT for the duration of one call without the source ever observing
// FAST quality and recursing back into this builder.
type inversionQualityGuard struct {
	lut      *Lut1D
	previous LutInversionQuality
}

func acquireInversionQuality(l *Lut1D, q LutInversionQuality) *inversionQualityGuard {
	g := &inversionQualityGuard{lut: l, previous: l.inversionQuality}
	l.inversionQuality = q
	return g
}

// release restores the LUT's previous inversion quality. Callers must
// defer this immediately after acquireInversionQuality so it runs on
// every exit path, including a panic or an early return on error.
func (g *inversionQualityGuard) release() {
	g.lut.inversionQuality = g.previous
}

// MakeFastLut1DFromInverse builds a forward LUT that cheaply
// approximates the given inverse LUT, for use as a renderer's fast
// path. lut must be an INVERSE-direction LUT.
func MakeFastLut1DFromInverse(lut *Lut1D, forGPU bool) (*Lut1D, error) {
	if lut.direction != DirectionInverse {
		return nil, newValidationError(InvalidComposition, "direction",
			"MakeFastLut1DFromInverse requires an inverse LUT")
	}

	depth := fastLutWorkingDepth(lut, forGPU)

	domain, err := MakeLookupDomain(depth)
	if err != nil {
		return nil, err
	}

	guard := acquireInversionQuality(lut, InversionQualityExact)
	defer guard.release()

	if err := Compose(domain, lut, ComposeResampleNo); err != nil {
		return nil, err
	}
	return domain, nil
}

// fastLutWorkingDepth picks the bit depth MakeFastLut1DFromInverse
// should build its domain at: fall back to UINT12 for depths with no
// natural subsampling, downgrade GPU consumers unless they explicitly
// asked for full UINT16, then upgrade to F16 if the source LUT's
// outputs escape [0,1].
func fastLutWorkingDepth(lut *Lut1D, forGPU bool) BitDepth {
	depth := lut.fileOutputBitDepth
	switch depth {
	case BitDepthUnknown, BitDepthUint14, BitDepthUint32:
		depth = BitDepthUint12
	}
	if forGPU && depth != BitDepthUint16 {
		depth = BitDepthUint12
	}
	if lut.HasExtendedRange() {
		depth = BitDepthF16
	}
	return depth
}
