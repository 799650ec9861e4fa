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

const (
	minArrayLength = 2
	maxArrayLength = 1024 * 1024
	// maxColorComponents is the physical storage width of a SampleArray:
	// storage is always 3 channels even when only 1 is logically active.
	maxColorComponents = 3

	halfDomainRequiredEntries = 65536

	// Half codes that bound the positive and negative finite halves of
	// the half domain.
	halfCodePosZero = 0
	halfCodeOne     = 15360
	halfCodePosInf  = 31744
	halfCodePosMax  = 31743 // largest finite positive half, +65504
	halfCodeNegZero = 32768
	halfCodeNegInf  = 64512
	halfCodeNegMax  = 64511 // last finite negative half, -65504
)

// SampleArray is a dense table of length x channels 32-bit floats, where
// channels is always 3 in storage (an active channel count of 1 means
// channel 0 logically replicates to channels 1 and 2).
type SampleArray struct {
	values         []float32 // length * maxColorComponents, row-major
	length         int
	activeChannels int
}

// newSampleArray allocates a SampleArray already filled as an identity
// for the given half-domain setting and length.
func newSampleArray(flags HalfFlags, length int) (*SampleArray, error) {
	a := &SampleArray{activeChannels: maxColorComponents}
	if err := a.resize(length); err != nil {
		return nil, err
	}
	a.fill(flags)
	return a, nil
}

// Length returns the number of rows (samples) in the array.
func (a *SampleArray) Length() int { return a.length }

// ActiveChannels returns 1 or 3.
func (a *SampleArray) ActiveChannels() int { return a.activeChannels }

// At returns the stored value at row idx, channel c (0, 1 or 2).
func (a *SampleArray) At(idx, c int) float32 {
	return a.values[idx*maxColorComponents+c]
}

// Set stores v at row idx, channel c.
func (a *SampleArray) Set(idx, c int, v float32) {
	a.values[idx*maxColorComponents+c] = v
}

// Values returns the raw, row-major length*3 backing slice. Callers must
// not retain it past the next mutation of the array.
func (a *SampleArray) Values() []float32 { return a.values }

// resize reallocates the array to length rows; storage is always 3
// channels wide. It fails if length is outside [2, 1048576].
func (a *SampleArray) resize(length int) error {
	if length < minArrayLength || length > maxArrayLength {
		return newValidationError(InvalidLength, "length",
			"%d is not within [%d, %d]", length, minArrayLength, maxArrayLength)
	}
	a.length = length
	a.values = make([]float32, length*maxColorComponents)
	return nil
}

// fill populates the array as an identity transform for flags.
func (a *SampleArray) fill(flags HalfFlags) {
	if flags.isInputHalf() {
		for idx := 0; idx < a.length; idx++ {
			v := Half(idx).ToFloat32()
			for c := 0; c < maxColorComponents; c++ {
				a.Set(idx, c, v)
			}
		}
		return
	}

	step := 1.0 / float32(a.length-1)
	for idx := 0; idx < a.length; idx++ {
		v := float32(idx) * step
		for c := 0; c < maxColorComponents; c++ {
			a.Set(idx, c, v)
		}
	}
}

// Scale multiplies every stored value by k.
func (a *SampleArray) Scale(k float32) {
	for i := range a.values {
		a.values[i] *= k
	}
}

// validate checks the array's own bounds, reporting InvalidLength.
// It does not know about halfFlags and so cannot check the
// half-domain-requires-65536-entries rule; that is the caller's job.
func (a *SampleArray) validate() error {
	if a.length < minArrayLength || a.length > maxArrayLength {
		return newValidationError(InvalidLength, "length",
			"%d is not within [%d, %d]", a.length, minArrayLength, maxArrayLength)
	}
	return nil
}

// isIdentity reports whether the array represents an identity transform
// for the given half-domain setting.
func (a *SampleArray) isIdentity(flags HalfFlags) bool {
	if flags.isInputHalf() {
		for idx := 0; idx < a.length; idx++ {
			aim := Half(idx)
			if aim.isNaN() {
				// Float32ToHalf forces the quiet bit when rounding a NaN,
				// so it does not round-trip every NaN payload exactly.
				// NaN entries compare equal to their own code regardless.
				continue
			}
			for c := 0; c < a.activeChannels; c++ {
				val := Float32ToHalf(a.At(idx, c))
				if halfsDiffer(aim, val, 1) {
					return false
				}
			}
		}
		return true
	}

	const absTol = 1e-5
	step := 1.0 / float32(a.length-1)
	for idx := 0; idx < a.length; idx++ {
		aim := float32(idx) * step
		for c := 0; c < a.activeChannels; c++ {
			err := a.At(idx, c) - aim
			if math.Abs(float64(err)) > absTol {
				return false
			}
		}
	}
	return true
}

// adjustColorComponentNumber recomputes ActiveChannels: 1 if channels 1
// and 2 equal channel 0 pointwise, otherwise 3.
func (a *SampleArray) adjustColorComponentNumber() {
	for idx := 0; idx < a.length; idx++ {
		v0 := a.At(idx, 0)
		if a.At(idx, 1) != v0 || a.At(idx, 2) != v0 {
			a.activeChannels = 3
			return
		}
	}
	a.activeChannels = 1
}

func (a *SampleArray) clone() *SampleArray {
	c := &SampleArray{
		length:         a.length,
		activeChannels: a.activeChannels,
		values:         make([]float32, len(a.values)),
	}
	copy(c.values, a.values)
	return c
}

// equalContents reports whether a and b hold the same length, channel
// count and values. Used by Lut1D.HaveEqualBasics.
func (a *SampleArray) equalContents(b *SampleArray) bool {
	if a.length != b.length || a.activeChannels != b.activeChannels {
		return false
	}
	for i, v := range a.values {
		bv := b.values[i]
		if v != bv && !(math.IsNaN(float64(v)) && math.IsNaN(float64(bv))) {
			return false
		}
	}
	return true
}
