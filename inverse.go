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

// prepareArray turns forward samples into a shape from which an
// inverse can be evaluated uniquely: it flattens reversals into
// monotone runs and records the index range over which each channel is
// not flat. It is only meaningful to call on an INVERSE-direction LUT,
// and only Finalize calls it.
func (l *Lut1D) prepareArray() {
	channels := l.array.ActiveChannels()
	for c := 0; c < channels; c++ {
		if l.halfFlags.isInputHalf() {
			l.componentProperties[c] = l.prepareHalfDomainChannel(c)
		} else {
			l.componentProperties[c] = l.prepareStandardChannel(c)
		}
	}
	if channels == 1 {
		l.componentProperties[1] = l.componentProperties[0]
		l.componentProperties[2] = l.componentProperties[0]
	}
}

func (l *Lut1D) prepareStandardChannel(c int) ComponentProperties {
	a := l.array
	n := a.Length()
	isIncreasing := a.At(0, c) < a.At(n-1, c)

	prev := a.At(0, c)
	for i := 1; i < n; i++ {
		v := a.At(i, c)
		if monotonicityViolated(isIncreasing, v-prev) {
			a.Set(i, c, prev)
		} else {
			prev = v
		}
	}

	end := n - 1
	for end-1 >= 0 && a.At(end-1, c) == a.At(end, c) {
		end--
	}
	start := 0
	for start+1 < end && a.At(start+1, c) == a.At(start, c) {
		start++
	}

	return ComponentProperties{
		IsIncreasing: isIncreasing,
		StartDomain:  start,
		EndDomain:    end,
	}
}

func (l *Lut1D) prepareHalfDomainChannel(c int) ComponentProperties {
	a := l.array
	isIncreasing := a.At(halfCodePosZero, c) < a.At(halfCodeOne, c)

	// Positive half: codes [0, 31744], monotone in isIncreasing.
	prev := a.At(halfCodePosZero, c)
	for i := halfCodePosZero + 1; i <= halfCodePosInf; i++ {
		v := a.At(i, c)
		if monotonicityViolated(isIncreasing, v-prev) {
			a.Set(i, c, prev)
		} else {
			prev = v
		}
	}

	// Negative half: codes [32768, 64512], monotone in !isIncreasing.
	// Seeded from +0's value so -0 cannot diverge from +0.
	prev = a.At(halfCodePosZero, c)
	for i := halfCodeNegZero; i <= halfCodeNegInf; i++ {
		v := a.At(i, c)
		if monotonicityViolated(!isIncreasing, v-prev) {
			a.Set(i, c, prev)
		} else {
			prev = v
		}
	}

	end := halfCodePosMax
	for end-1 >= halfCodePosZero && a.At(end-1, c) == a.At(end, c) {
		end--
	}
	start := halfCodePosZero
	for start+1 < end && a.At(start+1, c) == a.At(start, c) {
		start++
	}

	negEnd := halfCodeNegMax
	for negEnd-1 >= halfCodeNegZero && a.At(negEnd-1, c) == a.At(negEnd, c) {
		negEnd--
	}
	negStart := halfCodeNegZero
	for negStart+1 < negEnd && a.At(negStart+1, c) == a.At(negStart, c) {
		negStart++
	}

	return ComponentProperties{
		IsIncreasing:   isIncreasing,
		StartDomain:    start,
		EndDomain:      end,
		NegStartDomain: negStart,
		NegEndDomain:   negEnd,
	}
}

// monotonicityViolated reports whether diff disagrees with the wanted
// direction: a negative diff while increasing, or a positive diff
// while decreasing.
func monotonicityViolated(increasing bool, diff float32) bool {
	if increasing {
		return diff < 0
	}
	return diff > 0
}
