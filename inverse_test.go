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

import "testing"

// S3: reversal repair.
func TestReversalRepair(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	input := []float32{0.0, 0.8, 0.3, 0.6, 1.0}
	for i, v := range input {
		l.array.Set(i, 0, v)
		l.array.Set(i, 1, v)
		l.array.Set(i, 2, v)
	}
	l.SetDirection(DirectionInverse)

	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}

	want := []float32{0.0, 0.8, 0.8, 0.8, 1.0}
	for i, w := range want {
		if got := l.array.At(i, 0); got != w {
			t.Errorf("entry %d: got %v want %v", i, got, w)
		}
	}

	props := l.ComponentProperties(0)
	if !props.IsIncreasing {
		t.Error("channel 0 should be detected as increasing")
	}
	if props.StartDomain != 0 || props.EndDomain != 4 {
		t.Errorf("got startDomain=%d endDomain=%d, want 0, 4", props.StartDomain, props.EndDomain)
	}
}

// S4: flat-spot trimming.
func TestFlatSpotTrimming(t *testing.T) {
	l, err := New(6)
	if err != nil {
		t.Fatal(err)
	}
	input := []float32{0.2, 0.2, 0.3, 0.7, 1.0, 1.0}
	for i, v := range input {
		l.array.Set(i, 0, v)
		l.array.Set(i, 1, v)
		l.array.Set(i, 2, v)
	}
	l.SetDirection(DirectionInverse)

	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}

	props := l.ComponentProperties(0)
	if props.StartDomain != 1 || props.EndDomain != 4 {
		t.Errorf("got startDomain=%d endDomain=%d, want 1, 4", props.StartDomain, props.EndDomain)
	}
}

// Property 7: monotonicity after prepareArray.
func TestPrepareArrayProducesMonotoneData(t *testing.T) {
	l, _ := New(8)
	input := []float32{0.0, 0.5, 0.2, 0.6, 0.4, 0.9, 0.7, 1.0}
	for i, v := range input {
		l.array.Set(i, 0, v)
	}
	l.SetDirection(DirectionInverse)
	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < l.array.Length(); i++ {
		if l.array.At(i, 0) < l.array.At(i-1, 0) {
			t.Fatalf("entry %d (%v) is less than entry %d (%v): not monotone nondecreasing",
				i, l.array.At(i, 0), i-1, l.array.At(i-1, 0))
		}
	}
}

// Property 8: effective domain boundaries are not flat internally.
func TestEffectiveDomainBoundariesDiffer(t *testing.T) {
	l, _ := New(6)
	input := []float32{0.2, 0.2, 0.3, 0.7, 1.0, 1.0}
	for i, v := range input {
		l.array.Set(i, 0, v)
	}
	l.SetDirection(DirectionInverse)
	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}

	props := l.ComponentProperties(0)
	if props.StartDomain != props.EndDomain {
		if l.array.At(props.StartDomain, 0) == l.array.At(props.StartDomain+1, 0) {
			t.Error("value at startDomain should differ from its neighbor")
		}
		if l.array.At(props.EndDomain, 0) == l.array.At(props.EndDomain-1, 0) {
			t.Error("value at endDomain should differ from its neighbor")
		}
	}
}

// A fully flat channel (a constant forward curve) must trim to a single
// point rather than leaving startDomain past endDomain.
func TestEffectiveDomainOfConstantChannelCollapsesToZero(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		l.array.Set(i, 0, 0.5)
	}
	l.SetDirection(DirectionInverse)
	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}

	props := l.ComponentProperties(0)
	if props.StartDomain != 0 || props.EndDomain != 0 {
		t.Errorf("got startDomain=%d endDomain=%d, want 0, 0", props.StartDomain, props.EndDomain)
	}
}

func TestPrepareHalfDomainChannelSeedsNegativeFromPositiveZero(t *testing.T) {
	l, err := NewHalfDomain(halfDomainRequiredEntries)
	if err != nil {
		t.Fatal(err)
	}
	// Force a reversal right at -0 so the seeded prev (from +0) must
	// clamp it back.
	l.array.Set(halfCodeNegZero, 0, 5.0)
	l.SetDirection(DirectionInverse)
	if err := l.Finalize(); err != nil {
		t.Fatal(err)
	}
	posZero := l.array.At(halfCodePosZero, 0)
	negZero := l.array.At(halfCodeNegZero, 0)
	if negZero != posZero {
		t.Errorf("-0 (%v) should have been clamped to +0's value (%v)", negZero, posZero)
	}
}
