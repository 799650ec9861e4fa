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

import (
	"math"
	"testing"
)

// S6: compose two identities.
func TestComposeTwoIdentities(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if err := Compose(a, b, ComposeResampleNo); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < a.array.Length(); i++ {
		want := float32(i) / 7.0
		got := a.array.At(i, 0)
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("entry %d: got %v want %v", i, got, want)
		}
	}
}

// Property 9: compose neutrality.
func TestComposeWithIdentityIsNeutral(t *testing.T) {
	a, err := New(32)
	if err != nil {
		t.Fatal(err)
	}
	a.array.Set(3, 0, 0.42)
	before := append([]float32{}, a.array.Values()...)

	identity, err := New(32)
	if err != nil {
		t.Fatal(err)
	}

	if err := Compose(a, identity, ComposeResampleNo); err != nil {
		t.Fatal(err)
	}

	for i, want := range before {
		got := a.array.Values()[i]
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("entry %d: got %v want %v (compose with identity should be neutral)", i, got, want)
		}
	}
}

func TestComposeVecRejectsEmptyOpList(t *testing.T) {
	a, _ := New(8)
	if err := ComposeVec(a, nil); err == nil {
		t.Error("an empty op list should fail")
	}
}

func TestComposeRejectsInverseA(t *testing.T) {
	a, _ := NewWithDirection(8, DirectionInverse)
	b, _ := New(8)
	if err := Compose(a, b, ComposeResampleNo); err == nil {
		t.Error("composing with an inverse A should fail")
	}
}

func TestComposeUpgradesSmallDomainForResampleBig(t *testing.T) {
	a, _ := New(4)
	b, _ := New(8)

	if err := Compose(a, b, ComposeResampleBig); err != nil {
		t.Fatal(err)
	}
	if a.array.Length() != 65536 {
		t.Errorf("RESAMPLE_BIG should upgrade a's domain to 65536, got %d", a.array.Length())
	}
	if a.halfFlags.isInputHalf() {
		t.Error("RESAMPLE_BIG should not force a half domain")
	}
}

func TestComposeCombinesMetadataAndHueAdjust(t *testing.T) {
	a, _ := New(8)
	a.Metadata()["source"] = "a"
	b, _ := New(8)
	b.Metadata()["vendor"] = "b"
	b.SetHueAdjust(HueAdjustDW3)

	if err := Compose(a, b, ComposeResampleNo); err != nil {
		t.Fatal(err)
	}
	if a.Metadata()["source"] != "a" || a.Metadata()["vendor"] != "b" {
		t.Errorf("metadata should be unioned, got %v", a.Metadata())
	}
	if a.HueAdjust() != HueAdjustDW3 {
		t.Error("a should inherit b's hue-adjust")
	}
}
