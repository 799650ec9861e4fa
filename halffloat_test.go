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

func TestHalfToFloat32Landmarks(t *testing.T) {
	cases := []struct {
		name string
		code Half
		want float32
	}{
		{"positive zero", 0, 0},
		{"one", 15360, 1.0},
		{"positive inf", 31744, float32(math.Inf(1))},
		{"negative zero", 32768, 0},
	}
	for _, c := range cases {
		got := c.code.ToFloat32()
		if c.name == "negative zero" {
			if got != 0 || math.Signbit(float64(got)) == false {
				t.Errorf("%s: got %v, want signed -0", c.name, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFloat32ToHalfRoundTrip(t *testing.T) {
	for code := 0; code <= 65535; code++ {
		h := Half(code)
		exp := h.ToFloat32()
		if math.IsNaN(float64(exp)) {
			continue
		}
		back := Float32ToHalf(exp)
		if halfsDiffer(h, back, 0) {
			t.Fatalf("code %d: round trip via %v gave back %d", code, exp, back)
		}
	}
}

func TestHalfsDifferIdentity(t *testing.T) {
	for _, code := range []Half{0, 1, 15360, 31744, 32768, 64512} {
		if halfsDiffer(code, code, 0) {
			t.Errorf("code %d should not differ from itself", code)
		}
	}
}

func TestHalfsDifferAcrossZero(t *testing.T) {
	// +0 and -0 are adjacent in signed-magnitude ordering: 0 ULPs apart.
	if halfsDiffer(0, 32768, 0) {
		t.Error("+0 and -0 should be 0 ULPs apart")
	}
	// The smallest positive subnormal and -0 are 1 ULP apart.
	if halfsDiffer(1, 32768, 1) {
		t.Error("code 1 and -0 should be within 1 ULP")
	}
	if !halfsDiffer(2, 32768, 1) {
		t.Error("code 2 and -0 should be more than 1 ULP apart")
	}
}
