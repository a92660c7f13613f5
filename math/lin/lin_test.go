// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"fmt"
	"testing"
)

func TestAeqmately(t *testing.T) {
	var f1 = 0.0
	var f2 = 0.0000001
	var f3 = -0.0001
	if !Aeq(f1, f2) || Aeq(f1, f3) {
		t.Error("Aeq")
	}
}

func TestApproimatelyZero(t *testing.T) {
	var f1 = 0.0000001
	var f2 = -0.0000001
	var f3 = -0.0001
	if !AeqZ(f1) || !AeqZ(f2) || AeqZ(f3) {
		t.Error("Aeqz")
	}
}

func TestLerp(t *testing.T) {
	if !Aeq(Lerp(10.0, 5.0, 0.5), 7.5) {
		t.Error("Lerp")
	}
}

func TestNang(t *testing.T) {
	pos450, neg450 := 7.853981, -7.853981
	pos90, neg90 := 1.570796, -1.570796
	if !Aeq(Nang(pos450), pos90) || !Aeq(Nang(neg450), neg90) {
		t.Error("Nang")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(20.0, -30.0, -15.0) != -15 || Clamp(20.0, 30.0, 60.0) != 30 || Clamp(20.0, 10.0, 50.0) != 20 {
		t.Error("Clamp")
	}
}

func TestRadDeg(t *testing.T) {
	if Deg(Rad(90.0)) != 90 {
		t.Error("Rad Deg conversion")
	}
}

func TestRealFloat32(t *testing.T) {
	if !Aeq(Lerp[float32](10, 5, 0.5), 7.5) {
		t.Error("Lerp float32")
	}
	v := NewV3S[float32](1, 2, 3)
	if v.Len() <= 0 {
		t.Error("V3[float32] Len")
	}
}

// ============================================================================
// Test helpers for the other test case files in this package.

const format = "\ngot\n%s\nwanted\n%s"

// Dump prints the matrix to a string.
func (m *M3[R]) Dump() string {
	format := "[%+2.9f, %+2.9f, %+2.9f]\n"
	str := fmt.Sprintf(format, m.Xx, m.Xy, m.Xz)
	str += fmt.Sprintf(format, m.Yx, m.Yy, m.Yz)
	str += fmt.Sprintf(format, m.Zx, m.Zy, m.Zz)
	return str
}

// Dump prints the vector to a string.
func (v *V3[R]) Dump() string { return fmt.Sprintf("%2.9f", *v) }

// Dump prints the quaternion to a string.
func (q *Q[R]) Dump() string { return fmt.Sprintf("%2.9f", *q) }
