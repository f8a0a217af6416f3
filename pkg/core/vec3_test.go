package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f", got)
	}
}

func TestVec3_Negate(t *testing.T) {
	if got := NewVec3(1, -2, 3).Negate(); got != NewVec3(-1, 2, -3) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if !vecNear(unit, NewVec3(0.6, 0.8, 0), 1e-12) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", unit)
	}

	// Zero vector normalizes to zero rather than NaN
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_Reflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	reflected := incoming.Reflect(normal)
	expected := NewVec3(1, 1, 0).Normalize()

	if !vecNear(reflected, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestVec3_Refract_NoIndexChange(t *testing.T) {
	// With an index ratio of 1.0 the ray passes through unbent
	incoming := NewVec3(0.3, -0.9, 0.1).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted := incoming.Refract(normal, 1.0)

	if !vecNear(refracted, incoming, 1e-9) {
		t.Errorf("Expected unbent direction %v, got %v", incoming, refracted)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected near-zero vector to report true")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected non-zero vector to report false")
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0)
	corrected := v.GammaCorrect(2.0)

	if !vecNear(corrected, NewVec3(0.5, 1.0, 0.0), 1e-12) {
		t.Errorf("Expected gamma-2 sqrt per channel, got %v", corrected)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	if got := v.Clamp(0, 1); got != NewVec3(0, 0.5, 1) {
		t.Errorf("Clamp: got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("At(0): got %v", got)
	}
	if got := ray.At(2.5); got != NewVec3(1, 2, 0.5) {
		t.Errorf("At(2.5): got %v", got)
	}
}
