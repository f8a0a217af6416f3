package geometry

import (
	"math"
	"testing"

	"github.com/davkoch/lumen/pkg/core"
)

func TestMovingSphere_CenterAt(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0, 1, 0.5, nil,
	)

	tests := []struct {
		time     float64
		expected core.Vec3
	}{
		{0.0, core.NewVec3(0, 0, 0)},
		{0.5, core.NewVec3(1, 0, 0)},
		{1.0, core.NewVec3(2, 0, 0)},
	}

	for _, tt := range tests {
		if got := sphere.CenterAt(tt.time); got != tt.expected {
			t.Errorf("CenterAt(%f): expected %v, got %v", tt.time, tt.expected, got)
		}
	}
}

func TestMovingSphere_Hit_AtShutterExtremes(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -2), core.NewVec3(4, 0, -2),
		0, 1, 0.5, nil,
	)

	// At time 0 the sphere sits at x=0: a ray down -z from the origin hits it
	rayAtOpen := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0.0)
	hit, isHit := sphere.Hit(rayAtOpen, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit at shutter open")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got %f", hit.T)
	}

	// At time 1 the sphere has moved to x=4: the same ray misses
	rayAtClose := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(rayAtClose, 0.001, 1000.0); isHit {
		t.Error("Expected miss at shutter close")
	}

	// A ray aimed at the end position hits only at time 1
	rayAtEnd := core.NewRayAt(core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(rayAtEnd, 0.001, 1000.0); !isHit {
		t.Error("Expected hit at the moved position")
	}
}

func TestMovingSphere_BoundingBox_CoversTravel(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(3, 1, -2),
		0, 1, 0.5, nil,
	)

	box := sphere.BoundingBox()
	if box.Min != core.NewVec3(-0.5, -0.5, -2.5) {
		t.Errorf("Min: got %v", box.Min)
	}
	if box.Max != core.NewVec3(3.5, 1.5, 0.5) {
		t.Errorf("Max: got %v", box.Max)
	}
}

func TestMovingSphere_DegenerateTimeInterval(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(1, 0, 0), core.NewVec3(5, 0, 0),
		2, 2, 0.5, nil,
	)

	// Equal keyframe times must not divide by zero
	if got := sphere.CenterAt(2); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected first center, got %v", got)
	}
}
