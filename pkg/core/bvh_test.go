package core

import (
	"math"
	"math/rand"
	"testing"
)

// testSphere is a minimal hittable for exercising the BVH without
// depending on the geometry package
type testSphere struct {
	center Vec3
	radius float64
}

func (s testSphere) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &HitRecord{T: root, Point: ray.At(root)}
	hit.SetFaceNormal(ray, hit.Point.Subtract(s.center).Multiply(1.0/s.radius))
	return hit, true
}

func (s testSphere) BoundingBox() AABB {
	r := NewVec3(s.radius, s.radius, s.radius)
	return NewAABB(s.center.Subtract(r), s.center.Add(r))
}

// exhaustiveHit is the reference nearest-hit sweep over the raw object list
func exhaustiveHit(objects []Hittable, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)

	if _, isHit := bvh.Hit(NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)), 0.001, 1000); isHit {
		t.Error("Expected no hit from empty BVH")
	}
}

func TestBVH_SingleObject(t *testing.T) {
	bvh := NewBVH([]Hittable{testSphere{center: NewVec3(0, 0, -2), radius: 0.5}})

	hit, isHit := bvh.Hit(NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)), 0.001, 1000)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got %f", hit.T)
	}
}

func TestBVH_MatchesExhaustiveSearch(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	// Random sphere clouds of increasing size, including sizes below and
	// above the leaf threshold
	for _, count := range []int{1, 3, 4, 5, 17, 100} {
		objects := make([]Hittable, count)
		for i := range objects {
			objects[i] = testSphere{
				center: NewVec3(
					random.Float64()*20-10,
					random.Float64()*20-10,
					random.Float64()*20-10,
				),
				radius: 0.1 + random.Float64(),
			}
		}

		bvh := NewBVH(objects)

		for i := 0; i < 500; i++ {
			ray := NewRay(
				NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15),
				SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64())),
			)

			bvhHit, bvhIsHit := bvh.Hit(ray, 0.001, 1000)
			refHit, refIsHit := exhaustiveHit(objects, ray, 0.001, 1000)

			if bvhIsHit != refIsHit {
				t.Fatalf("count=%d ray=%d: BVH hit=%t, exhaustive hit=%t", count, i, bvhIsHit, refIsHit)
			}
			if bvhIsHit && math.Abs(bvhHit.T-refHit.T) > 1e-12 {
				t.Fatalf("count=%d ray=%d: BVH t=%f, exhaustive t=%f", count, i, bvhHit.T, refHit.T)
			}
		}
	}
}

func TestBVH_BoundsEncloseAllObjects(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	objects := make([]Hittable, 50)
	for i := range objects {
		objects[i] = testSphere{
			center: NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10),
			radius: 0.5,
		}
	}

	bvh := NewBVH(objects)
	bounds := bvh.BoundingBox()

	for i, object := range objects {
		b := object.BoundingBox()
		if b.Min.X < bounds.Min.X || b.Min.Y < bounds.Min.Y || b.Min.Z < bounds.Min.Z ||
			b.Max.X > bounds.Max.X || b.Max.Y > bounds.Max.Y || b.Max.Z > bounds.Max.Z {
			t.Errorf("Object %d box %v not enclosed by root bounds %v", i, b, bounds)
		}
	}
}
