package geometry

import "github.com/davkoch/lumen/pkg/core"

// HittableList aggregates hittables; the nearest hit wins
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit tests all children, shrinking tMax to the closest hit so far
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns a box enclosing every object in the list
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}

	bounds := l.Objects[0].BoundingBox()
	for _, object := range l.Objects[1:] {
		bounds = bounds.Union(object.BoundingBox())
	}
	return bounds
}
