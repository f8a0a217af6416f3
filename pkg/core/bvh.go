package core

import (
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	Bounds  AABB
	Left    *BVHNode
	Right   *BVHNode
	Objects []Hittable // Multiple objects for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Built once before rendering and read-only afterwards, so it is safe for
// concurrent use by many rendering workers.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: nodes with this many or fewer objects become leaves
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of hittables
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Copy the slice so construction does not reorder the caller's objects
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	bounds := objects[0].BoundingBox()
	for i := 1; i < len(objects); i++ {
		bounds = bounds.Union(objects[i].BoundingBox())
	}

	// Base case: few objects, linear search is cheaper than more tree levels
	if len(objects) <= leafThreshold {
		return &BVHNode{
			Bounds:  bounds,
			Objects: objects,
		}
	}

	axis := bounds.LongestAxis()
	sortObjectsByAxis(objects, axis)

	mid := len(objects) / 2
	return &BVHNode{
		Bounds: bounds,
		Left:   buildBVH(objects[:mid]),
		Right:  buildBVH(objects[mid:]),
	}
}

// sortObjectsByAxis sorts objects by their bounding box center along the specified axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		centerI := objects[i].BoundingBox().Center()
		centerJ := objects[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Hit returns the nearest intersection of the ray with any object in the BVH
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// BoundingBox returns the bounds of the whole hierarchy
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.Bounds
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.Bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf node: linear search through its objects
	if node.Objects != nil {
		var closestHit *HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Internal node: test both children, keep the closer result
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	if node.Left != nil {
		if hit, isHit := hitNode(node.Left, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	if node.Right != nil {
		if hit, isHit := hitNode(node.Right, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
