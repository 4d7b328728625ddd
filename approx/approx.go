// Package approx provides float64 views of exact geometry for rendering
// previews and other output surfaces. Every conversion here is lossy by
// contract; the kernel never stores the results.
package approx

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/exactcad/geomkernel/geometry"
)

// Vector converts an exact vector to the nearest float64 components.
func Vector(v *geometry.Vector) r3.Vector {
	x, _ := v.X().Float64()
	y, _ := v.Y().Float64()
	z, _ := v.Z().Float64()
	return r3.Vector{X: x, Y: y, Z: z}
}

// Point resolves a point's absolute position and converts it.
func Point(p *geometry.Point) r3.Vector {
	return Vector(p.Vector())
}

// Segment converts a segment's endpoints.
func Segment(s *geometry.LineSegment) (r3.Vector, r3.Vector) {
	return Point(s.P()), Point(s.Q())
}

// Box converts a bounding box to its min and max corners.
func Box(b *geometry.AABB) (r3.Vector, r3.Vector) {
	xMin, _ := b.XMin().Float64()
	yMin, _ := b.YMin().Float64()
	zMin, _ := b.ZMin().Float64()
	xMax, _ := b.XMax().Float64()
	yMax, _ := b.YMax().Float64()
	zMax, _ := b.ZMax().Float64()
	return r3.Vector{X: xMin, Y: yMin, Z: zMin}, r3.Vector{X: xMax, Y: yMax, Z: zMax}
}

// Triangle converts the three vertices of a triangle.
func Triangle(t *geometry.Triangle) [3]r3.Vector {
	pts := t.Points()
	return [3]r3.Vector{Point(pts[0]), Point(pts[1]), Point(pts[2])}
}

// FrameTransform returns the translation matrix placing geometry attached
// to the frame, for feeding into a preview renderer.
func FrameTransform(f *geometry.Frame) mgl64.Mat4 {
	off := Vector(f.Offset())
	return mgl64.Translate3D(off.X, off.Y, off.Z)
}
