package geometry

import "math/big"

// Frame is the one mutable object in the kernel: a shared translation owned
// by a compound shape. Points created through a frame store only their
// relative position, so translating the shape replaces this single offset
// vector and costs O(1) no matter how many points are attached.
//
// Translate swaps the offset pointer rather than mutating rational state in
// place; readers racing a translation observe either the old or the new
// offset, never a half-written one.
type Frame struct {
	offset *Vector
}

// NewFrame returns a frame at the given offset from the global origin. A
// nil offset means the origin.
func NewFrame(offset *Vector) *Frame {
	if offset == nil {
		offset = ZeroVector()
	}
	return &Frame{offset: offset}
}

// Offset returns the frame's current offset from the global origin.
func (f *Frame) Offset() *Vector {
	return f.offset
}

// Translate moves the frame, and with it every point created through the
// frame, by dv.
func (f *Frame) Translate(dv *Vector) {
	f.offset = f.offset.Add(dv)
}

// Point creates a point at the given position relative to the frame.
func (f *Frame) Point(rel *Vector) *Point {
	return &Point{frame: f, rel: rel}
}

// PointAt creates a frame-relative point from rational coordinates.
func (f *Frame) PointAt(x, y, z *big.Rat) *Point {
	return &Point{frame: f, rel: NewVector(x, y, z)}
}
