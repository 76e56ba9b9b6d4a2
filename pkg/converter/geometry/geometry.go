// Package geometry provide simple 3D primitives used across the converter.
package geometry

import "math"

// Point represent a position in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent a 3D vector.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns the vector from p to o.
func (p Point) Vec(o Point) Vec3D {
	return Vec3D{X: o.X - p.X, Y: o.Y - p.Y, Z: o.Z - p.Z}
}

// Translate returns p moved by v.
func (p Point) Translate(v Vec3D) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Scale returns p with every coordinate multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Add ...
func (v Vec3D) Add(o Vec3D) Vec3D {
	return Vec3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub ...
func (v Vec3D) Sub(o Vec3D) Vec3D {
	return Vec3D{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns v multiplied by scalar s.
func (v Vec3D) Mul(s float64) Vec3D {
	return Vec3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3D) Dot(o Vec3D) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3D) Cross(o Vec3D) Vec3D {
	return Vec3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the euclidean length of v.
func (v Vec3D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3D) Normalize() Vec3D {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Box represent an axis aligned bounding box.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewBox returns a degenerate box containing only p.
func NewBox(p Point) Box {
	return Box{Min: p, Max: p}
}

// Extend grows the box to contain the sphere of radius r centered at p.
func (b Box) Extend(p Point, r float64) Box {
	return Box{
		Min: Point{
			X: math.Min(b.Min.X, p.X-r),
			Y: math.Min(b.Min.Y, p.Y-r),
			Z: math.Min(b.Min.Z, p.Z-r),
		},
		Max: Point{
			X: math.Max(b.Max.X, p.X+r),
			Y: math.Max(b.Max.Y, p.Y+r),
			Z: math.Max(b.Max.Z, p.Z+r),
		},
	}
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box dimensions.
func (b Box) Size() Vec3D {
	return b.Min.Vec(b.Max)
}

// MaxDimension returns the largest of the box dimensions.
func (b Box) MaxDimension() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}
