package scene

import (
	"math"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

const (
	// Spheres are drawn slightly smaller than the nominal element radius
	// to reduce visual clutter.
	sphereRadiusScale = 0.8

	// Adaptive spacing: no expansion below the small molecule threshold,
	// linear growth above it, clamped at 80% expansion.
	spacingThreshold = 20
	spacingPerAtom   = 0.01
	spacingMax       = 1.8

	singleBondRadiusScale = 0.13
	doubleBondRadiusScale = 0.8
	tripleBondRadiusScale = 0.7

	singleBondLengthFactor = 1.2
	doubleBondLengthFactor = 1.4
	tripleBondLengthFactor = 1.6

	// Lateral offset of the parallel cylinders of multi order bonds,
	// relative to the smaller endpoint render radius.
	multiBondOffsetScale = 0.35

	// Reference axis switches when the bond axis is nearly parallel to
	// it, otherwise the cross product degenerates.
	nearParallelThreshold = 0.9

	cameraFOV         = 45.0
	cameraPadding     = 1.8
	cameraMinDistance = 5.0
)

// SpacingFactor returns the scene wide position multiplier for a molecule
// of the given atom count. It is 1.0 for small molecules, grows linearly
// above the threshold and never exceeds the documented maximum.
func SpacingFactor(atomCount int) float64 {
	if atomCount <= spacingThreshold {
		return 1.0
	}
	factor := 1.0 + spacingPerAtom*float64(atomCount-spacingThreshold)
	return math.Min(factor, spacingMax)
}

// Build derives the scene geometry for a molecule. The molecule itself is
// never mutated; rebuilding from the same model yields an identical scene.
// An empty or inconsistent model produces an empty scene, since the builder
// may run reactively on transient upstream states.
func Build(mol converter.Molecule) Scene {
	if len(mol.Atoms) == 0 {
		return Scene{}
	}

	spacing := SpacingFactor(len(mol.Atoms))

	spheres := make([]Sphere, 0, len(mol.Atoms))
	byID := make(map[string]Sphere, len(mol.Atoms))
	for i, atom := range mol.Atoms {
		info, ok := mol.Elements[atom.Element]
		if !ok {
			info = converter.LookupElement(atom.Element)
		}
		sphere := Sphere{
			Index:   i,
			AtomID:  atom.ID,
			Element: atom.Element,
			Center:  atom.Position.Scale(spacing),
			Radius:  info.Radius * sphereRadiusScale,
			Color:   info.Color,
		}
		spheres = append(spheres, sphere)
		byID[atom.ID] = sphere
	}

	var cylinders []Cylinder
	for _, bond := range mol.Bonds {
		s1, ok1 := byID[bond.Atom1]
		s2, ok2 := byID[bond.Atom2]
		if !ok1 || !ok2 {
			continue
		}
		cylinders = append(cylinders, bondCylinders(bond, s1, s2)...)
	}

	return center(Scene{Spheres: spheres, Cylinders: cylinders})
}

// bondCylinders produces 1, 2 or 3 cylinder descriptors for a bond,
// depending on its order. Cylinder ends run surface to surface, pulled in
// from the atom centers by each endpoint's render radius, then stretched by
// the per order length factor.
func bondCylinders(bond converter.Bond, s1, s2 Sphere) []Cylinder {
	axis := s1.Center.Vec(s2.Center)
	if axis.Length() == 0 {
		return nil
	}
	axis = axis.Normalize()

	surfaceStart := s1.Center.Translate(axis.Mul(s1.Radius))
	surfaceEnd := s2.Center.Translate(axis.Mul(-s2.Radius))

	baseRadius := singleBondRadiusScale * math.Min(s1.Radius, s2.Radius)
	offsetMagnitude := multiBondOffsetScale * math.Min(s1.Radius, s2.Radius)
	perpendicular1, perpendicular2 := perpendicularBasis(axis)

	segment := func(offset geometry.Vec3D, radius, lengthFactor float64) Cylinder {
		start, end := stretch(surfaceStart.Translate(offset), surfaceEnd.Translate(offset), lengthFactor)
		return Cylinder{
			Start:  start,
			End:    end,
			Radius: radius,
			Kind:   bond.Kind,
			Atom1:  s1.AtomID,
			Atom2:  s2.AtomID,
		}
	}

	switch bond.Kind {
	case converter.BondDouble:
		radius := baseRadius * doubleBondRadiusScale
		return []Cylinder{
			segment(perpendicular1.Mul(offsetMagnitude), radius, doubleBondLengthFactor),
			segment(perpendicular1.Mul(-offsetMagnitude), radius, doubleBondLengthFactor),
		}
	case converter.BondTriple:
		radius := baseRadius * tripleBondRadiusScale
		return []Cylinder{
			segment(geometry.Vec3D{}, radius, tripleBondLengthFactor),
			segment(perpendicular1.Mul(offsetMagnitude), radius, tripleBondLengthFactor),
			segment(perpendicular2.Mul(offsetMagnitude), radius, tripleBondLengthFactor),
		}
	default:
		return []Cylinder{segment(geometry.Vec3D{}, baseRadius, singleBondLengthFactor)}
	}
}

// perpendicularBasis returns two unit vectors orthogonal to the axis and to
// each other. The primary reference axis is z; when the bond runs nearly
// parallel to it the reference switches to y.
func perpendicularBasis(axis geometry.Vec3D) (geometry.Vec3D, geometry.Vec3D) {
	reference := geometry.Vec3D{Z: 1}
	if math.Abs(axis.Dot(reference)) > nearParallelThreshold {
		reference = geometry.Vec3D{Y: 1}
	}
	first := axis.Cross(reference).Normalize()
	second := axis.Cross(first).Normalize()
	return first, second
}

// stretch lengthens the segment around its midpoint by the given factor.
func stretch(start, end geometry.Point, factor float64) (geometry.Point, geometry.Point) {
	half := start.Vec(end).Mul(0.5)
	mid := start.Translate(half)
	return mid.Translate(half.Mul(-factor)), mid.Translate(half.Mul(factor))
}

// center translates the whole assembly so its bounding box center sits at
// the origin and derives the camera framing from the box size.
func center(s Scene) Scene {
	if len(s.Spheres) == 0 {
		return s
	}

	bounds := geometry.NewBox(s.Spheres[0].Center)
	for _, sphere := range s.Spheres {
		bounds = bounds.Extend(sphere.Center, sphere.Radius)
	}
	for _, cylinder := range s.Cylinders {
		bounds = bounds.Extend(cylinder.Start, cylinder.Radius)
		bounds = bounds.Extend(cylinder.End, cylinder.Radius)
	}

	shift := bounds.Center().Vec(geometry.Point{})

	spheres := make([]Sphere, len(s.Spheres))
	for i, sphere := range s.Spheres {
		sphere.Center = sphere.Center.Translate(shift)
		spheres[i] = sphere
	}
	cylinders := make([]Cylinder, len(s.Cylinders))
	for i, cylinder := range s.Cylinders {
		cylinder.Start = cylinder.Start.Translate(shift)
		cylinder.End = cylinder.End.Translate(shift)
		cylinders[i] = cylinder
	}
	bounds = geometry.Box{
		Min: bounds.Min.Translate(shift),
		Max: bounds.Max.Translate(shift),
	}

	halfFOV := cameraFOV / 2 * math.Pi / 180
	distance := bounds.MaxDimension() / (2 * math.Tan(halfFOV)) * cameraPadding
	distance = math.Max(distance, cameraMinDistance)

	return Scene{
		Spheres:   spheres,
		Cylinders: cylinders,
		Bounds:    bounds,
		Camera:    Camera{Distance: distance, FOV: cameraFOV},
	}
}
