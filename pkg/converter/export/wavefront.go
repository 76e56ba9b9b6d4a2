package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bazarkua/molexa/model"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
	"github.com/bazarkua/molexa/pkg/converter/scene"
)

const (
	sphereStacks   = 8
	sphereSlices   = 12
	cylinderSides  = 8
	mtlFileName    = "molecule.mtl"
	defaultHexGray = "#808080"
)

// Wavefront serializes the scene into an OBJ mesh and its companion MTL
// material library. Every atom becomes a UV sphere, every bond segment an
// open prism, grouped per source primitive so viewers can pick them apart.
func Wavefront(s scene.Scene) (obj string, mtl string) {
	var b strings.Builder
	fmt.Fprintf(&b, "# molexa molecular scene\n")
	fmt.Fprintf(&b, "mtllib %s\n", mtlFileName)

	colors := map[string]bool{}
	vertexOffset := 0

	for _, sphere := range s.Spheres {
		colors[sphere.Color] = true
		fmt.Fprintf(&b, "o atom_%s\n", sphere.AtomID)
		fmt.Fprintf(&b, "usemtl %s\n", materialName(sphere.Color))
		vertexOffset = writeSphereMesh(&b, sphere, vertexOffset)
	}

	bondColor := defaultHexGray
	colors[bondColor] = true
	for i, cylinder := range s.Cylinders {
		fmt.Fprintf(&b, "o bond_%d_%s_%s\n", i, cylinder.Atom1, cylinder.Atom2)
		fmt.Fprintf(&b, "usemtl %s\n", materialName(bondColor))
		vertexOffset = writeCylinderMesh(&b, cylinder, vertexOffset)
	}

	return b.String(), materialLibrary(colors)
}

func materialName(hexColor string) string {
	return "mat_" + strings.TrimPrefix(hexColor, "#")
}

func materialLibrary(colors map[string]bool) string {
	names := make([]string, 0, len(colors))
	for hexColor := range colors {
		names = append(names, hexColor)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, hexColor := range names {
		color := model.ParseHexColor(hexColor)
		fmt.Fprintf(&b, "newmtl %s\n", materialName(hexColor))
		fmt.Fprintf(&b, "Kd %.4f %.4f %.4f\n",
			float64(color.R)/255, float64(color.G)/255, float64(color.B)/255)
		fmt.Fprintf(&b, "Ka 0.1 0.1 0.1\nKs 0.5 0.5 0.5\nNs 64\n\n")
	}
	return b.String()
}

// writeSphereMesh emits a stacks-by-slices UV sphere and returns the new
// vertex offset.
func writeSphereMesh(b *strings.Builder, sphere scene.Sphere, offset int) int {
	c, r := sphere.Center, sphere.Radius

	for stack := 0; stack <= sphereStacks; stack++ {
		phi := math.Pi * float64(stack) / sphereStacks
		for slice := 0; slice < sphereSlices; slice++ {
			theta := 2 * math.Pi * float64(slice) / sphereSlices
			fmt.Fprintf(b, "v %.6f %.6f %.6f\n",
				c.X+r*math.Sin(phi)*math.Cos(theta),
				c.Y+r*math.Cos(phi),
				c.Z+r*math.Sin(phi)*math.Sin(theta),
			)
		}
	}

	ring := func(stack, slice int) int {
		return offset + stack*sphereSlices + slice%sphereSlices + 1
	}
	for stack := 0; stack < sphereStacks; stack++ {
		for slice := 0; slice < sphereSlices; slice++ {
			fmt.Fprintf(b, "f %d %d %d %d\n",
				ring(stack, slice),
				ring(stack+1, slice),
				ring(stack+1, slice+1),
				ring(stack, slice+1),
			)
		}
	}

	return offset + (sphereStacks+1)*sphereSlices
}

// writeCylinderMesh emits an open n-sided prism along the cylinder axis and
// returns the new vertex offset.
func writeCylinderMesh(b *strings.Builder, cylinder scene.Cylinder, offset int) int {
	axis := cylinder.Start.Vec(cylinder.End).Normalize()

	reference := geometry.Vec3D{Z: 1}
	if math.Abs(axis.Dot(reference)) > 0.9 {
		reference = geometry.Vec3D{Y: 1}
	}
	u := axis.Cross(reference).Normalize()
	v := axis.Cross(u).Normalize()

	for side := 0; side < cylinderSides; side++ {
		angle := 2 * math.Pi * float64(side) / cylinderSides
		radial := u.Mul(math.Cos(angle)).Add(v.Mul(math.Sin(angle))).Mul(cylinder.Radius)
		for _, endpoint := range []geometry.Point{cylinder.Start, cylinder.End} {
			p := endpoint.Translate(radial)
			fmt.Fprintf(b, "v %.6f %.6f %.6f\n", p.X, p.Y, p.Z)
		}
	}

	for side := 0; side < cylinderSides; side++ {
		next := (side + 1) % cylinderSides
		fmt.Fprintf(b, "f %d %d %d %d\n",
			offset+side*2+1,
			offset+side*2+2,
			offset+next*2+2,
			offset+next*2+1,
		)
	}

	return offset + cylinderSides*2
}
