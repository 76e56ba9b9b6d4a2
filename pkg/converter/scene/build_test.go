package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

func twoAtomMolecule(kind converter.BondKind) converter.Molecule {
	return converter.Molecule{
		Formula: "test",
		Elements: map[string]converter.ElementInfo{
			"C": converter.LookupElement("C"),
			"O": converter.LookupElement("O"),
		},
		Atoms: []converter.Atom{
			{ID: "C-1", Element: "C", Position: geometry.Point{X: -1}},
			{ID: "O-1", Element: "O", Position: geometry.Point{X: 1}},
		},
		Bonds: []converter.Bond{{Atom1: "C-1", Atom2: "O-1", Kind: kind}},
	}
}

func TestSpacingFactorMonotonicAndBounded(t *testing.T) {
	previous := 0.0
	for count := 0; count <= 5000; count += 7 {
		factor := SpacingFactor(count)
		assert.GreaterOrEqual(t, factor, 1.0)
		assert.LessOrEqual(t, factor, spacingMax)
		assert.GreaterOrEqual(t, factor, previous, "count %d", count)
		previous = factor
	}
	assert.Equal(t, 1.0, SpacingFactor(0))
	assert.Equal(t, 1.0, SpacingFactor(spacingThreshold))
	assert.Equal(t, spacingMax, SpacingFactor(1000000))
}

func TestBuildCylinderCountPerBondKind(t *testing.T) {
	cases := map[converter.BondKind]int{
		converter.BondSingle: 1,
		converter.BondDouble: 2,
		converter.BondTriple: 3,
	}
	for kind, expected := range cases {
		s := Build(twoAtomMolecule(kind))
		assert.Len(t, s.Cylinders, expected, "kind %s", kind)
		for _, cylinder := range s.Cylinders {
			assert.Equal(t, kind, cylinder.Kind)
			assert.Equal(t, "C-1", cylinder.Atom1)
			assert.Equal(t, "O-1", cylinder.Atom2)
		}
	}
}

func TestBuildSphereProperties(t *testing.T) {
	mol := twoAtomMolecule(converter.BondSingle)
	s := Build(mol)

	require.Len(t, s.Spheres, 2)
	carbon := s.Spheres[0]
	assert.Equal(t, 0, carbon.Index)
	assert.Equal(t, "C-1", carbon.AtomID)
	assert.InDelta(t, mol.Elements["C"].Radius*sphereRadiusScale, carbon.Radius, 1e-12)
	assert.Equal(t, mol.Elements["C"].Color, carbon.Color)
}

func TestBuildBondRadii(t *testing.T) {
	minRender := math.Min(
		converter.LookupElement("C").Radius,
		converter.LookupElement("O").Radius,
	) * sphereRadiusScale

	single := Build(twoAtomMolecule(converter.BondSingle))
	require.Len(t, single.Cylinders, 1)
	assert.InDelta(t, singleBondRadiusScale*minRender, single.Cylinders[0].Radius, 1e-12)

	double := Build(twoAtomMolecule(converter.BondDouble))
	require.Len(t, double.Cylinders, 2)
	assert.InDelta(t,
		singleBondRadiusScale*minRender*doubleBondRadiusScale,
		double.Cylinders[0].Radius, 1e-12)

	triple := Build(twoAtomMolecule(converter.BondTriple))
	require.Len(t, triple.Cylinders, 3)
	assert.InDelta(t,
		singleBondRadiusScale*minRender*tripleBondRadiusScale,
		triple.Cylinders[0].Radius, 1e-12)
}

func TestBuildIsIdempotent(t *testing.T) {
	mol := twoAtomMolecule(converter.BondDouble)

	first := Build(mol)
	second := Build(mol)
	assert.Equal(t, first, second)
}

func TestBuildDoesNotMutateMolecule(t *testing.T) {
	// Force the adaptive spacing above 1 so mutation would be visible.
	mol := converter.Molecule{
		Elements: map[string]converter.ElementInfo{"C": converter.LookupElement("C")},
	}
	for i := 0; i < 50; i++ {
		mol.Atoms = append(mol.Atoms, converter.Atom{
			ID:       converter.AtomID("C", i+1),
			Element:  "C",
			Position: geometry.Point{X: float64(i), Y: float64(i % 5)},
		})
	}
	require.Greater(t, SpacingFactor(len(mol.Atoms)), 1.0)

	_ = Build(mol)
	for i, atom := range mol.Atoms {
		assert.Equal(t, float64(i), atom.Position.X)
	}
}

func TestBuildCenteringInvariant(t *testing.T) {
	mol := converter.Molecule{
		Elements: map[string]converter.ElementInfo{
			"C": converter.LookupElement("C"),
			"N": converter.LookupElement("N"),
		},
		Atoms: []converter.Atom{
			{ID: "C-1", Element: "C", Position: geometry.Point{X: 4, Y: 9, Z: 2}},
			{ID: "C-2", Element: "C", Position: geometry.Point{X: 7, Y: 9, Z: 2}},
			{ID: "N-1", Element: "N", Position: geometry.Point{X: 6, Y: 11, Z: 3}},
		},
		Bonds: []converter.Bond{
			{Atom1: "C-1", Atom2: "C-2", Kind: converter.BondSingle},
			{Atom1: "C-2", Atom2: "N-1", Kind: converter.BondDouble},
		},
	}

	s := Build(mol)
	center := s.Bounds.Center()
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)
	assert.InDelta(t, 0, center.Z, 1e-9)
}

func TestBuildCameraFraming(t *testing.T) {
	s := Build(twoAtomMolecule(converter.BondSingle))
	assert.Equal(t, cameraFOV, s.Camera.FOV)
	assert.GreaterOrEqual(t, s.Camera.Distance, cameraMinDistance)

	// A tiny molecule hits the floor distance so the camera never sits
	// inside it.
	tiny := converter.Molecule{
		Elements: map[string]converter.ElementInfo{"H": converter.LookupElement("H")},
		Atoms: []converter.Atom{
			{ID: "H-1", Element: "H", Position: geometry.Point{}},
		},
	}
	assert.Equal(t, cameraMinDistance, Build(tiny).Camera.Distance)
}

func TestBuildEmptyMoleculeProducesEmptyScene(t *testing.T) {
	s := Build(converter.Molecule{})
	assert.Empty(t, s.Spheres)
	assert.Empty(t, s.Cylinders)
}

func TestBuildSkipsDanglingBonds(t *testing.T) {
	mol := twoAtomMolecule(converter.BondSingle)
	mol.Bonds = append(mol.Bonds, converter.Bond{
		Atom1: "C-1", Atom2: "Zz-9", Kind: converter.BondSingle,
	})
	s := Build(mol)
	assert.Len(t, s.Cylinders, 1)
}

func TestBuildNearParallelBondAxis(t *testing.T) {
	// Bond along the primary reference axis: the perpendicular basis must
	// switch reference and stay finite.
	mol := converter.Molecule{
		Elements: map[string]converter.ElementInfo{"C": converter.LookupElement("C")},
		Atoms: []converter.Atom{
			{ID: "C-1", Element: "C", Position: geometry.Point{Z: -1}},
			{ID: "C-2", Element: "C", Position: geometry.Point{Z: 1}},
		},
		Bonds: []converter.Bond{{Atom1: "C-1", Atom2: "C-2", Kind: converter.BondTriple}},
	}

	s := Build(mol)
	require.Len(t, s.Cylinders, 3)
	for _, cylinder := range s.Cylinders {
		for _, value := range []float64{
			cylinder.Start.X, cylinder.Start.Y, cylinder.Start.Z,
			cylinder.End.X, cylinder.End.Y, cylinder.End.Z,
		} {
			assert.False(t, math.IsNaN(value))
		}
	}

	// The two offset segments run along distinct perpendicular directions.
	offset1 := s.Cylinders[1].Start
	offset2 := s.Cylinders[2].Start
	assert.NotEqual(t, offset1, offset2)
}

func TestBuildSurfaceToSurfaceLength(t *testing.T) {
	mol := twoAtomMolecule(converter.BondSingle)
	s := Build(mol)
	require.Len(t, s.Cylinders, 1)

	carbon, oxygen := s.Spheres[0], s.Spheres[1]
	surface := carbon.Center.Vec(oxygen.Center).Length() - carbon.Radius - oxygen.Radius
	got := s.Cylinders[0].Start.Vec(s.Cylinders[0].End).Length()
	assert.InDelta(t, surface*singleBondLengthFactor, got, 1e-9)
}
