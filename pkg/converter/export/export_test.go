package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
	"github.com/bazarkua/molexa/pkg/converter/molfile"
	"github.com/bazarkua/molexa/pkg/converter/scene"
)

func exportTestMolecule() converter.Molecule {
	return converter.Molecule{
		Formula: "C2H4",
		Elements: map[string]converter.ElementInfo{
			"C": converter.LookupElement("C"),
			"H": converter.LookupElement("H"),
		},
		Atoms: []converter.Atom{
			{ID: "C-1", Element: "C", Position: geometry.Point{X: -0.667, Y: 0, Z: 0.1}},
			{ID: "C-2", Element: "C", Position: geometry.Point{X: 0.667, Y: 0, Z: -0.1}},
			{ID: "H-1", Element: "H", Position: geometry.Point{X: -1.2, Y: 0.9, Z: 0.2}},
			{ID: "H-2", Element: "H", Position: geometry.Point{X: 1.2, Y: -0.9, Z: -0.2}},
		},
		Bonds: []converter.Bond{
			{Atom1: "C-1", Atom2: "C-2", Kind: converter.BondDouble},
			{Atom1: "C-1", Atom2: "H-1", Kind: converter.BondSingle},
			{Atom1: "C-2", Atom2: "H-2", Kind: converter.BondSingle},
		},
	}
}

func TestMolfileRoundTrip(t *testing.T) {
	mol := exportTestMolecule()
	serialized := Molfile(mol)

	assert.True(t, strings.HasSuffix(serialized, "$$$$\n"))
	assert.Contains(t, serialized, "M  END")

	reparsed, err := molfile.Parse(serialized, mol.Formula)
	require.NoError(t, err)
	require.Len(t, reparsed.Atoms, len(mol.Atoms))
	require.Len(t, reparsed.Bonds, len(mol.Bonds))

	for i, atom := range reparsed.Atoms {
		original := mol.Atoms[i]
		assert.Equal(t, original.ID, atom.ID)
		assert.Equal(t, original.Element, atom.Element)
		assert.InDelta(t, original.Position.X, atom.Position.X, 1e-4)
		assert.InDelta(t, original.Position.Y, atom.Position.Y, 1e-4)
		assert.InDelta(t, original.Position.Z, atom.Position.Z, 1e-4)
	}
	for i, bond := range reparsed.Bonds {
		assert.Equal(t, mol.Bonds[i].Kind, bond.Kind)
	}
}

func TestXYZLayout(t *testing.T) {
	mol := exportTestMolecule()
	out := XYZ(mol)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+len(mol.Atoms))
	assert.Equal(t, "4", lines[0])
	assert.Contains(t, lines[1], "C2H4")
	assert.True(t, strings.HasPrefix(lines[2], "C  "))
	assert.True(t, strings.HasPrefix(lines[4], "H  "))
}

func TestWavefrontMeshCounts(t *testing.T) {
	s := scene.Build(exportTestMolecule())
	obj, mtl := Wavefront(s)

	vertexCount := strings.Count(obj, "\nv ") + boolToInt(strings.HasPrefix(obj, "v "))
	expectedSphereVertices := len(s.Spheres) * (sphereStacks + 1) * sphereSlices
	expectedCylinderVertices := len(s.Cylinders) * cylinderSides * 2
	assert.Equal(t, expectedSphereVertices+expectedCylinderVertices, vertexCount)

	assert.Contains(t, obj, "mtllib "+mtlFileName)
	for _, sphere := range s.Spheres {
		assert.Contains(t, obj, "o atom_"+sphere.AtomID)
		assert.Contains(t, mtl, "newmtl "+materialName(sphere.Color))
	}
	assert.Contains(t, mtl, "newmtl "+materialName(defaultHexGray))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
