package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarkua/molexa/pkg/converter/geometry"
	test "github.com/bazarkua/molexa/test"
)

func TestNormalizeBondOrder(t *testing.T) {
	cases := map[int]BondKind{
		2:   BondDouble,
		3:   BondTriple,
		1:   BondSingle,
		0:   BondSingle,
		4:   BondSingle,
		-1:  BondSingle,
		99:  BondSingle,
		-42: BondSingle,
	}
	for code, expected := range cases {
		assert.Equal(t, expected, NormalizeBondOrder(code), "code %d", code)
	}
}

func TestAtomID(t *testing.T) {
	assert.Equal(t, "C-1", AtomID("C", 1))
	assert.Equal(t, "Cl-12", AtomID("Cl", 12))
}

func TestValidateRejectsEmptyMolecule(t *testing.T) {
	err := Molecule{Formula: "X"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyStructure)
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	mol := Molecule{
		Atoms: []Atom{{ID: "C-1", Element: "C"}, {ID: "C-1", Element: "C"}},
	}
	assert.Error(t, mol.Validate())
}

func TestValidateRejectsDanglingBonds(t *testing.T) {
	mol := Molecule{
		Atoms: []Atom{{ID: "C-1", Element: "C"}},
		Bonds: []Bond{{Atom1: "C-1", Atom2: "O-1", Kind: BondSingle}},
	}
	assert.Error(t, mol.Validate())
}

func TestMapPositionsDoesNotMutateReceiver(t *testing.T) {
	mol := Molecule{
		Atoms: []Atom{{ID: "C-1", Element: "C", Position: geometry.Point{X: 1}}},
	}
	mapped := mol.MapPositions(func(_ int, atom Atom) geometry.Point {
		return geometry.Point{X: atom.Position.X * 10}
	})

	assert.Equal(t, 1.0, mol.Atoms[0].Position.X)
	assert.Equal(t, 10.0, mapped.Atoms[0].Position.X)
}

var moleculeMarshallingCases = test.MarshallingCases{
	{
		Model: &Molecule{
			Formula: "H2O",
			Elements: map[string]ElementInfo{
				"O": {Radius: 0.66, Color: "#FF0D0D", Known: true},
				"H": {Radius: 0.31, Color: "#FFFFFF", Known: true},
			},
			Atoms: []Atom{
				{ID: "O-1", Element: "O", Position: geometry.Point{X: 0, Y: 0, Z: 0}},
				{ID: "H-1", Element: "H", Position: geometry.Point{X: 1, Y: 0, Z: 0}},
				{ID: "H-2", Element: "H", Position: geometry.Point{X: -1, Y: 0, Z: 0}},
			},
			Bonds: []Bond{
				{Atom1: "O-1", Atom2: "H-1", Kind: BondSingle},
				{Atom1: "O-1", Atom2: "H-2", Kind: BondSingle},
			},
		},
		JSON: `{
			"formula": "H2O",
			"elements": {
				"O": {"radius": 0.66, "color": "#FF0D0D"},
				"H": {"radius": 0.31, "color": "#FFFFFF"}
			},
			"atoms": [
				{"id": "O-1", "element": "O", "position": {"x": 0, "y": 0, "z": 0}},
				{"id": "H-1", "element": "H", "position": {"x": 1, "y": 0, "z": 0}},
				{"id": "H-2", "element": "H", "position": {"x": -1, "y": 0, "z": 0}}
			],
			"bonds": [
				{"atom1": "O-1", "atom2": "H-1", "type": "single"},
				{"atom1": "O-1", "atom2": "H-2", "type": "single"}
			]
		}`,
	},
}

func TestMoleculeMarshal(t *testing.T) {
	test.Marshal(t, moleculeMarshallingCases)
}
