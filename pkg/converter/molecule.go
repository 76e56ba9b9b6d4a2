// Package converter implements the molecule conversion pipeline:
// structure text is parsed into a Molecule, missing depth coordinates are
// reconstructed, and renderable scene geometry is derived from the result.
package converter

import (
	"fmt"

	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

// BondKind classify a bond by its order.
type BondKind string

const (
	// BondSingle single bond.
	BondSingle BondKind = "single"
	// BondDouble double bond.
	BondDouble BondKind = "double"
	// BondTriple triple bond.
	BondTriple BondKind = "triple"
)

// NormalizeBondOrder maps a connection table bond order code to BondKind.
// Codes other than 2 and 3 are treated as single bonds.
func NormalizeBondOrder(code int) BondKind {
	switch code {
	case 2:
		return BondDouble
	case 3:
		return BondTriple
	default:
		return BondSingle
	}
}

// Atom represent a single atom of a molecule.
// ID is unique within the molecule and is built from the element symbol and
// a 1-based per element occurrence counter, e.g. "C-1", "C-2", "O-1".
type Atom struct {
	ID       string         `json:"id"`
	Element  string         `json:"element"`
	Position geometry.Point `json:"position"`
}

// Bond connects two atoms referenced by their IDs.
type Bond struct {
	Atom1 string   `json:"atom1"`
	Atom2 string   `json:"atom2"`
	Kind  BondKind `json:"type"`
}

// Molecule is the parsed and reconstructed structure model.
// Atoms keep file order, which fixes the per element occurrence numbering.
type Molecule struct {
	Formula  string                 `json:"formula"`
	Elements map[string]ElementInfo `json:"elements"`
	Atoms    []Atom                 `json:"atoms"`
	Bonds    []Bond                 `json:"bonds"`
}

// AtomByID returns the atom with the given ID.
func (m Molecule) AtomByID(id string) (Atom, bool) {
	for _, atom := range m.Atoms {
		if atom.ID == id {
			return atom, true
		}
	}
	return Atom{}, false
}

// MapPositions returns a copy of the molecule with every atom position
// replaced by f(index, atom). The receiver is not modified; pipeline stages
// use this to stay independently testable.
func (m Molecule) MapPositions(f func(index int, atom Atom) geometry.Point) Molecule {
	atoms := make([]Atom, len(m.Atoms))
	for i, atom := range m.Atoms {
		atom.Position = f(i, atom)
		atoms[i] = atom
	}
	result := m
	result.Atoms = atoms
	return result
}

// Validate checks molecule consistency: a non empty atom list, unique atom
// IDs and resolvable bond endpoints.
func (m Molecule) Validate() error {
	if len(m.Atoms) == 0 {
		return EmptyStructureError("molecule has no atoms")
	}
	seen := make(map[string]bool, len(m.Atoms))
	for _, atom := range m.Atoms {
		if seen[atom.ID] {
			return StructureError("duplicate atom id %s", atom.ID)
		}
		seen[atom.ID] = true
	}
	for _, bond := range m.Bonds {
		if !seen[bond.Atom1] || !seen[bond.Atom2] {
			return StructureError("bond %s-%s references unknown atom", bond.Atom1, bond.Atom2)
		}
	}
	return nil
}

// AtomID builds the display id for the n-th occurrence of an element.
func AtomID(element string, occurrence int) string {
	return fmt.Sprintf("%s-%d", element, occurrence)
}
