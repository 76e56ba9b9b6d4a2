// Package molfile parses MDL V2000 connection tables and reconstructs the
// missing third dimension of flat 2D records.
//
// The connection table layout is fixed width:
//
//	line 3:           atom count [0,3), bond count [3,6)
//	atom block lines: x [0,10), y [10,20), z [20,30), element [31,34)
//	bond block lines: first atom [0,3), second atom [3,6), order [6,9)
package molfile

import (
	"strconv"
	"strings"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

const countsLineIndex = 3

// RecordTerminator ends a molecule block in SDF input.
const RecordTerminator = "$$$$"

// Parse reads a connection table into a Molecule. The display formula is
// supplied by the caller, it is not derived from the file.
//
// Malformed counts or coordinate fields abort the parse. Bond lines that are
// too short or reference atoms outside the valid range are skipped silently.
func Parse(text, formula string) (converter.Molecule, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) <= countsLineIndex {
		return converter.Molecule{}, converter.StructureParseError(
			"%d lines is too short for a connection table", len(lines),
		)
	}

	atomCount, bondCount, countsErr := parseCounts(lines[countsLineIndex])
	if countsErr != nil {
		return converter.Molecule{}, countsErr
	}

	atomStart := countsLineIndex + 1
	if len(lines) < atomStart+atomCount {
		return converter.Molecule{}, converter.StructureParseError(
			"atom block truncated: expected %d atom lines", atomCount,
		)
	}

	mol := converter.Molecule{
		Formula:  formula,
		Elements: map[string]converter.ElementInfo{},
	}

	occurrences := map[string]int{}
	for i := 0; i < atomCount; i++ {
		atom, atomErr := parseAtomLine(lines[atomStart+i], occurrences)
		if atomErr != nil {
			return converter.Molecule{}, atomErr
		}
		if _, registered := mol.Elements[atom.Element]; !registered {
			mol.Elements[atom.Element] = converter.LookupElement(atom.Element)
		}
		mol.Atoms = append(mol.Atoms, atom)
	}

	if len(mol.Atoms) == 0 {
		return converter.Molecule{}, converter.EmptyStructureError("no atoms in connection table")
	}

	bondStart := atomStart + atomCount
	for i := 0; i < bondCount && bondStart+i < len(lines); i++ {
		bond, ok := parseBondLine(lines[bondStart+i], mol.Atoms)
		if !ok {
			continue
		}
		mol.Bonds = append(mol.Bonds, bond)
	}

	return mol, nil
}

func parseCounts(line string) (atoms int, bonds int, err error) {
	if len(line) < 6 {
		return 0, 0, converter.StructureParseError("counts line %q is too short", line)
	}
	atoms, atomsErr := parseFixedInt(line, 0, 3)
	if atomsErr != nil || atoms < 0 {
		return 0, 0, converter.StructureParseError("invalid atom count in counts line %q", line)
	}
	bonds, bondsErr := parseFixedInt(line, 3, 6)
	if bondsErr != nil || bonds < 0 {
		return 0, 0, converter.StructureParseError("invalid bond count in counts line %q", line)
	}
	return atoms, bonds, nil
}

func parseAtomLine(line string, occurrences map[string]int) (converter.Atom, error) {
	if len(line) < 34 {
		return converter.Atom{}, converter.StructureParseError("atom line %q is too short", line)
	}

	x, xErr := parseFixedFloat(line, 0, 10)
	y, yErr := parseFixedFloat(line, 10, 20)
	if xErr != nil || yErr != nil {
		return converter.Atom{}, converter.StructureParseError(
			"unparseable coordinates in atom line %q", line,
		)
	}
	// Many 2D records carry garbage in the z column, it defaults to 0.
	z, zErr := parseFixedFloat(line, 20, 30)
	if zErr != nil {
		z = 0
	}

	element := strings.TrimSpace(line[31:34])
	if element == "" {
		return converter.Atom{}, converter.StructureParseError(
			"missing element symbol in atom line %q", line,
		)
	}

	occurrences[element]++
	return converter.Atom{
		ID:       converter.AtomID(element, occurrences[element]),
		Element:  element,
		Position: geometry.Point{X: x, Y: y, Z: z},
	}, nil
}

func parseBondLine(line string, atoms []converter.Atom) (converter.Bond, bool) {
	if len(line) < 9 {
		return converter.Bond{}, false
	}
	first, firstErr := parseFixedInt(line, 0, 3)
	second, secondErr := parseFixedInt(line, 3, 6)
	if firstErr != nil || secondErr != nil {
		return converter.Bond{}, false
	}

	// File indices are 1-based.
	a, b := first-1, second-1
	if a < 0 || a >= len(atoms) || b < 0 || b >= len(atoms) {
		return converter.Bond{}, false
	}

	order, orderErr := parseFixedInt(line, 6, 9)
	if orderErr != nil {
		order = 1
	}

	return converter.Bond{
		Atom1: atoms[a].ID,
		Atom2: atoms[b].ID,
		Kind:  converter.NormalizeBondOrder(order),
	}, true
}

func parseFixedInt(line string, from, to int) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line[from:to]))
}

func parseFixedFloat(line string, from, to int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(line[from:to]), 64)
}

// adjacency builds per atom neighbor index lists from the molecule bonds.
// It is parse-local bookkeeping for the reconstruction step and is never
// exposed on the model itself.
func adjacency(mol converter.Molecule) [][]int {
	index := make(map[string]int, len(mol.Atoms))
	for i, atom := range mol.Atoms {
		index[atom.ID] = i
	}
	neighbors := make([][]int, len(mol.Atoms))
	for _, bond := range mol.Bonds {
		a, aOK := index[bond.Atom1]
		b, bOK := index[bond.Atom2]
		if !aOK || !bOK {
			continue
		}
		neighbors[a] = append(neighbors[a], b)
		neighbors[b] = append(neighbors[b], a)
	}
	return neighbors
}
