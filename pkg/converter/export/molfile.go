// Package export serializes already computed molecule and scene data into
// common interchange formats. It is a consumer of the converter output, not
// part of the conversion pipeline itself.
package export

import (
	"strings"

	"github.com/bazarkua/molexa/format"
	"github.com/bazarkua/molexa/pkg/converter"
)

var bondOrderCodes = map[converter.BondKind]int{
	converter.BondSingle: 1,
	converter.BondDouble: 2,
	converter.BondTriple: 3,
}

// Molfile writes the molecule back out as a V2000 connection table,
// the round trip of the format the converter parses.
func Molfile(mol converter.Molecule) string {
	var b strings.Builder

	b.WriteString(mol.Formula + "\n")
	b.WriteString("  molexa\n")
	b.WriteString("\n")

	b.WriteString(format.IntToFixedWidthString(len(mol.Atoms), 3))
	b.WriteString(format.IntToFixedWidthString(len(mol.Bonds), 3))
	b.WriteString("  0  0  0  0  0  0  0  0999 V2000\n")

	index := make(map[string]int, len(mol.Atoms))
	for i, atom := range mol.Atoms {
		index[atom.ID] = i + 1
		b.WriteString(format.FloatToCoordinateString(atom.Position.X, 10, 4))
		b.WriteString(format.FloatToCoordinateString(atom.Position.Y, 10, 4))
		b.WriteString(format.FloatToCoordinateString(atom.Position.Z, 10, 4))
		b.WriteString(" ")
		b.WriteString(padElement(atom.Element))
		b.WriteString(" 0  0  0  0  0  0  0  0  0  0  0  0\n")
	}

	for _, bond := range mol.Bonds {
		first, firstOK := index[bond.Atom1]
		second, secondOK := index[bond.Atom2]
		if !firstOK || !secondOK {
			continue
		}
		b.WriteString(format.IntToFixedWidthString(first, 3))
		b.WriteString(format.IntToFixedWidthString(second, 3))
		b.WriteString(format.IntToFixedWidthString(bondOrderCodes[bond.Kind], 3))
		b.WriteString("  0\n")
	}

	b.WriteString("M  END\n")
	b.WriteString("$$$$\n")
	return b.String()
}

func padElement(symbol string) string {
	if len(symbol) >= 3 {
		return symbol[:3]
	}
	return symbol + strings.Repeat(" ", 3-len(symbol))
}
