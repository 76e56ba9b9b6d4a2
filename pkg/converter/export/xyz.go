package export

import (
	"fmt"
	"strings"

	"github.com/bazarkua/molexa/format"
	"github.com/bazarkua/molexa/pkg/converter"
)

// XYZ writes the crystallography style coordinate file: atom count, a
// comment line carrying the formula, then one element and position per line.
func XYZ(mol converter.Molecule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d\n", len(mol.Atoms))
	fmt.Fprintf(&b, "%s generated by molexa\n", mol.Formula)

	for _, atom := range mol.Atoms {
		b.WriteString(padElement(atom.Element))
		b.WriteString(format.FloatToCoordinateString(atom.Position.X, 14, 6))
		b.WriteString(format.FloatToCoordinateString(atom.Position.Y, 14, 6))
		b.WriteString(format.FloatToCoordinateString(atom.Position.Z, 14, 6))
		b.WriteString("\n")
	}

	return b.String()
}
