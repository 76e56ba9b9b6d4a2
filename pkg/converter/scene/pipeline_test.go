package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/molfile"
)

// TestFlatRecordFullPipeline runs the whole conversion on a minimal flat
// 3 atom, 2 bond record: the flat layout triggers z reconstruction, both
// single bonds yield one cylinder each, and the finished scene is centered
// at the origin.
func TestFlatRecordFullPipeline(t *testing.T) {
	text := "\n  fixture\n\n" +
		"  3  2  0  0  0  0  0  0  0  0999 V2000\n" +
		fmt.Sprintf("%10.4f%10.4f%10.4f %-3s 0  0\n", 0.0, 0.5, 0.0, "O") +
		fmt.Sprintf("%10.4f%10.4f%10.4f %-3s 0  0\n", 1.0, 0.0, 0.0, "C") +
		fmt.Sprintf("%10.4f%10.4f%10.4f %-3s 0  0\n", 2.0, 0.5, 0.0, "O") +
		"  1  2  1  0\n" +
		"  2  3  1  0\n" +
		"M  END\n$$$$\n"

	mol, err := molfile.Process(text, "CO2", molfile.DefaultOptions)
	require.NoError(t, err)
	require.Len(t, mol.Atoms, 3)

	for _, atom := range mol.Atoms {
		assert.NotZero(t, atom.Position.Z, "atom %s stayed flat after reconstruction", atom.ID)
	}

	s := Build(mol)
	require.Len(t, s.Cylinders, 2)
	for _, cylinder := range s.Cylinders {
		assert.Equal(t, converter.BondSingle, cylinder.Kind)
	}

	center := s.Bounds.Center()
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)
	assert.InDelta(t, 0, center.Z, 1e-9)
}
