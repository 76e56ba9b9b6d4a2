package molfile

import (
	"math"
	"math/rand"

	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

const (
	// flatThreshold decides whether a record is a flat 2D layout: when no
	// atom has |z| above it, every z coordinate is synthesized.
	flatThreshold = 0.01

	// depthEnhancement stretches the synthesized z offsets.
	depthEnhancement = 1.5

	// viewScale is the uniform visual scale applied to every coordinate
	// after reconstruction.
	viewScale = 1.5

	ringStrainAmplitude = 0.08
)

// Options control the reconstruction stage.
type Options struct {
	// Seed drives the deterministic jitter applied to synthesized z
	// offsets. The same input with the same seed reproduces the same
	// molecule exactly.
	Seed int64
}

// DefaultOptions used by Process when the caller has no preference.
var DefaultOptions = Options{Seed: 1}

// NeedsReconstruction reports whether the parsed coordinates are flat, i.e.
// the maximum |z| over all atoms is below the flatness threshold.
func NeedsReconstruction(mol converter.Molecule) bool {
	maxZ := 0.0
	for _, atom := range mol.Atoms {
		maxZ = math.Max(maxZ, math.Abs(atom.Position.Z))
	}
	return maxZ < flatThreshold
}

// Reconstruct returns a copy of the molecule with a synthesized z offset for
// every atom. The offset is a deterministic trigonometric function of the
// atom's x, y, element and neighbor count, loosely suggesting local
// geometry: tetrahedral variation for 4-coordinate carbon, pyramidal for
// 3-coordinate nitrogen, bent for 2-coordinate oxygen and so on. This is a
// visual plausibility step, not a geometry solver; every atom is computed
// independently from the source coordinates.
func Reconstruct(mol converter.Molecule, opts Options) converter.Molecule {
	neighbors := adjacency(mol)
	return mol.MapPositions(func(i int, atom converter.Atom) geometry.Point {
		z := baseOffset(mol, neighbors, i, atom, opts)
		if len(neighbors[i]) >= 2 {
			// Shallow pucker keyed by file order, so fused rings do not
			// collapse into a single plane.
			z += ringStrainAmplitude * math.Sin(float64(i)*2.0)
		}
		pos := atom.Position
		pos.Z = z * depthEnhancement
		return pos
	})
}

// Scale returns a copy of the molecule with every coordinate multiplied by
// the fixed visual scale constant.
func Scale(mol converter.Molecule) converter.Molecule {
	return mol.MapPositions(func(_ int, atom converter.Atom) geometry.Point {
		return atom.Position.Scale(viewScale)
	})
}

// Process runs the full stage pipeline: parse, reconstruct when the input
// turns out to be flat, then scale.
func Process(text, formula string, opts Options) (converter.Molecule, error) {
	mol, parseErr := Parse(text, formula)
	if parseErr != nil {
		return converter.Molecule{}, parseErr
	}
	if NeedsReconstruction(mol) {
		mol = Reconstruct(mol, opts)
	}
	return Scale(mol), nil
}

func baseOffset(
	mol converter.Molecule, neighbors [][]int, index int, atom converter.Atom, opts Options,
) float64 {
	x, y := atom.Position.X, atom.Position.Y
	degree := len(neighbors[index])

	switch {
	case atom.Element == "C" && degree == 4:
		// Tetrahedral-like variation.
		return 0.35*math.Sin(x*2.1)*math.Cos(y*1.7) + jitter(opts.Seed, index, 0.15)
	case atom.Element == "C" && degree == 3:
		// Trigonal planar with slight pyramidalization.
		return 0.15 * math.Sin(x*1.3+y*0.9)
	case atom.Element == "C" && degree == 2:
		// Bent or linear, alternating sign along the chain.
		sign := 1.0
		if index%2 == 1 {
			sign = -1.0
		}
		return sign * 0.25 * math.Cos(x*1.8+y*0.6)
	case atom.Element == "N" && degree == 3:
		// Pyramidal nitrogen sits above the substituent plane.
		return 0.3*math.Sin(x*1.5)*math.Cos(y*1.2) + 0.18
	case atom.Element == "N" && degree == 2:
		return 0.22 * math.Sin(x*1.1+y*1.4)
	case atom.Element == "O" && degree == 2:
		return 0.2 * math.Sin(x*1.6) * math.Cos(y*0.8)
	case atom.Element == "O" && degree == 1:
		return 0.12 * math.Cos(x*1.9+y*1.1)
	case atom.Element == "H" && degree == 1:
		// Hydrogen follows its only neighbor out of the plane.
		neighborZ := mol.Atoms[neighbors[index][0]].Position.Z
		return neighborZ + jitter(opts.Seed, index, 0.1)
	default:
		return 0.18*math.Sin(x*1.2)*math.Cos(y*1.3) + jitter(opts.Seed, index, 0.12)
	}
}

// jitter returns a bounded pseudo random offset in [-amplitude, amplitude].
// The generator is seeded from the configured seed and the atom's file
// index, so reconstruction stays reproducible per input.
func jitter(seed int64, atomIndex int, amplitude float64) float64 {
	rng := rand.New(rand.NewSource(seed + int64(atomIndex)*15485863))
	return (rng.Float64()*2 - 1) * amplitude
}
