// Package scene derives renderable geometry from a molecule model: sphere
// placements for atoms, one to three cylinders per bond depending on bond
// order, centering and camera framing.
package scene

import (
	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/geometry"
)

// Sphere is the render placement of one atom. Index and AtomID correlate
// back to the originating atom for later data extraction.
type Sphere struct {
	Index   int            `json:"index"`
	AtomID  string         `json:"atomId"`
	Element string         `json:"element"`
	Center  geometry.Point `json:"center"`
	Radius  float64        `json:"radius"`
	Color   string         `json:"color"`
}

// Cylinder is one render segment of a bond. Double and triple bonds produce
// several parallel cylinders tagged with the same endpoint atom IDs.
type Cylinder struct {
	Start  geometry.Point     `json:"start"`
	End    geometry.Point     `json:"end"`
	Radius float64            `json:"radius"`
	Kind   converter.BondKind `json:"type"`
	Atom1  string             `json:"atom1"`
	Atom2  string             `json:"atom2"`
}

// Camera holds the derived framing for the molecule.
type Camera struct {
	Distance float64 `json:"distance"`
	FOV      float64 `json:"fov"`
}

// Scene is the full derived geometry, centered at the origin.
type Scene struct {
	Spheres   []Sphere     `json:"spheres"`
	Cylinders []Cylinder   `json:"cylinders"`
	Bounds    geometry.Box `json:"bounds"`
	Camera    Camera       `json:"camera"`
}
