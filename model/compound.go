// Package model contains the API payload types shared by the pubchem
// client and the web layer.
package model

import (
	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/scene"
)

// CID is a PubChem compound identifier.
type CID int64

// SearchResult is the ordered identifier list returned by a name or
// formula search.
type SearchResult struct {
	Query string `json:"query"`
	CIDs  []CID  `json:"cids"`
}

// CompoundProperties are display only records fetched per compound.
type CompoundProperties struct {
	CID              CID     `json:"cid"`
	MolecularFormula string  `json:"molecularFormula"`
	MolecularWeight  float64 `json:"molecularWeight"`
	IUPACName        string  `json:"iupacName,omitempty"`
	CanonicalSMILES  string  `json:"canonicalSmiles,omitempty"`
}

// StructureResponse bundles the reconstructed molecule with its derived
// scene geometry for the renderer.
type StructureResponse struct {
	CID      CID                `json:"cid"`
	Molecule converter.Molecule `json:"molecule"`
	Scene    scene.Scene        `json:"scene"`
}
