package pubchem

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bazarkua/molexa/model"
	"github.com/bazarkua/molexa/pkg/converter/molfile"
)

// minStructureLength guards against truncated or error-page responses: a
// connection table with a counts line and one atom cannot be shorter.
const minStructureLength = 40

// FetchStructure retrieves the raw connection table for a compound. The
// response is only accepted when it has a plausible length and carries the
// record terminator token.
func (c *Client) FetchStructure(ctx context.Context, cid model.CID) (string, error) {
	path := fmt.Sprintf("/pug/compound/cid/%d/record/SDF?record_type=2d", cid)
	body, getErr := c.get(ctx, path)
	if getErr != nil {
		return "", getErr
	}

	text := string(body)
	if len(text) < minStructureLength || !strings.Contains(text, molfile.RecordTerminator) {
		return "", fmt.Errorf("pubchem: implausible structure response for cid %d", cid)
	}
	return text, nil
}

type propertyTableResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID              model.CID   `json:"CID"`
			MolecularFormula string      `json:"MolecularFormula"`
			MolecularWeight  json.Number `json:"MolecularWeight"`
			IUPACName        string      `json:"IUPACName"`
			CanonicalSMILES  string      `json:"CanonicalSMILES"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

// FetchProperties retrieves the display property records for a compound.
func (c *Client) FetchProperties(ctx context.Context, cid model.CID) (model.CompoundProperties, error) {
	path := fmt.Sprintf(
		"/pug/compound/cid/%d/property/MolecularFormula,MolecularWeight,IUPACName,CanonicalSMILES/JSON",
		cid,
	)
	body, getErr := c.get(ctx, path)
	if getErr != nil {
		return model.CompoundProperties{}, getErr
	}

	response := propertyTableResponse{}
	if unmarshalErr := json.Unmarshal(body, &response); unmarshalErr != nil {
		return model.CompoundProperties{}, fmt.Errorf("pubchem: malformed property table: %w", unmarshalErr)
	}
	if len(response.PropertyTable.Properties) == 0 {
		return model.CompoundProperties{}, fmt.Errorf("pubchem: no properties for cid %d", cid)
	}

	raw := response.PropertyTable.Properties[0]
	weight, _ := strconv.ParseFloat(raw.MolecularWeight.String(), 64)
	return model.CompoundProperties{
		CID:              raw.CID,
		MolecularFormula: raw.MolecularFormula,
		MolecularWeight:  weight,
		IUPACName:        raw.IUPACName,
		CanonicalSMILES:  raw.CanonicalSMILES,
	}, nil
}
