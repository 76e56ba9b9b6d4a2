package pubchem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bazarkua/molexa/model"
)

type identifierListResponse struct {
	IdentifierList struct {
		CID []model.CID `json:"CID"`
	} `json:"IdentifierList"`
}

// SearchByName resolves a chemical name to an ordered compound id list.
func (c *Client) SearchByName(ctx context.Context, name string) ([]model.CID, error) {
	path := fmt.Sprintf("/pug/compound/name/%s/cids/JSON", url.PathEscape(name))
	return c.searchCIDs(ctx, path)
}

// SearchByFormula resolves a molecular formula to an ordered compound id
// list.
func (c *Client) SearchByFormula(ctx context.Context, formula string) ([]model.CID, error) {
	path := fmt.Sprintf("/pug/compound/fastformula/%s/cids/JSON", url.PathEscape(formula))
	return c.searchCIDs(ctx, path)
}

func (c *Client) searchCIDs(ctx context.Context, path string) ([]model.CID, error) {
	body, getErr := c.get(ctx, path)
	if getErr != nil {
		return nil, getErr
	}

	response := identifierListResponse{}
	if unmarshalErr := json.Unmarshal(body, &response); unmarshalErr != nil {
		return nil, fmt.Errorf("pubchem: malformed identifier list: %w", unmarshalErr)
	}
	return response.IdentifierList.CID, nil
}
