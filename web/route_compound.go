package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bazarkua/molexa/errors"
	"github.com/bazarkua/molexa/model"
	"github.com/bazarkua/molexa/pkg/converter"
	"github.com/bazarkua/molexa/pkg/converter/export"
	"github.com/bazarkua/molexa/pkg/converter/molfile"
	"github.com/bazarkua/molexa/pkg/converter/scene"
)

func (h *handler) searchByNameHandler(ctx context.Context) (model.SearchResult, error) {
	query := extractStringURLParam(ctx, "query")
	if query == "" {
		return model.SearchResult{}, errors.ErrMalformed
	}

	cids, searchErr := h.client.SearchByName(ctx, query)
	if searchErr != nil {
		log.Warnf("name search %q failed: %v", query, searchErr)
		return model.SearchResult{}, searchErr
	}
	return model.SearchResult{Query: query, CIDs: cids}, nil
}

func (h *handler) searchByFormulaHandler(ctx context.Context) (model.SearchResult, error) {
	query := extractStringURLParam(ctx, "query")
	if query == "" {
		return model.SearchResult{}, errors.ErrMalformed
	}

	cids, searchErr := h.client.SearchByFormula(ctx, query)
	if searchErr != nil {
		log.Warnf("formula search %q failed: %v", query, searchErr)
		return model.SearchResult{}, searchErr
	}
	return model.SearchResult{Query: query, CIDs: cids}, nil
}

func (h *handler) structureHandler(ctx context.Context) (model.StructureResponse, error) {
	cid, cidErr := extractCIDContext(ctx)
	if cidErr != nil {
		return model.StructureResponse{}, cidErr
	}

	molecule, buildErr := h.buildMolecule(ctx, cid)
	if buildErr != nil {
		return model.StructureResponse{}, buildErr
	}

	return model.StructureResponse{
		CID:      cid,
		Molecule: molecule,
		Scene:    scene.Build(molecule),
	}, nil
}

func (h *handler) propertiesHandler(ctx context.Context) (model.CompoundProperties, error) {
	cid, cidErr := extractCIDContext(ctx)
	if cidErr != nil {
		return model.CompoundProperties{}, cidErr
	}
	return h.getProperties(ctx, cid)
}

var exportContentTypes = map[string]string{
	"mol": "chemical/x-mdl-molfile",
	"xyz": "chemical/x-xyz",
	"obj": "text/plain",
	"mtl": "text/plain",
}

func (h *handler) exportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := extractStringURLParam(ctx, "format")
	contentType, known := exportContentTypes[format]
	if !known {
		handleRequestErr(w, errors.ErrMalformed)
		return
	}

	cid, cidErr := extractCIDContext(ctx)
	if cidErr != nil {
		handleRequestErr(w, cidErr)
		return
	}

	molecule, buildErr := h.buildMolecule(ctx, cid)
	if buildErr != nil {
		handleRequestErr(w, buildErr)
		return
	}

	var body string
	switch format {
	case "mol":
		body = export.Molfile(molecule)
	case "xyz":
		body = export.XYZ(molecule)
	case "obj":
		body, _ = export.Wavefront(scene.Build(molecule))
	case "mtl":
		_, body = export.Wavefront(scene.Build(molecule))
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=\"compound-%d.%s\"", cid, format),
	)
	w.WriteHeader(http.StatusOK)
	if _, writeErr := w.Write([]byte(body)); writeErr != nil {
		log.Warnf("export write failed: %v", writeErr)
	}
}

// buildMolecule runs the full pipeline for a compound: raw connection
// table (cached when possible), depth reconstruction and view scaling.
func (h *handler) buildMolecule(ctx context.Context, cid model.CID) (converter.Molecule, error) {
	text, textErr := h.getStructureText(ctx, cid)
	if textErr != nil {
		return converter.Molecule{}, textErr
	}

	properties, propertiesErr := h.getProperties(ctx, cid)
	if propertiesErr != nil {
		log.Warnf("properties lookup for cid %d failed: %v", cid, propertiesErr)
	}

	opts := molfile.Options{Seed: h.config.JitterSeed}
	return molfile.Process(text, properties.MolecularFormula, opts)
}

func (h *handler) getStructureText(ctx context.Context, cid model.CID) (string, error) {
	if h.cache != nil {
		if text, found := h.cache.GetStructure(cid); found {
			return text, nil
		}
	}

	text, fetchErr := h.client.FetchStructure(ctx, cid)
	if fetchErr != nil {
		return "", fetchErr
	}

	if h.cache != nil {
		if putErr := h.cache.PutStructure(cid, text); putErr != nil {
			log.Warnf("structure cache write for cid %d failed: %v", cid, putErr)
		}
	}
	return text, nil
}

func (h *handler) getProperties(ctx context.Context, cid model.CID) (model.CompoundProperties, error) {
	if h.cache != nil {
		if properties, found := h.cache.GetProperties(cid); found {
			return properties, nil
		}
	}

	properties, fetchErr := h.client.FetchProperties(ctx, cid)
	if fetchErr != nil {
		return model.CompoundProperties{}, fetchErr
	}

	if h.cache != nil {
		if putErr := h.cache.PutProperties(cid, properties); putErr != nil {
			log.Warnf("properties cache write for cid %d failed: %v", cid, putErr)
		}
	}
	return properties, nil
}
