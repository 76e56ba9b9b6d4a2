package web

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/bazarkua/molexa/errors"
	"github.com/bazarkua/molexa/model"
	"github.com/bazarkua/molexa/pkg/converter"
)

func extractCIDContext(ctx context.Context) (model.CID, error) {
	chiContext := chi.RouteContext(ctx)
	stringID := chiContext.URLParam("cid")
	id, idErr := strconv.ParseInt(stringID, 10, 64)
	if idErr != nil || id <= 0 {
		return 0, errors.ErrMalformed
	}
	return model.CID(id), nil
}

func extractStringURLParam(ctx context.Context, name string) string {
	chiContext := chi.RouteContext(ctx)
	return chiContext.URLParam(name)
}

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func handleRequestErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrMalformed):
		status = http.StatusBadRequest
	case stderrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	case stderrors.Is(err, converter.ErrEmptyStructure):
		status = http.StatusUnprocessableEntity
	case stderrors.Is(err, converter.ErrParse):
		status = http.StatusBadGateway
	}
	_ = writeJSONResponse(w, status, errors.NewRequestError(err.Error()))
}
