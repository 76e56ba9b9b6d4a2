package web

import (
	"net/http"

	"github.com/go-chi/chi"

	conf "github.com/bazarkua/molexa/config"
	"github.com/bazarkua/molexa/db/mongo"
	"github.com/bazarkua/molexa/pubchem"
)

type handler struct {
	config *conf.Config
	client *pubchem.Client
	cache  *mongo.Cache
	status *pubchem.StatusPoller
}

func setupRoutes(h *handler) http.Handler {
	w := requestWrapper

	router := chi.NewRouter()
	router.Use(corsMiddleware)

	router.Route("/api", func(router chi.Router) {
		router.Route("/search", func(router chi.Router) {
			router.Get("/name/{query}", w(h.searchByNameHandler))
			router.Get("/formula/{query}", w(h.searchByFormulaHandler))
		})

		router.Route("/compounds/{cid}", func(router chi.Router) {
			router.Get("/structure", w(h.structureHandler))
			router.Get("/properties", w(h.propertiesHandler))
			router.Get("/export/{format}", h.exportHandler)
		})

		router.Get("/status", w(h.statusHandler))
		router.Get("/status/ws", h.statusWebsocketHandler)
	})

	return router
}

// corsMiddleware allows the browser frontend to call the proxy from any
// origin; the api is anonymous and read only.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
