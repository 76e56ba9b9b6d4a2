// Package web exposes the proxy API: compound search, structure retrieval
// with scene geometry, property lookup, exports and upstream status.
package web

import (
	"context"
	"net/http"
	"time"

	conf "github.com/bazarkua/molexa/config"
	"github.com/bazarkua/molexa/db/mongo"
	"github.com/bazarkua/molexa/pubchem"
)

var log = conf.NamedLogger("web")

const statusPollInterval = 30 * time.Second

// NewRouter ...
func NewRouter(config *conf.Config) (http.Handler, error) {
	client := pubchem.NewClient(config)

	var cache *mongo.Cache
	if config.DbUrl != "" {
		connected, dbErr := mongo.NewCache(config)
		if dbErr != nil {
			log.Error(dbErr.Error())
			return nil, dbErr
		}
		cache = connected
	}

	poller := pubchem.NewStatusPoller(client, statusPollInterval)
	go poller.Run(context.Background())

	h := &handler{
		config: config,
		client: client,
		cache:  cache,
		status: poller,
	}

	return setupRoutes(h), nil
}
