// Package config provide service configuration from the environment.
package config

// Config contains basic server configuration.
type Config struct {
	BackendPublicUrl string
	BackendPort      int64

	// PubchemBaseUrl is the upstream PUG REST endpoint the proxy talks to.
	PubchemBaseUrl string

	// DbUrl enables the mongo response cache when non empty.
	DbUrl string

	// JitterSeed drives the deterministic depth reconstruction jitter.
	JitterSeed int64
}
