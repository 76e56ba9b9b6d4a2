package config

import (
	"os"
	"strconv"
)

var log = NamedLogger("config")

const defaultPubchemBaseUrl = "https://pubchem.ncbi.nlm.nih.gov/rest"

// SetupConfig read and check config from environment variables.
func SetupConfig() *Config {
	readEnv()
	conf := getDefaultConfig()

	publicUrl := os.Getenv("MOLEXA_BACKEND_PUBLIC_URL")
	if publicUrl != "" {
		conf.BackendPublicUrl = publicUrl
	} else {
		log.Warnf("[config] Public url is not defined. Using default localhost:3002")
	}

	port := os.Getenv("MOLEXA_BACKEND_PORT")
	if port != "" {
		portNumber, numberErr := strconv.ParseInt(port, 10, 64)
		if numberErr != nil {
			log.Errorf("[config] Port is not a number. %s", numberErr.Error())
		} else {
			conf.BackendPort = portNumber
		}
	} else {
		log.Warnf("[config] Backend port is not defined. Using default 3002")
	}

	pubchemUrl := os.Getenv("MOLEXA_PUBCHEM_URL")
	if pubchemUrl != "" {
		conf.PubchemBaseUrl = pubchemUrl
	}

	// The db is an optional response cache, the service runs without it.
	conf.DbUrl = os.Getenv("MOLEXA_DB_URL")
	if conf.DbUrl == "" {
		log.Warnf("[config] Db url is not defined. Response caching disabled")
	}

	seed := os.Getenv("MOLEXA_JITTER_SEED")
	if seed != "" {
		seedNumber, numberErr := strconv.ParseInt(seed, 10, 64)
		if numberErr != nil {
			log.Errorf("[config] Jitter seed is not a number. %s", numberErr.Error())
		} else {
			conf.JitterSeed = seedNumber
		}
	}

	return conf
}

func getDefaultConfig() *Config {
	return &Config{
		BackendPublicUrl: "localhost:3002",
		BackendPort:      3002,
		PubchemBaseUrl:   defaultPubchemBaseUrl,
		DbUrl:            "",
		JitterSeed:       1,
	}
}
