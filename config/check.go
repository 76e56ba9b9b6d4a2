package config

import (
	"errors"
	"net/url"
)

type checkFunc func(conf *Config) error

// CheckConfig validates a config before the server starts.
func CheckConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkPort,
		checkPubchemUrl,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkPort(conf *Config) error {
	port := conf.BackendPort
	if port < 1000 || port > 65535 {
		return errors.New("Invalid port number")
	}
	return nil
}

func checkPubchemUrl(conf *Config) error {
	parsed, parseErr := url.Parse(conf.PubchemBaseUrl)
	if parseErr != nil {
		return parseErr
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("Invalid pubchem url scheme")
	}
	return nil
}
