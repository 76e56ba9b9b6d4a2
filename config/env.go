package config

import (
	"os"
)

// PRODEnv - current environment
var PRODEnv = false

// DEVEnv - current environment
var DEVEnv = false

func readEnv() {
	env := os.Getenv("MOLEXA_ENV")
	if env == "PROD" {
		PRODEnv = true
	} else if env == "DEV" {
		DEVEnv = true
	} else {
		PRODEnv = true
	}
}
