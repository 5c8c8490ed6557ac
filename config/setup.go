// Package config reads backend configuration from the environment.
package config

import (
	"os"
	"strconv"
)

var log = NamedLogger("config")

// SetupConfig read and check config from various sources.
func SetupConfig() *Config {
	conf := getDefaultConfig()

	publicUrl := os.Getenv("PICONGPU_BACKEND_PUBLIC_URL")
	if publicUrl != "" {
		conf.BackendPublicUrl = publicUrl
	} else {
		log.Warn("[config] Public url is not defined. Using default localhost:3002")
	}

	port := os.Getenv("PICONGPU_BACKEND_PORT")
	if port != "" {
		portNumber, numberErr := strconv.ParseInt(port, 10, 64)
		if numberErr != nil {
			log.Errorf("[config] Port is not a number. %s", numberErr.Error())
		} else {
			conf.BackendPort = portNumber
		}
	} else {
		log.Warn("[config] Backend port is not defined. Using default 3002")
	}

	return conf
}

func getDefaultConfig() *Config {
	return &Config{
		BackendPublicUrl: "localhost:3002",
		BackendPort:      3002,
	}
}
