// Package web exposes pulse configuration and evaluation over HTTP.
package web

import (
	"net/http"

	conf "github.com/tliangyin/picongpu/config"
	"github.com/tliangyin/picongpu/sampler"
)

var log = conf.NamedLogger("web")

type handler struct {
	config *conf.Config
	runner sampler.Runner
}

// NewRouter ...
func NewRouter(config *conf.Config) (http.Handler, error) {
	context := &handler{
		config: config,
		runner: sampler.NewRunner(),
	}

	return setupRoutes(context), nil
}
