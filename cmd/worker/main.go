package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tliangyin/picongpu/sampler"
	"github.com/tliangyin/picongpu/worker/config"
	"github.com/tliangyin/picongpu/worker/wsclient"
)

func main() {
	config := config.Read()
	initLogger(config)
	log.Debugf("Config: %#v", config)

	runner := sampler.NewRunner()

	log.Infof("Available laser profiles: ")
	for _, name := range runner.AvailableProfileNames() {
		log.Infof("\t\"%s\"", name)
	}

	err := wsclient.ConnectAndServe(config, runner)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func initLogger(config config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(config.LoggingLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
}
