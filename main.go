package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/tliangyin/picongpu/config"
	"github.com/tliangyin/picongpu/web"
)

func main() {
	conf := config.SetupConfig()
	log.Printf("Config: %+v\n", *conf)

	router, routerErr := web.NewRouter(conf)
	if routerErr != nil {
		log.Fatal(routerErr)
	}

	portString := ":" + strconv.FormatInt(conf.BackendPort, 10)

	log.Printf("Listening on %v\n", portString)
	log.Fatal(http.ListenAndServe(portString, router))
}
