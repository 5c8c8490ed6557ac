// Package wsclient implements the websocket worker client which exchanges
// pulse evaluation messages with the field solver backend.
package wsclient

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/tliangyin/picongpu/sampler"
	"github.com/tliangyin/picongpu/worker/config"
	"github.com/tliangyin/picongpu/worker/protocol"
)

// ConnectAndServe connects to the field solver backend over websocket,
// then answers EvaluatePulseMessages until the connection closes.
// Messages are JSON, defined in worker/protocol.
func ConnectAndServe(config config.Config, runner sampler.Runner) error {
	conn := connect(config.Address, protocol.BackendListenPath)
	defer conn.Close()

	isValidToken, err := helloMessageHandshake(conn, config.Token, runner)

	switch {
	case err != nil:
		return err
	case !isValidToken:
		return fmt.Errorf("%s", "token authentication failed")
	}

	log.Info("token authentication succeeded")

	go closeConnectionOnInterruptSignal(conn)

	log.Info("waiting for evaluate pulse messages...")
	messageReadLoop(conn, runner)

	return nil
}

func connect(address, path string) *websocket.Conn {
	url := url.URL{Scheme: "ws", Host: address, Path: path}

	for {
		log.Infof("connecting to %s", url.String())

		conn, _, err := websocket.DefaultDialer.Dial(url.String(), nil)
		if err != nil {
			log.Error(err.Error())
			time.Sleep(1 * time.Second)
		} else {
			return conn
		}
	}
}

func helloMessageHandshake(conn *websocket.Conn, token string, runner sampler.Runner) (bool, error) {
	err := conn.WriteJSON(
		&protocol.HelloRequestMessage{
			Token:                 token,
			AvailableProfileNames: runner.AvailableProfileNames(),
		},
	)
	if err != nil {
		return false, err
	}

	var helloResponseMessage protocol.HelloResponseMessage
	err = conn.ReadJSON(&helloResponseMessage)
	if err != nil {
		return false, nil
	}

	return helloResponseMessage.TokenValid, nil
}

func messageReadLoop(conn *websocket.Conn, runner sampler.Runner) {
	for {
		var evaluateMessage protocol.EvaluatePulseMessage
		err := conn.ReadJSON(&evaluateMessage)
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return
			}
			log.Warn("read:", err)
			continue
		}

		response := protocol.PulseSamplesMessage{}
		files, runErr := runner.Run(
			evaluateMessage.ProfileName,
			evaluateMessage.Pulse,
			evaluateMessage.StartStep,
			evaluateMessage.StepCount,
		)
		if runErr != nil {
			response.Errors = []string{runErr.Error()}
		} else {
			response.Files = files
		}

		err = conn.WriteJSON(&response)
		if err != nil {
			log.Warn("write:", err)
			continue
		}
	}
}

func closeConnectionOnInterruptSignal(conn *websocket.Conn) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	<-interrupt
	log.Info("interrupt")
	_ = conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	time.Sleep(2 * time.Second)
}
