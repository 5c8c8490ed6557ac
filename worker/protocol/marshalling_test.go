package protocol

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tliangyin/picongpu/setup"
)

func TestMessagesMarshalling(t *testing.T) {
	testCases := []struct {
		jsonMessage string
		message     interface{}
	}{
		{
			jsonMessage: `{"MessageType": "HelloRequest", "Token": "abc", "AvailableProfileNames": ["planeWave"]}`,
			message: &HelloRequestMessage{
				Token:                 "abc",
				AvailableProfileNames: []string{"planeWave"},
			},
		},
		{
			jsonMessage: `{"MessageType": "HelloResponse", "TokenValid": true}`,
			message: &HelloResponseMessage{
				TokenValid: true,
			},
		},
		{
			jsonMessage: `{
				"MessageType": "EvaluatePulse",
				"ProfileName": "planeWave",
				"Pulse": {
					"amplitude": 1,
					"waveLength": 0.8,
					"pulseLength": 10,
					"rampInit": 2,
					"plateauLength": 0,
					"initialPhase": 0,
					"polarization": {"type": "linear_x"},
					"timeStep": 1,
					"speedOfLight": 1
				},
				"StartStep": 0,
				"StepCount": 16
			}`,
			message: &EvaluatePulseMessage{
				ProfileName: "planeWave",
				Pulse: setup.Pulse{
					Amplitude:    1,
					WaveLength:   0.8,
					PulseLength:  10,
					RampInit:     2,
					Polarization: setup.LinearX,
					TimeStep:     1,
					SpeedOfLight: 1,
				},
				StepCount: 16,
			},
		},
		{
			jsonMessage: `{"MessageType": "PulseSamples", "Files": {"pulse.dat": "*"}}`,
			message: &PulseSamplesMessage{
				Files: map[string]string{"pulse.dat": "*"},
			},
		},
	}

	for index, testCase := range testCases {
		t.Run(fmt.Sprintf("case %d unmarshal", index), func(t *testing.T) {
			unmarshalled := reflect.New(reflect.TypeOf(testCase.message).Elem()).Interface()
			err := json.Unmarshal([]byte(testCase.jsonMessage), unmarshalled)
			assert.NoError(t, err)
			assert.Equal(t, testCase.message, unmarshalled)
		})

		t.Run(fmt.Sprintf("case %d marshal round trip", index), func(t *testing.T) {
			marshalled, err := json.Marshal(testCase.message)
			assert.NoError(t, err)

			unmarshalled := reflect.New(reflect.TypeOf(testCase.message).Elem()).Interface()
			assert.NoError(t, json.Unmarshal(marshalled, unmarshalled))
			assert.Equal(t, testCase.message, unmarshalled)
		})
	}
}

func TestUnmarshallingRejectsWrongMessageType(t *testing.T) {
	var hello HelloRequestMessage
	err := json.Unmarshal([]byte(`{"MessageType": "PulseSamples"}`), &hello)
	assert.Equal(t, errBadMessageType, err)

	var evaluate EvaluatePulseMessage
	err = json.Unmarshal([]byte(`{"MessageType": "HelloRequest"}`), &evaluate)
	assert.Equal(t, errBadMessageType, err)
}
