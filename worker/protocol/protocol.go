// Package protocol defines messages passed between the pulse worker and
// the field solver backend.
package protocol

import "github.com/tliangyin/picongpu/setup"

// BackendListenPath is the URI on which the backend listens for new workers.
const BackendListenPath = "/ws"

// HelloRequestMessage protocol message.
type HelloRequestMessage struct {
	Token                 string
	AvailableProfileNames []string
}

// HelloResponseMessage protocol message.
type HelloResponseMessage struct {
	TokenValid bool
}

// EvaluatePulseMessage protocol message. It asks the worker for stepCount
// field samples of the named laser profile starting at StartStep.
type EvaluatePulseMessage struct {
	ProfileName string
	Pulse       setup.Pulse
	StartStep   uint32
	StepCount   uint32
}

// PulseSamplesMessage protocol message carrying serialized result files.
type PulseSamplesMessage struct {
	Files  map[string]string `json:",omitempty"`
	Errors []string          `json:",omitempty"`
}
