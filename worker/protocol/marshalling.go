package protocol

import (
	"encoding/json"
	"errors"
)

type messageType string

type messageTypeObject struct {
	MessageType messageType
}

const (
	helloRequestMessageType  = "HelloRequest"
	helloResponseMessageType = "HelloResponse"
	evaluatePulseMessageType = "EvaluatePulse"
	pulseSamplesMessageType  = "PulseSamples"
)

var errBadMessageType = errors.New("Bad MessageType")

// MarshalJSON custom implementation. It encode additional "MessageType" key
// to distinct message type.
func (m *HelloRequestMessage) MarshalJSON() ([]byte, error) {
	type Alias HelloRequestMessage
	return json.Marshal(struct {
		MessageType messageType
		Alias
	}{
		MessageType: helloRequestMessageType,
		Alias:       (Alias)(*m),
	})
}

// UnmarshalJSON custom implementation. It decode "MessageType" key to perform validation.
func (m *HelloRequestMessage) UnmarshalJSON(b []byte) error {
	messageType := messageTypeObject{"Unknown"}
	err := json.Unmarshal(b, &messageType)
	if err != nil {
		return err
	}
	if messageType.MessageType != helloRequestMessageType {
		return errBadMessageType
	}

	type Alias *HelloRequestMessage
	return json.Unmarshal(b, (Alias)(m))
}

// MarshalJSON custom implementation. It encode additional "MessageType" key
// to distinct message type.
func (m *HelloResponseMessage) MarshalJSON() ([]byte, error) {
	type Alias HelloResponseMessage
	return json.Marshal(struct {
		MessageType messageType
		Alias
	}{
		MessageType: helloResponseMessageType,
		Alias:       (Alias)(*m),
	})
}

// UnmarshalJSON custom implementation. It decode "MessageType" key to perform validation.
func (m *HelloResponseMessage) UnmarshalJSON(b []byte) error {
	messageType := messageTypeObject{"Unknown"}
	err := json.Unmarshal(b, &messageType)
	if err != nil {
		return err
	}
	if messageType.MessageType != helloResponseMessageType {
		return errBadMessageType
	}

	type Alias *HelloResponseMessage
	return json.Unmarshal(b, (Alias)(m))
}

// MarshalJSON custom implementation. It encode additional "MessageType" key
// to distinct message type.
func (m *EvaluatePulseMessage) MarshalJSON() ([]byte, error) {
	type Alias EvaluatePulseMessage
	return json.Marshal(struct {
		MessageType messageType
		Alias
	}{
		MessageType: evaluatePulseMessageType,
		Alias:       (Alias)(*m),
	})
}

// UnmarshalJSON custom implementation. It decode "MessageType" key to perform validation.
func (m *EvaluatePulseMessage) UnmarshalJSON(b []byte) error {
	messageType := messageTypeObject{"Unknown"}
	err := json.Unmarshal(b, &messageType)
	if err != nil {
		return err
	}
	if messageType.MessageType != evaluatePulseMessageType {
		return errBadMessageType
	}

	type Alias *EvaluatePulseMessage
	return json.Unmarshal(b, (Alias)(m))
}

// MarshalJSON custom implementation. It encode additional "MessageType" key
// to distinct message type.
func (m *PulseSamplesMessage) MarshalJSON() ([]byte, error) {
	type Alias PulseSamplesMessage
	return json.Marshal(struct {
		MessageType messageType
		Alias
	}{
		MessageType: pulseSamplesMessageType,
		Alias:       (Alias)(*m),
	})
}

// UnmarshalJSON custom implementation. It decode "MessageType" key to perform validation.
func (m *PulseSamplesMessage) UnmarshalJSON(b []byte) error {
	messageType := messageTypeObject{"Unknown"}
	err := json.Unmarshal(b, &messageType)
	if err != nil {
		return err
	}
	if messageType.MessageType != pulseSamplesMessageType {
		return errBadMessageType
	}

	type Alias *PulseSamplesMessage
	return json.Unmarshal(b, (Alias)(m))
}
