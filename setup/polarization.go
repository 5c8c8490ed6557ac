package setup

import (
	"encoding/json"
	"fmt"
)

var polarizationTypes = map[string]bool{
	"linear_x": true,
	"linear_z": true,
	"circular": true,
}

// PolarizationType ...
type PolarizationType interface{}

// Polarization selects which axes of the field vector carry the oscillation.
type Polarization struct {
	PolarizationType
}

// PredefinedPolarization ...
type PredefinedPolarization string

// Predefined polarization modes of the plane wave profile.
var (
	LinearX  = Polarization{PredefinedPolarization("linear_x")}
	LinearZ  = Polarization{PredefinedPolarization("linear_z")}
	Circular = Polarization{PredefinedPolarization("circular")}
)

// MarshalJSON json.Marshaller implementation.
func (p PredefinedPolarization) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{
		Type: string(p),
	})
}

// MarshalJSON ...
func (p Polarization) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PolarizationType)
}

// UnmarshalJSON ...
func (p *Polarization) UnmarshalJSON(b []byte) error {
	var rawPolarization struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &rawPolarization); err != nil {
		return err
	}
	if !polarizationTypes[rawPolarization.Type] {
		return fmt.Errorf("unknown polarization type")
	}
	p.PolarizationType = PredefinedPolarization(rawPolarization.Type)
	return nil
}

// Validate ...
func (p Polarization) Validate() error {
	predefined, assertOk := p.PolarizationType.(PredefinedPolarization)
	if !assertOk {
		return fmt.Errorf("unknown polarization type")
	}
	if !polarizationTypes[string(predefined)] {
		return fmt.Errorf("unknown polarization type")
	}
	return nil
}

// PolarizationRecord is a polarization mode entry served by the configuration route.
type PolarizationRecord struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Polarizations returns records for all predefined polarization modes.
func Polarizations() []PolarizationRecord {
	return []PolarizationRecord{
		{Type: "linear_x", Name: "Linear (x axis)"},
		{Type: "linear_z", Name: "Linear (z axis)"},
		{Type: "circular", Name: "Circular"},
	}
}
