package setup

import (
	"fmt"

	"github.com/tliangyin/picongpu/validate"
)

// Validate ...
func (p Pulse) Validate() error {
	result := E{}

	if !validate.Positive(p.WaveLength) {
		result["waveLength"] = fmt.Errorf("should be positive value")
	}
	if !validate.Positive(p.PulseLength) {
		result["pulseLength"] = fmt.Errorf("should be positive value")
	}
	if !validate.NonNegative(p.Amplitude) {
		result["amplitude"] = fmt.Errorf("should not be negative value")
	}
	if !validate.NonNegative(p.RampInit) {
		result["rampInit"] = fmt.Errorf("should not be negative value")
	}
	if !validate.NonNegative(p.PlateauLength) {
		result["plateauLength"] = fmt.Errorf("should not be negative value")
	}
	if !validate.InRange2PI(p.InitialPhase) {
		result["initialPhase"] = fmt.Errorf("should be between 0 and 2PI")
	}
	if !validate.Positive(p.TimeStep) {
		result["timeStep"] = fmt.Errorf("should be positive value")
	}
	if !validate.Positive(p.SpeedOfLight) {
		result["speedOfLight"] = fmt.Errorf("should be positive value")
	}
	if err := p.Polarization.Validate(); err != nil {
		result["polarization"] = err
	}

	if result.IsEmpty() {
		return nil
	}
	return result
}
