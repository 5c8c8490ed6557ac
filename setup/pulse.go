// Package setup contains the laser pulse configuration model.
package setup

// Pulse holds plane wave pulse parameters.
//
// All values are SI. Pulse is immutable for the whole run; it is validated
// once at the configuration boundary and treated as constant by evaluators.
type Pulse struct {
	// Amplitude is the peak electric field strength E_0 in V/m.
	// laser.param: AMPLITUDE_SI
	Amplitude float64 `json:"amplitude"`

	// WaveLength ...
	// laser.param: WAVE_LENGTH_SI
	WaveLength float64 `json:"waveLength"`

	// PulseLength is the Gaussian sigma of the ramps in s.
	// laser.param: PULSE_LENGTH_SI
	PulseLength float64 `json:"pulseLength"`

	// RampInit scales the up-ramp duration in units of PulseLength.
	// laser.param: RAMP_INIT
	RampInit float64 `json:"rampInit"`

	// PlateauLength is the flat top duration in s.
	// laser.param: LASER_NOFOCUS_CONSTANT_SI
	PlateauLength float64 `json:"plateauLength"`

	// InitialPhase ...
	// laser.param: LASER_PHASE
	InitialPhase float64 `json:"initialPhase"`

	// Polarization ...
	// laser.param: Polarisation
	Polarization Polarization `json:"polarization"`

	// TimeStep is the simulation time step in s.
	// grid.param: DELTA_T_SI
	TimeStep float64 `json:"timeStep"`

	// SpeedOfLight ...
	// physicalConstants.param: SPEED_OF_LIGHT_SI
	SpeedOfLight float64 `json:"speedOfLight"`
}

// DefaultPulse represents the reference 800 nm plane wave configuration.
var DefaultPulse = Pulse{
	Amplitude:     1.738e13,
	WaveLength:    0.8e-6,
	PulseLength:   10.615e-15,
	RampInit:      20.0,
	PlateauLength: 13.34e-15,
	InitialPhase:  0,
	Polarization:  LinearX,
	TimeStep:      0.8e-16,
	SpeedOfLight:  2.99792458e8,
}
