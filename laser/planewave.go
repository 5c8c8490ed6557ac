// Package laser implements time dependent laser pulse profiles used as
// electric field source terms by the field solver.
package laser

import (
	"math"

	"github.com/tliangyin/picongpu/geometry"
	"github.com/tliangyin/picongpu/setup"
)

// FieldSample is the evaluated source field for a single time step.
type FieldSample struct {
	E geometry.Vec3 `json:"e"`
	// Phase is reserved for chirped pulse profiles. The plane wave profile
	// always emits 0 here.
	Phase float64 `json:"phase"`
}

// Ramp exponents beyond this underflow the envelope to zero anyway.
// Returning an exact zero sample early keeps Inf times zero products
// out of the field state.
const maxRampExponent = 40.0

// PlaneWave evaluates a plane wave pulse with Gaussian up and down ramps
// and an optional flat plateau (requires periodic transverse boundaries).
//
// The field is derived from the electric potential
//
//	Phi = Phi_0 * exp(-0.5 * (t-t_0)^2 / tau^2) * cos(omega*(t-t_0) - phi)
//
// so that E contains, next to the sine oscillation, a cosine term scaled by
// the envelope derivative. That term keeps the time integral of E near zero
// over the whole pulse. With a nonzero plateau the integral only vanishes
// exactly when the plateau spans a whole number of wavelengths; this is a
// property of the model, not of the implementation.
type PlaneWave struct {
	pulse         setup.Pulse
	endUpramp     float64
	startDownramp float64
	omega         float64
}

// NewPlaneWave resolves pulse constants once for the run.
func NewPlaneWave(pulse setup.Pulse) PlaneWave {
	endUpramp := 0.5 * pulse.RampInit * pulse.PulseLength
	return PlaneWave{
		pulse:         pulse,
		endUpramp:     endUpramp,
		startDownramp: endUpramp + pulse.PlateauLength,
		omega:         2.0 * math.Pi * pulse.SpeedOfLight / pulse.WaveLength,
	}
}

// Longitudinal calculates the longitudinal field for the given time step.
//
// Pure function of the step index; safe for concurrent use from any number
// of goroutines.
func (w PlaneWave) Longitudinal(currentStep uint32) FieldSample {
	runTime := w.pulse.TimeStep * float64(currentStep)

	envelope, integrationCorrectionFactor := w.envelopeAt(runTime)
	if envelope == 0 {
		return FieldSample{}
	}

	timeOszi := runTime - w.endUpramp
	tAndPhase := w.omega*timeOszi + w.pulse.InitialPhase
	sin := math.Sin(tAndPhase)
	cos := math.Cos(tAndPhase)

	var elong geometry.Vec3
	switch w.pulse.Polarization {
	case setup.LinearX:
		elong.X = envelope * (sin + cos*integrationCorrectionFactor)
	case setup.LinearZ:
		elong.Z = envelope * (sin + cos*integrationCorrectionFactor)
	case setup.Circular:
		elong.X = envelope / math.Sqrt2 * (sin + cos*integrationCorrectionFactor)
		elong.Z = envelope / math.Sqrt2 * (cos - sin*integrationCorrectionFactor)
	}

	return FieldSample{E: elong}
}

// envelopeAt returns the ramp attenuated amplitude together with the
// integration correction factor for the given run time. The plateau branch
// applies on the boundaries themselves; the Gaussian tails meet the plateau
// with matching value and zero slope, so the envelope stays continuous.
// A ramp exponent beyond maxRampExponent collapses the envelope to an
// exact zero.
func (w PlaneWave) envelopeAt(runTime float64) (envelope, integrationCorrectionFactor float64) {
	tau := w.pulse.PulseLength
	envelope = w.pulse.Amplitude

	switch {
	case runTime > w.startDownramp:
		// downramp = end
		exponent := (runTime - w.startDownramp) / (tau * math.Sqrt2)
		if exponent > maxRampExponent {
			return 0, 0
		}
		envelope *= math.Exp(-0.5 * exponent * exponent)
		integrationCorrectionFactor = (runTime - w.startDownramp) / (2.0 * tau * tau)
	case runTime < w.endUpramp:
		// upramp = start
		exponent := (runTime - w.endUpramp) / (tau * math.Sqrt2)
		if exponent < -maxRampExponent {
			return 0, 0
		}
		envelope *= math.Exp(-0.5 * exponent * exponent)
		integrationCorrectionFactor = (runTime - w.endUpramp) / (2.0 * tau * tau)
	}
	return envelope, integrationCorrectionFactor
}

// Transversal calculates the transverse field distribution.
//
// The plane wave has no transverse envelope, so the longitudinal field
// passes through unchanged for any transverse position. Spatially shaped
// profiles replace this with a real envelope function.
func (w PlaneWave) Transversal(elong geometry.Vec3, posX, posZ float64) geometry.Vec3 {
	return elong
}
