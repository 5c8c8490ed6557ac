package laser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tliangyin/picongpu/geometry"
	"github.com/tliangyin/picongpu/setup"
)

// Unit scaled pulse used by most tests: endUpramp = 10, one period = 0.8.
func testPulse() setup.Pulse {
	return setup.Pulse{
		Amplitude:     1,
		WaveLength:    0.8,
		PulseLength:   10,
		RampInit:      2,
		PlateauLength: 0,
		InitialPhase:  0,
		Polarization:  setup.LinearX,
		TimeStep:      1,
		SpeedOfLight:  1,
	}
}

func TestPlateauHoldsFullAmplitude(t *testing.T) {
	pulse := testPulse()
	pulse.PlateauLength = 5
	wave := NewPlaneWave(pulse)

	// endUpramp = 10, startDownramp = 15, boundaries included.
	for _, runTime := range []float64{10, 11.5, 13, 15} {
		envelope, correction := wave.envelopeAt(runTime)
		assert.Equal(t, pulse.Amplitude, envelope, "runTime=%v", runTime)
		assert.Equal(t, 0.0, correction, "runTime=%v", runTime)
	}
}

func TestEnvelopeContinuousAtRampBoundaries(t *testing.T) {
	pulse := testPulse()
	pulse.PlateauLength = 5
	wave := NewPlaneWave(pulse)

	const eps = 1e-9
	for _, boundary := range []float64{10, 15} {
		inside, _ := wave.envelopeAt(boundary)
		below, _ := wave.envelopeAt(boundary - eps)
		above, _ := wave.envelopeAt(boundary + eps)
		assert.InEpsilon(t, inside, below, 1e-6, "below boundary %v", boundary)
		assert.InEpsilon(t, inside, above, 1e-6, "above boundary %v", boundary)
	}
}

func TestLinearPolarizationLeavesOtherAxesZero(t *testing.T) {
	waveX := NewPlaneWave(testPulse())

	pulseZ := testPulse()
	pulseZ.Polarization = setup.LinearZ
	waveZ := NewPlaneWave(pulseZ)

	for step := uint32(0); step < 40; step++ {
		sampleX := waveX.Longitudinal(step)
		assert.Zero(t, sampleX.E.Y, "step=%d", step)
		assert.Zero(t, sampleX.E.Z, "step=%d", step)

		sampleZ := waveZ.Longitudinal(step)
		assert.Zero(t, sampleZ.E.X, "step=%d", step)
		assert.Zero(t, sampleZ.E.Y, "step=%d", step)
	}
}

// On the plateau the correction factor vanishes, so the two circular
// components must share the full intensity: Ex^2 + Ez^2 == E_0^2 / 2,
// constant in time, which matches the cycle average of the linear modes.
func TestCircularPolarizationConservesIntensity(t *testing.T) {
	pulse := testPulse()
	pulse.PlateauLength = 8
	pulse.Polarization = setup.Circular
	wave := NewPlaneWave(pulse)

	want := pulse.Amplitude * pulse.Amplitude / 2
	for step := uint32(10); step <= 18; step++ {
		sample := wave.Longitudinal(step)
		sum := sample.E.X*sample.E.X + sample.E.Z*sample.E.Z
		assert.InDelta(t, want, sum, 1e-12, "step=%d", step)
		assert.Zero(t, sample.E.Y, "step=%d", step)
	}
}

func TestAuxiliaryPhaseIsAlwaysZero(t *testing.T) {
	wave := NewPlaneWave(testPulse())
	for step := uint32(0); step < 100; step += 7 {
		assert.Zero(t, wave.Longitudinal(step).Phase)
	}
}

func TestLongitudinalIsDeterministic(t *testing.T) {
	wave := NewPlaneWave(testPulse())
	for step := uint32(0); step < 50; step++ {
		assert.Equal(t, wave.Longitudinal(step), wave.Longitudinal(step))
	}
}

// runTime == endUpramp is the plateau boundary: correction is 0 and the
// oscillation argument is exactly the initial phase, so E_x = sin(0) = 0.
func TestFieldAtUprampBoundary(t *testing.T) {
	wave := NewPlaneWave(testPulse())

	envelope, correction := wave.envelopeAt(10)
	assert.Equal(t, 1.0, envelope)
	assert.Equal(t, 0.0, correction)

	sample := wave.Longitudinal(10)
	assert.Equal(t, 0.0, sample.E.X)
}

// Deep in the up ramp the envelope is attenuated and the correction term
// carries the field: at runTime = 0 the oscillation argument is -25*pi, so
// the sine vanishes and the field reduces to envelope * cos * correction.
func TestFieldDeepInUpramp(t *testing.T) {
	wave := NewPlaneWave(testPulse())

	envelope, correction := wave.envelopeAt(0)
	assert.Less(t, envelope, 1.0)
	assert.NotZero(t, correction)
	assert.InDelta(t, math.Exp(-0.25), envelope, 1e-12)
	assert.InDelta(t, -0.05, correction, 1e-12)

	sample := wave.Longitudinal(0)
	assert.InDelta(t, math.Exp(-0.25)*0.05, sample.E.X, 1e-6)
}

// The correction term exists to keep the time integral of the field near
// zero. With a pure Gaussian envelope (no plateau) the discrete integral
// over the whole pulse must be small against the pulse scale E_0 * tau.
func TestFieldIntegratesToNearZero(t *testing.T) {
	pulse := testPulse()
	pulse.RampInit = 16 // endUpramp = 80, tails negligible at the window edges
	pulse.TimeStep = 0.01
	wave := NewPlaneWave(pulse)

	integral := 0.0
	for step := uint32(0); step <= 16000; step++ {
		integral += wave.Longitudinal(step).E.X * pulse.TimeStep
	}

	pulseScale := pulse.Amplitude * pulse.PulseLength
	assert.Less(t, math.Abs(integral)/pulseScale, 1e-3)
}

func TestHugeStepSaturatesToZero(t *testing.T) {
	pulse := testPulse()
	pulse.TimeStep = 1e6
	wave := NewPlaneWave(pulse)

	sample := wave.Longitudinal(math.MaxUint32)
	assert.Equal(t, FieldSample{}, sample)
}

func TestTransversalIsPassThrough(t *testing.T) {
	wave := NewPlaneWave(testPulse())
	elong := geometry.Vec3{X: 0.25, Z: -0.75}

	assert.Equal(t, elong, wave.Transversal(elong, 0, 0))
	assert.Equal(t, elong, wave.Transversal(elong, -3.5, 120))
}
