package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tliangyin/picongpu/setup"
)

func TestRunnerListsPlaneWaveProfile(t *testing.T) {
	runner := NewRunner()
	assert.Equal(t, []string{"planeWave"}, runner.AvailableProfileNames())
}

func TestRunnerRejectsUnknownProfile(t *testing.T) {
	runner := NewRunner()
	_, err := runner.Run("gaussianBeam", unitPulse(), 0, 10)
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestRunnerRejectsInvalidPulse(t *testing.T) {
	runner := NewRunner()
	pulse := unitPulse()
	pulse.WaveLength = -1

	_, err := runner.Run("planeWave", pulse, 0, 10)
	require.Error(t, err)

	fieldErrors, assertOk := err.(setup.E)
	require.True(t, assertOk)
	assert.Contains(t, fieldErrors, "waveLength")
}

func TestRunnerRejectsEmptyAndOversizedRanges(t *testing.T) {
	runner := NewRunner()

	_, err := runner.Run("planeWave", unitPulse(), 0, 0)
	assert.Error(t, err)

	_, err = runner.Run("planeWave", unitPulse(), 0, MaxStepCount+1)
	assert.Error(t, err)
}

func TestRunnerProducesResultFiles(t *testing.T) {
	runner := NewRunner()

	files, err := runner.Run("planeWave", unitPulse(), 5, 20)
	require.NoError(t, err)
	require.Contains(t, files, "pulse.dat")

	samples, samplesErr := runner.Samples("planeWave", unitPulse(), 5, 20)
	require.NoError(t, samplesErr)
	assert.Len(t, samples, 20)
	assert.Equal(t, files, Serialize(unitPulse(), 5, samples))
}
