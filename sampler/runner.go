// Package sampler evaluates laser profiles over time step ranges and
// serializes the samples for the field deposition side.
package sampler

import (
	"errors"
	"fmt"

	"github.com/tliangyin/picongpu/laser"
	"github.com/tliangyin/picongpu/setup"
)

// ErrProfileNotFound ...
var ErrProfileNotFound = errors.New("laser profile not found")

// MaxStepCount bounds a single evaluation request; the field solver asks
// for windows, never for whole runs at once.
const MaxStepCount = 1 << 20

type evaluator interface {
	Longitudinal(currentStep uint32) laser.FieldSample
}

type laserProfile interface {
	Name() string
	Evaluator(pulse setup.Pulse) evaluator
}

type planeWave struct{}

func (planeWave) Name() string { return "planeWave" }

func (planeWave) Evaluator(pulse setup.Pulse) evaluator {
	return laser.NewPlaneWave(pulse)
}

var supportedProfiles = []laserProfile{planeWave{}}

// Runner evaluates pulse requests against the registered laser profiles.
type Runner struct {
	profiles []laserProfile
}

// NewRunner constructor.
func NewRunner() Runner {
	return Runner{profiles: supportedProfiles}
}

// AvailableProfileNames ...
func (r Runner) AvailableProfileNames() []string {
	names := []string{}
	for _, profile := range r.profiles {
		names = append(names, profile.Name())
	}
	return names
}

// Samples evaluates stepCount samples of the named profile starting at
// startStep. The pulse is validated here; evaluators assume valid input.
func (r Runner) Samples(
	profileName string, pulse setup.Pulse, startStep, stepCount uint32,
) ([]laser.FieldSample, error) {
	profile, findErr := r.findProfile(profileName)
	if findErr != nil {
		return nil, findErr
	}
	if validateErr := pulse.Validate(); validateErr != nil {
		return nil, validateErr
	}
	if stepCount == 0 || stepCount > MaxStepCount {
		return nil, fmt.Errorf("step count should be between 1 and %d", MaxStepCount)
	}

	return Sample(profile.Evaluator(pulse), startStep, stepCount), nil
}

// Run evaluates stepCount samples of the named profile starting at
// startStep and returns the serialized result files.
func (r Runner) Run(
	profileName string, pulse setup.Pulse, startStep, stepCount uint32,
) (map[string]string, error) {
	samples, samplesErr := r.Samples(profileName, pulse, startStep, stepCount)
	if samplesErr != nil {
		return nil, samplesErr
	}
	return Serialize(pulse, startStep, samples), nil
}

func (r Runner) findProfile(name string) (laserProfile, error) {
	for _, profile := range r.profiles {
		if profile.Name() == name {
			return profile, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Sample evaluates stepCount consecutive samples starting at startStep.
func Sample(eval evaluator, startStep, stepCount uint32) []laser.FieldSample {
	samples := make([]laser.FieldSample, stepCount)
	for i := range samples {
		samples[i] = eval.Longitudinal(startStep + uint32(i))
	}
	return samples
}
