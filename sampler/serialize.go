package sampler

import (
	"strings"

	conf "github.com/tliangyin/picongpu/config"
	"github.com/tliangyin/picongpu/format"
	"github.com/tliangyin/picongpu/laser"
	"github.com/tliangyin/picongpu/setup"
)

var log = conf.NamedLogger("sampler")

const pulseDatFile = "pulse.dat"

const (
	stepColumnWidth  = 8
	valueColumnWidth = 17
)

// Serialize renders samples into result files keyed by file name.
//
// pulse.dat rows are: step, run time, Ex, Ey, Ez in fixed width columns,
// one row per time step.
func Serialize(pulse setup.Pulse, startStep uint32, samples []laser.FieldSample) map[string]string {
	log.Debugf("serializing %d samples from step %d", len(samples), startStep)

	var sb strings.Builder
	for i, sample := range samples {
		step := startStep + uint32(i)
		sb.WriteString(format.IntToFixedWidthString(int64(step), stepColumnWidth))
		sb.WriteString(format.FloatToFixedWidthString(pulse.TimeStep*float64(step), valueColumnWidth))
		sb.WriteString(format.FloatToFixedWidthString(sample.E.X, valueColumnWidth))
		sb.WriteString(format.FloatToFixedWidthString(sample.E.Y, valueColumnWidth))
		sb.WriteString(format.FloatToFixedWidthString(sample.E.Z, valueColumnWidth))
		sb.WriteString("\n")
	}

	return map[string]string{
		pulseDatFile: sb.String(),
	}
}
