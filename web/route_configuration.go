package web

import (
	"net/http"

	"github.com/tliangyin/picongpu/setup"
)

func (h *handler) getConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	var response struct {
		Polarizations []setup.PolarizationRecord `json:"polarizations"`
		LaserProfiles []string                   `json:"laserProfiles"`
		DefaultPulse  setup.Pulse                `json:"defaultPulse"`
	}

	response.Polarizations = setup.Polarizations()
	response.LaserProfiles = h.runner.AvailableProfileNames()
	response.DefaultPulse = setup.DefaultPulse

	_ = writeJSONResponse(w, http.StatusOK, response)
}
