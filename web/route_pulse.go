package web

import (
	"net/http"

	apperrors "github.com/tliangyin/picongpu/errors"
	"github.com/tliangyin/picongpu/geometry"
	"github.com/tliangyin/picongpu/setup"
)

type pulseRequest struct {
	ProfileName string      `json:"profileName"`
	Pulse       setup.Pulse `json:"pulse"`
	StartStep   uint32      `json:"startStep"`
	StepCount   uint32      `json:"stepCount"`
}

type sampleResponse struct {
	Step  uint32        `json:"step"`
	Time  float64       `json:"time"`
	E     geometry.Vec3 `json:"e"`
	Phase float64       `json:"phase"`
}

func (h *handler) validatePulseHandler(w http.ResponseWriter, r *http.Request) {
	var pulse setup.Pulse
	if err := decodeJSONRequest(r, &pulse); err != nil {
		handleRequestErr(w, apperrors.ErrMalformed)
		return
	}

	validateErr := pulse.Validate()
	if validateErr == nil {
		_ = writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	fieldErrors, assertOk := validateErr.(setup.E)
	if !assertOk {
		handleRequestErr(w, apperrors.ErrInternalServerError)
		return
	}
	formError := apperrors.FormError{}
	for field, fieldErr := range fieldErrors {
		formError[field] = fieldErr.Error()
	}
	_ = writeJSONResponse(w, http.StatusBadRequest, formError)
}

func (h *handler) pulseSamplesHandler(w http.ResponseWriter, r *http.Request) {
	var request pulseRequest
	if err := decodeJSONRequest(r, &request); err != nil {
		handleRequestErr(w, apperrors.ErrMalformed)
		return
	}

	samples, samplesErr := h.runner.Samples(
		request.ProfileName, request.Pulse, request.StartStep, request.StepCount,
	)
	if samplesErr != nil {
		log.Warnf("pulse samples request failed [%s]", samplesErr.Error())
		handleRequestErr(w, samplesErr)
		return
	}

	response := make([]sampleResponse, len(samples))
	for i, sample := range samples {
		step := request.StartStep + uint32(i)
		response[i] = sampleResponse{
			Step:  step,
			Time:  request.Pulse.TimeStep * float64(step),
			E:     sample.E,
			Phase: sample.Phase,
		}
	}
	_ = writeJSONResponse(w, http.StatusOK, response)
}

func (h *handler) pulseFilesHandler(w http.ResponseWriter, r *http.Request) {
	var request pulseRequest
	if err := decodeJSONRequest(r, &request); err != nil {
		handleRequestErr(w, apperrors.ErrMalformed)
		return
	}

	files, runErr := h.runner.Run(
		request.ProfileName, request.Pulse, request.StartStep, request.StepCount,
	)
	if runErr != nil {
		log.Warnf("pulse files request failed [%s]", runErr.Error())
		handleRequestErr(w, runErr)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, files)
}
