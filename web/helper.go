package web

import (
	"encoding/json"
	"net/http"
)

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func decodeJSONRequest(r *http.Request, unpackObject interface{}) error {
	return json.NewDecoder(r.Body).Decode(unpackObject)
}

func handleRequestErr(w http.ResponseWriter, err error) {
	_ = writeJSONResponse(w, http.StatusBadRequest, map[string]string{
		"error": err.Error(),
	})
}
