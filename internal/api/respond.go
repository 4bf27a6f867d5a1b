package api

import (
	"encoding/json"
	"errors"
	"net/http"

	httperr "skilleat/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperr.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, ErrorResponse{Message: httpErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}
