package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"productivity-tracker/internal/lib/logger/sl"
)

type (
	ErrorResponse struct {
		Error ErrorDetail `json:"error"`
	}

	ErrorDetail struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

const (
	codeInvalidDays   = "INVALID_DAYS"
	codeReloadFailed  = "RELOAD_FAILED"
	codeInternalError = "INTERNAL_ERROR"
)

// responder carries the JSON writers shared by every handler.
type responder struct {
	log *slog.Logger
}

func (h responder) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode JSON response", sl.Err(err))
	}
}

func (h responder) writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
