package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/architeacher/monitoring/internal/domain/model"
	"github.com/architeacher/monitoring/pkg/logger"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeValidation    = "VALIDATION_ERROR"
	codeNotFound      = "NOT_FOUND"
	codeInternalError = "INTERNAL_ERROR"
	codeInvalidID     = "INVALID_ID"
	codeInvalidJSON   = "INVALID_JSON"

	msgInternalError      = "internal server error"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDeviceID    = "invalid device ID"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// respondDomainError is the single boundary translator between domain
// failures and HTTP responses. Everything that escapes a handler funnels
// through here: validation errors map to 400, missing resources to 404,
// and anything else (storage included) to an opaque 500. The error is
// logged before responding; the body carries a message only.
func respondDomainError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	reqLogger := log.WithContext(r.Context())

	var validationErrors *model.ValidationErrors

	switch {
	case errors.As(err, &validationErrors):
		reqLogger.Warn().Err(err).Msg("request validation failed")
		writeErrorResponse(w, http.StatusBadRequest, codeValidation, validationErrors.Error())
	case errors.Is(err, model.ErrSessionsNotFound), errors.Is(err, model.ErrDeviceNotFound):
		reqLogger.Warn().Err(err).Msg("resource not found")
		writeErrorResponse(w, http.StatusNotFound, codeNotFound, err.Error())
	default:
		reqLogger.Error().Err(err).Msg("request failed")
		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
	}
}
