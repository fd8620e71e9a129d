package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req SubmitVoteRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit vote"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// falling back to defaultValue when it is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getQueryInt returns defaultValue for missing, malformed or non-positive values
func getQueryInt(r *http.Request, key string, defaultValue int) int {
	if valStr := r.URL.Query().Get(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil && val > 0 {
			return val
		}
	}
	return defaultValue
}

// GetVoterID reads the voter identity forwarded by the identity proxy.
// If ok is false, a 401 has already been written.
func GetVoterID(r *http.Request, w http.ResponseWriter) (string, bool) {
	voterID := strings.TrimSpace(r.Header.Get(HeaderVoterID))
	if voterID == "" {
		logger.FromContext(r.Context()).Warn(ErrMsgMissingVoterID, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingVoterID)
		return "", false
	}
	return voterID, true
}

// GetUUIDParam parses a chi URL parameter as a uuid.
// If ok is false, a 400 has already been written.
func GetUUIDParam(r *http.Request, w http.ResponseWriter, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, paramName))
		return uuid.Nil, false
	}
	return id, true
}

// LogRequestFields is a helper to log common request fields in a structured way.
//
// Example usage:
//
//	LogRequestFields(log, "voter_id", voterID, "question_id", req.QuestionID)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddLogFieldArgCount)
		return
	}
	log.Debug("Request details", keyvals...)
}
