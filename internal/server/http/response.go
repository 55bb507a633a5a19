package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edgcastillo/saveddit/internal/common"
)

type apiError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// writeMappedError translates a taxonomy error into a client-facing status
// and generic message. Anything unrecognized collapses to a 500 so raw
// internal detail never crosses the boundary.
func writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request")
	case errors.Is(err, common.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "DUPLICATE_USER", "email or username already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "unauthorized")
	case errors.Is(err, common.ErrInvalidRedditCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_REDDIT_CREDENTIALS", "reddit rejected the credentials")
	case errors.Is(err, common.ErrNotLinked):
		writeError(w, http.StatusBadRequest, "NOT_LINKED", "no reddit account linked")
	case errors.Is(err, common.ErrDecryptionFailed):
		writeError(w, http.StatusBadRequest, "DECRYPTION_ERROR", "stored credentials are unreadable, please relink")
	case errors.Is(err, common.ErrExternalService):
		writeError(w, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", "reddit is unreachable, try again later")
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
