package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/domain"
	"github.com/kailas-cloud/folio/internal/logger"
)

// errorCode is the machine-readable code of an error response.
type errorCode string

const (
	codeBadRequest        errorCode = "bad_request"
	codeUnauthorized      errorCode = "unauthorized"
	codeForbidden         errorCode = "forbidden"
	codeRecordNotFound    errorCode = "record_not_found"
	codeUnknownSetting    errorCode = "unknown_setting"
	codeInvalidPreference errorCode = "invalid_preference"
	codeEmptyPlaylist     errorCode = "empty_playlist"
	codeTrackOutOfRange   errorCode = "track_out_of_range"
	codeInvalidRecord     errorCode = "invalid_record"
	codeInternalError     errorCode = "internal_error"
)

// errorResponse is the JSON body of every error.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// sentinelMapping binds a sentinel error to its HTTP status and code.
type sentinelMapping struct {
	err    error
	status int
	code   errorCode
}

var sentinelMappings = []sentinelMapping{
	{domain.ErrRecordNotFound, http.StatusNotFound, codeRecordNotFound},
	{domain.ErrUnknownSetting, http.StatusNotFound, codeUnknownSetting},
	{domain.ErrInvalidPreference, http.StatusBadRequest, codeInvalidPreference},
	{domain.ErrEmptyPlaylist, http.StatusNotFound, codeEmptyPlaylist},
	{domain.ErrTrackOutOfRange, http.StatusBadRequest, codeTrackOutOfRange},
	{domain.ErrInvalidRecord, http.StatusUnprocessableEntity, codeInvalidRecord},
}

func defaultErrorHandlers() []errorHandler {
	handlers := []errorHandler{invalidPreferenceHandler}
	for _, m := range sentinelMappings {
		handlers = append(handlers, sentinelHandler(m.err, m.status, m.code))
	}
	return handlers
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	for _, m := range sentinelMappings {
		if errors.Is(err, m.err) {
			return m.err.Error()
		}
	}
	return "internal error"
}

// statusOf maps an error to its HTTP status, 500 when no sentinel matches.
func statusOf(err error) int {
	for _, m := range sentinelMappings {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// invalidPreferenceHandler adds the offending setting and value to the response.
func invalidPreferenceHandler(w http.ResponseWriter, err error, msg string) bool {
	var ipe *domain.InvalidPreferenceError
	if !errors.As(err, &ipe) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"code":    codeInvalidPreference,
		"message": msg,
		"setting": ipe.Setting,
		"value":   ipe.Value,
	})
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
