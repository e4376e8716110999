// Package http provides HTTP utilities including chi-compatible error handling,
// the JSON response envelope and the middleware shared by all routes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
)

const internalErrorMessage = "Internal server error"

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Envelope is embedded in every success response body.
type Envelope struct {
	Success bool `json:"success"`
}

// OK returns a success envelope.
func OK() Envelope {
	return Envelope{Success: true}
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Responder turns handler errors into error envelopes and logs them.
type Responder struct {
	logger         *zap.Logger
	exposeInternal bool
}

// NewResponder creates a Responder. When exposeInternal is false the text of
// unexpected errors is replaced by a generic message.
func NewResponder(logger *zap.Logger, exposeInternal bool) *Responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{logger: logger, exposeInternal: exposeInternal}
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/register", rs.HandleError(handler.register))
func (rs *Responder) HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			rs.WriteError(w, r, err)
		}
	}
}

// WriteError writes the error envelope for err.
func (rs *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Message: internalErrorMessage}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		status = svcErr.StatusCode()
		resp.Message = svcErr.Message
		resp.Errors = svcErr.Errors
		if svcErr.Category == apperrors.CategoryGeneralError {
			resp.Message = rs.internalMessage(err)
		}
	} else {
		resp.Message = rs.internalMessage(err)
	}

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		rs.logger.Error("Request failed", fields...)
	} else {
		rs.logger.Warn("Request rejected", fields...)
	}

	WriteJSON(w, status, resp)
}

func (rs *Responder) internalMessage(err error) string {
	if rs.exposeInternal && err != nil {
		return err.Error()
	}
	return internalErrorMessage
}

// NotFound answers unknown routes with the error envelope.
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.WriteError(w, r, apperrors.ResourceNotFoundError(nil, "Route not found"))
}

// WriteJSON writes data as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
