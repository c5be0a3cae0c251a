package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
)

type errorBody struct {
	Errors  string   `json:"errors"`
	Details []string `json:"details,omitempty"`
}

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ErrorWriter renders err as {"errors": ..., "details": [...]}. Internal
// errors are logged and hidden from the client.
func ErrorWriter(logger *zap.Logger) auth.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := StatusFor(err)
		body := errorBody{Errors: err.Error()}

		var validationError *model.ValidationError
		if errors.As(err, &validationError) {
			body.Errors = model.ErrValidation.Error()
			body.Details = validationError.Violations()
		}

		if status == http.StatusInternalServerError {
			logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))

			body = errorBody{Errors: http.StatusText(status)}
		}

		writeJSON(w, status, body)
	}
}
