// Package handlers provides the HTTP handlers for the JSON API. Handlers
// depend on the inbound ports, decode and validate request bodies, and map
// application errors to HTTP responses.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v2/internal/infrastructure/http/middleware"
	"github.com/platewise/v2/pkg/errors"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewInternalError("An unexpected error occurred")
	}

	response := errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context()))
	respondJSON(w, appErr.StatusCode(), response)
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("Request body must be valid JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// authedUser extracts the authenticated user ID placed by the auth
// middleware. Routes calling this are always mounted behind it.
func authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, r, errors.NewUnauthorizedError("Authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID route parameter.
func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError(param + " must be a valid UUID")
	}
	return id, nil
}

func logHandlerError(logger *zap.Logger, operation string, err error) {
	if errors.GetCode(err) == errors.CodeInternal || errors.GetCode(err) == errors.CodeDatabaseError {
		logger.Error("Handler operation failed", zap.String("operation", operation), zap.Error(err))
	}
}
