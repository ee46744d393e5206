package controllers

import (
	"log/slog"
	"net/http"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/delivery/http/middleware"
)

// writeError writes err with its domain status and logs anything unexpected.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if helpers.WriteDomainError(w, err) {
		return
	}
	logger.ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"err", err,
	)
}

// requireUserID returns the authenticated caller or writes 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}
