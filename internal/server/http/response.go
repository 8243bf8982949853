package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/useraccounts/internal/common"
)

// envelope is the body of every API response. Data is either the payload or
// a human-readable message.
type envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Status: status, Data: data})
}

// errorStatus maps a service error to its HTTP status and client message.
// Internal details never reach the client.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusBadRequest, common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrNoSession):
		return http.StatusNotFound, common.ErrNoSession.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusBadRequest, common.ErrorUnauthorized.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, msg)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json", common.ErrValidation)
	}
	return nil
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthTokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthTokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// authToken returns the AuthToken cookie value and whether the cookie was
// sent at all.
func authToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(common.AuthTokenCookieName)
	if err != nil {
		return "", false
	}
	return c.Value, true
}
