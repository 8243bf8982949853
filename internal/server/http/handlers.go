package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/server/services"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	account, token, err := s.users.Register(r.Context(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, account)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	account, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, account)
}

// handleLogout clears the cookie whenever one was sent, even if the token
// turns out to be unknown.
func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := authToken(r)
	if ok {
		clearAuthCookie(w)
	}

	if err := s.users.Logout(r.Context(), token); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, "logged out")
}

// handleTokenRelogin restores a session from the cookie. A rejected token is
// cleared so the browser stops sending it.
func (s *HTTPServer) handleTokenRelogin(w http.ResponseWriter, r *http.Request) {
	token, _ := authToken(r)

	account, err := s.users.Reauthenticate(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			clearAuthCookie(w)
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}
