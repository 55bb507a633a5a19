package http

import (
	"encoding/json"
	"net/http"

	"github.com/edgcastillo/saveddit/internal/common"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type linkRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Registration request", "username", req.Username)

	user, err := s.users.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "registration failed", "error", err.Error())
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(w, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleLinkCredentials(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "unauthorized")
		return
	}

	var req linkRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(w, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMappedError(w, common.ErrValidation)
		return
	}

	if err := s.reddit.Link(r.Context(), user, req.Username, req.Password); err != nil {
		s.logger.Warn(r.Context(), "link failed", "user", user.Username, "error", err.Error())
		writeMappedError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Account linked", "user", user.Username)
	writeJSON(w, http.StatusOK, map[string]string{"status": "linked"})
}

func (s *Server) handleSavedItems(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "unauthorized")
		return
	}

	items, err := s.reddit.SavedItems(r.Context(), user)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrValidation
	}
	return nil
}
