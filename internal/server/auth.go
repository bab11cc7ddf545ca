package server

import (
	"encoding/json"
	"net/http"

	"github.com/mmynk/pulse/internal/auth"
)

// AuthHandler serves registration and login, issuing JWTs on success.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, jwtManager: jwtManager}
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.authenticator.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userResponse{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userResponse{ID: user.ID, Email: user.Email, DisplayName: user.DisplayName},
	})
}
