package api

import (
	"encoding/json"
	"net/http"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type AuthHandler struct {
	service domain.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service domain.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.logger.Warn("Kayıt başarısız", map[string]interface{}{"email": req.Email, "error": err.Error()})
		writeError(w, err)
		return
	}

	// Registration does not log the user in; respond with the digest-free
	// projection only.
	writeJSON(w, http.StatusCreated, domain.NewSession(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.logger.Warn("Giriş başarısız", map[string]interface{}{"email": req.Email, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		h.logger.Error("Çıkış hatası", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	session := h.service.CurrentUser()
	if session == nil {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/me", h.CurrentUser)
}
