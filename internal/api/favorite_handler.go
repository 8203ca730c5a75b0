package api

import (
	"encoding/json"
	"net/http"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type FavoriteHandler struct {
	service domain.FavoriteService
	auth    domain.AuthService
	logger  logger.Logger
}

func NewFavoriteHandler(service domain.FavoriteService, auth domain.AuthService, logger logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

type ToggleFavoriteRequest struct {
	ListingID string `json:"listingId"`
}

func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleFavoriteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	if req.ListingID == "" {
		h.logger.Error("listingId alanı eksik", map[string]interface{}{})
		http.Error(w, "listingId alanı eksik", http.StatusBadRequest)
		return
	}

	favorited, err := h.service.Toggle(h.auth.CurrentUser(), req.ListingID)
	if err != nil {
		h.logger.Warn("Favori değiştirilemedi", map[string]interface{}{"listingId": req.ListingID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"favorited": favorited})
}

func (h *FavoriteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.List(h.auth.CurrentUser())
	if err != nil {
		h.logger.Warn("Favoriler alınamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (h *FavoriteHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/favorites/toggle", h.Toggle)
	mux.HandleFunc("GET /api/favorites", h.GetAll)
}
