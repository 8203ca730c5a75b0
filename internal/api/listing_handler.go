package api

import (
	"encoding/json"
	"net/http"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type ListingHandler struct {
	service domain.ListingService
	auth    domain.AuthService
	logger  logger.Logger
}

func NewListingHandler(service domain.ListingService, auth domain.AuthService, logger logger.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

func (h *ListingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.List()
	if err != nil {
		h.logger.Error("İlanlar alınamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

// GetByID serves the detail view; every hit bumps the view counter.
func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.logger.Error("ID parametresi eksik", map[string]interface{}{})
		http.Error(w, "ID parametresi eksik", http.StatusBadRequest)
		return
	}

	listing, err := h.service.GetByID(id)
	if err != nil {
		h.logger.Warn("İlan bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	h.service.RecordView(id)

	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	session := h.auth.CurrentUser()
	if session == nil {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	listings, err := h.service.GetByOwner(session.ID)
	if err != nil {
		h.logger.Error("Kullanıcının ilanları alınamadı", map[string]interface{}{"userId": session.ID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input domain.ListingInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("İstek gövdesi decode edilemedi", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Geçersiz istek gövdesi", http.StatusBadRequest)
		return
	}

	creating := input.ID == ""

	listing, err := h.service.Upsert(h.auth.CurrentUser(), &input)
	if err != nil {
		h.logger.Warn("İlan kaydedilemedi", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	writeJSON(w, status, listing)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.logger.Error("ID parametresi eksik", map[string]interface{}{})
		http.Error(w, "ID parametresi eksik", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(h.auth.CurrentUser(), id); err != nil {
		h.logger.Warn("İlan silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/listings", h.GetAll)
	mux.HandleFunc("GET /api/listings/detail", h.GetByID)
	mux.HandleFunc("GET /api/listings/mine", h.GetMine)
	mux.HandleFunc("POST /api/listings", h.Upsert)
	mux.HandleFunc("DELETE /api/listings", h.Delete)
}
