package api

import (
	"encoding/json"
	"net/http"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type ReviewHandler struct {
	service domain.ReviewService
	auth    domain.AuthService
	logger  logger.Logger
}

func NewReviewHandler(service domain.ReviewService, auth domain.AuthService, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

type AddReviewRequest struct {
	ListingID string `json:"listingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequest

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

	review, err := h.service.Add(h.auth.CurrentUser(), req.ListingID, req.Rating, req.Comment)
	if err != nil {
		h.logger.Warn("Değerlendirme eklenemedi", map[string]interface{}{"listingId": req.ListingID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) GetByListing(w http.ResponseWriter, r *http.Request) {
	listingID := r.URL.Query().Get("listing_id")
	if listingID == "" {
		h.logger.Error("listing_id parametresi eksik", map[string]interface{}{})
		http.Error(w, "listing_id parametresi eksik", http.StatusBadRequest)
		return
	}

	reviews, err := h.service.List(listingID)
	if err != nil {
		h.logger.Warn("Değerlendirmeler alınamadı", map[string]interface{}{"listingId": listingID, "error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/reviews", h.Add)
	mux.HandleFunc("GET /api/reviews", h.GetByListing)
}
