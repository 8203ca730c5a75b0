package api

import (
	"net/http"
	"strconv"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type SearchHandler struct {
	service domain.SearchService
	logger  logger.Logger
}

func NewSearchHandler(service domain.SearchService, logger logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// Search applies the filter pipeline. Missing parameters fall back to the
// defaults of the filter state: every category, 0-10000 price window, newest
// first, first page.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria := domain.DefaultFilterCriteria()
	query := r.URL.Query()

	if category := query.Get("category"); category != "" {
		criteria.Category = domain.Category(category)
	}
	criteria.SearchText = query.Get("q")

	if priceMinStr := query.Get("price_min"); priceMinStr != "" {
		priceMin, err := strconv.ParseFloat(priceMinStr, 64)
		if err != nil || priceMin < 0 {
			h.logger.Error("Geçersiz price_min", map[string]interface{}{"price_min": priceMinStr})
			http.Error(w, "Geçersiz price_min", http.StatusBadRequest)
			return
		}
		criteria.PriceMin = priceMin
	}

	if priceMaxStr := query.Get("price_max"); priceMaxStr != "" {
		priceMax, err := strconv.ParseFloat(priceMaxStr, 64)
		if err != nil || priceMax < 0 {
			h.logger.Error("Geçersiz price_max", map[string]interface{}{"price_max": priceMaxStr})
			http.Error(w, "Geçersiz price_max", http.StatusBadRequest)
			return
		}
		criteria.PriceMax = priceMax
	}

	if capacityStr := query.Get("capacity_min"); capacityStr != "" {
		capacityMin, err := strconv.Atoi(capacityStr)
		if err != nil || capacityMin < 0 {
			h.logger.Error("Geçersiz capacity_min", map[string]interface{}{"capacity_min": capacityStr})
			http.Error(w, "Geçersiz capacity_min", http.StatusBadRequest)
			return
		}
		criteria.CapacityMin = capacityMin
	}

	if sortOrder := query.Get("sort"); sortOrder != "" {
		criteria.SortOrder = domain.SortOrder(sortOrder)
	}

	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			h.logger.Error("Geçersiz sayfa numarası", map[string]interface{}{"page": pageStr})
			http.Error(w, "Geçersiz sayfa numarası", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	result, err := h.service.Search(criteria, page)
	if err != nil {
		h.logger.Error("Arama başarısız", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SearchHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/search", h.Search)
}
