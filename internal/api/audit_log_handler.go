package api

import (
	"net/http"
	"strconv"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
)

type AuditLogHandler struct {
	repo   domain.AuditLogRepository
	logger logger.Logger
}

func NewAuditLogHandler(repo domain.AuditLogRepository, logger logger.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *AuditLogHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			h.logger.Error("Geçersiz limit", map[string]interface{}{"limit": limitStr})
			http.Error(w, "Geçersiz limit. 1-100 arası bir değer olmalı", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	logs, err := h.repo.FindRecent(limit)
	if err != nil {
		h.logger.Error("Denetim günlükleri alınamadı", map[string]interface{}{"error": err.Error()})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *AuditLogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/audit-logs", h.GetRecent)
}
