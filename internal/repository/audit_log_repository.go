package repository

import (
	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/store"
)

type AuditLogRepository struct {
	store  store.Store
	logger logger.Logger
}

func NewAuditLogRepository(store store.Store, logger logger.Logger) domain.AuditLogRepository {
	return &AuditLogRepository{
		store:  store,
		logger: logger,
	}
}

func (r *AuditLogRepository) Append(entry *domain.AuditLog) error {
	var entries []*domain.AuditLog
	found, err := r.store.Get(KeyAuditLogs, &entries)
	if err != nil {
		r.logger.Error("Denetim kayıtları okunamadı", map[string]interface{}{"error": err.Error()})
		return domain.NewStorageError("denetim kayıtları okunamadı", err)
	}
	if !found {
		entries = []*domain.AuditLog{}
	}

	entries = append(entries, entry)

	if err := r.store.Set(KeyAuditLogs, entries); err != nil {
		r.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return domain.NewStorageError("denetim kaydı oluşturulamadı", err)
	}
	return nil
}

func (r *AuditLogRepository) FindRecent(limit int) ([]*domain.AuditLog, error) {
	var entries []*domain.AuditLog
	found, err := r.store.Get(KeyAuditLogs, &entries)
	if err != nil {
		r.logger.Error("Denetim kayıtları okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, domain.NewStorageError("denetim kayıtları okunamadı", err)
	}
	if !found {
		return []*domain.AuditLog{}, nil
	}

	// Newest last in storage, return newest first.
	recent := make([]*domain.AuditLog, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, entries[i])
	}
	return recent, nil
}
