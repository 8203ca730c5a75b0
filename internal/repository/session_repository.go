package repository

import (
	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/store"
)

// SessionRepository persists the single active session under its own key so a
// restart can rehydrate the logged-in user.
type SessionRepository struct {
	store  store.Store
	logger logger.Logger
}

func NewSessionRepository(store store.Store, logger logger.Logger) domain.SessionRepository {
	return &SessionRepository{
		store:  store,
		logger: logger,
	}
}

func (r *SessionRepository) Get() (*domain.Session, error) {
	var session domain.Session
	found, err := r.store.Get(KeyCurrentUser, &session)
	if err != nil {
		r.logger.Error("Oturum okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, domain.NewStorageError("oturum okunamadı", err)
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (r *SessionRepository) Save(session *domain.Session) error {
	if err := r.store.Set(KeyCurrentUser, session); err != nil {
		r.logger.Error("Oturum kaydedilemedi", map[string]interface{}{"userId": session.ID, "error": err.Error()})
		return domain.NewStorageError("oturum kaydedilemedi", err)
	}
	return nil
}

func (r *SessionRepository) Clear() error {
	if err := r.store.Remove(KeyCurrentUser); err != nil {
		r.logger.Error("Oturum silinemedi", map[string]interface{}{"error": err.Error()})
		return domain.NewStorageError("oturum silinemedi", err)
	}
	return nil
}
