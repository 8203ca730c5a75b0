package repository

import (
	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/store"
)

type UserRepository struct {
	store  store.Store
	logger logger.Logger
}

func NewUserRepository(store store.Store, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		store:  store,
		logger: logger,
	}
}

func (r *UserRepository) FindAll() ([]*domain.User, error) {
	var users []*domain.User
	found, err := r.store.Get(KeyUsers, &users)
	if err != nil {
		r.logger.Error("Kullanıcılar okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, domain.NewStorageError("kullanıcılar okunamadı", err)
	}
	if !found {
		return []*domain.User{}, nil
	}
	return users, nil
}

func (r *UserRepository) FindByID(id string) (*domain.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Append(user *domain.User) error {
	users, err := r.FindAll()
	if err != nil {
		return err
	}

	users = append(users, user)
	return r.SaveAll(users)
}

func (r *UserRepository) Update(user *domain.User) error {
	users, err := r.FindAll()
	if err != nil {
		return err
	}

	for i, existing := range users {
		if existing.ID == user.ID {
			users[i] = user
			return r.SaveAll(users)
		}
	}

	return domain.ErrUserNotFound
}

func (r *UserRepository) SaveAll(users []*domain.User) error {
	if err := r.store.Set(KeyUsers, users); err != nil {
		r.logger.Error("Kullanıcılar kaydedilemedi", map[string]interface{}{"count": len(users), "error": err.Error()})
		return domain.NewStorageError("kullanıcılar kaydedilemedi", err)
	}
	return nil
}
