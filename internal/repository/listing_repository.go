package repository

import (
	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/store"
)

type ListingRepository struct {
	store  store.Store
	logger logger.Logger
}

func NewListingRepository(store store.Store, logger logger.Logger) domain.ListingRepository {
	return &ListingRepository{
		store:  store,
		logger: logger,
	}
}

func (r *ListingRepository) FindAll() ([]*domain.Listing, error) {
	var listings []*domain.Listing
	found, err := r.store.Get(KeyListings, &listings)
	if err != nil {
		r.logger.Error("İlanlar okunamadı", map[string]interface{}{"error": err.Error()})
		return nil, domain.NewStorageError("ilanlar okunamadı", err)
	}
	if !found {
		return []*domain.Listing{}, nil
	}
	return listings, nil
}

func (r *ListingRepository) FindByID(id string) (*domain.Listing, error) {
	listings, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	for _, listing := range listings {
		if listing.ID == id {
			return listing, nil
		}
	}
	return nil, nil
}

func (r *ListingRepository) FindByOwner(ownerID string) ([]*domain.Listing, error) {
	listings, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	owned := []*domain.Listing{}
	for _, listing := range listings {
		if listing.OwnerID == ownerID {
			owned = append(owned, listing)
		}
	}
	return owned, nil
}

func (r *ListingRepository) Append(listing *domain.Listing) error {
	listings, err := r.FindAll()
	if err != nil {
		return err
	}

	listings = append(listings, listing)
	return r.SaveAll(listings)
}

func (r *ListingRepository) Replace(listing *domain.Listing) error {
	listings, err := r.FindAll()
	if err != nil {
		return err
	}

	for i, existing := range listings {
		if existing.ID == listing.ID {
			listings[i] = listing
			return r.SaveAll(listings)
		}
	}

	return domain.ErrListingNotFound
}

func (r *ListingRepository) Remove(id string) error {
	listings, err := r.FindAll()
	if err != nil {
		return err
	}

	remaining := make([]*domain.Listing, 0, len(listings))
	removed := false
	for _, listing := range listings {
		if listing.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, listing)
	}

	if !removed {
		return domain.ErrListingNotFound
	}

	return r.SaveAll(remaining)
}

func (r *ListingRepository) SaveAll(listings []*domain.Listing) error {
	if err := r.store.Set(KeyListings, listings); err != nil {
		r.logger.Error("İlanlar kaydedilemedi", map[string]interface{}{"count": len(listings), "error": err.Error()})
		return domain.NewStorageError("ilanlar kaydedilemedi", err)
	}
	return nil
}
