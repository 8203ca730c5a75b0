package service

import (
	"context"
	"errors"

	"spaceflow/internal/domain"
	"spaceflow/pkg/cache"
	"spaceflow/pkg/logger"
)

// cachedListingService decorates a ListingService with a read-through cache.
// Reads fall back to the wrapped service when the cache is unreachable;
// writes invalidate every listing key.
type cachedListingService struct {
	inner    domain.ListingService
	cache    cache.Cache
	strategy cache.CacheStrategy
	logger   logger.Logger
}

func NewCachedListingService(inner domain.ListingService, c cache.Cache, strategy cache.CacheStrategy, logger logger.Logger) domain.ListingService {
	return &cachedListingService{
		inner:    inner,
		cache:    c,
		strategy: strategy,
		logger:   logger,
	}
}

func (s *cachedListingService) List() ([]*domain.Listing, error) {
	ctx := context.Background()

	var listings []*domain.Listing
	err := s.strategy.ReadThrough(ctx, cache.ListingsAllKey, &listings, func() (interface{}, error) {
		return s.inner.List()
	}, cache.ShortExpiration)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Warn("Önbellek devre dışı, doğrudan okunuyor", map[string]interface{}{"key": cache.ListingsAllKey, "error": err.Error()})
		return s.inner.List()
	}
	return listings, nil
}

func (s *cachedListingService) GetByID(id string) (*domain.Listing, error) {
	ctx := context.Background()
	key := cache.ListingCacheKey(id)

	var listing domain.Listing
	err := s.strategy.ReadThrough(ctx, key, &listing, func() (interface{}, error) {
		return s.inner.GetByID(id)
	}, cache.MediumExpiration)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Warn("Önbellek devre dışı, doğrudan okunuyor", map[string]interface{}{"key": key, "error": err.Error()})
		return s.inner.GetByID(id)
	}
	return &listing, nil
}

func (s *cachedListingService) GetByOwner(ownerID string) ([]*domain.Listing, error) {
	ctx := context.Background()
	key := cache.ListingOwnerCacheKey(ownerID)

	var listings []*domain.Listing
	err := s.strategy.ReadThrough(ctx, key, &listings, func() (interface{}, error) {
		return s.inner.GetByOwner(ownerID)
	}, cache.ShortExpiration)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Warn("Önbellek devre dışı, doğrudan okunuyor", map[string]interface{}{"key": key, "error": err.Error()})
		return s.inner.GetByOwner(ownerID)
	}
	return listings, nil
}

func (s *cachedListingService) Upsert(session *domain.Session, input *domain.ListingInput) (*domain.Listing, error) {
	listing, err := s.inner.Upsert(session, input)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return listing, nil
}

func (s *cachedListingService) Delete(session *domain.Session, id string) error {
	if err := s.inner.Delete(session, id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *cachedListingService) RecordView(id string) {
	s.inner.RecordView(id)
	s.invalidate()
}

// invalidate drops every listing key. "listing" also prefixes the collection
// key, so a single sweep covers ids, owner lists and the full list.
func (s *cachedListingService) invalidate() {
	ctx := context.Background()
	if err := s.cache.InvalidatePrefix(ctx, cache.ListingPrefix); err != nil {
		s.logger.Warn("Önbellek temizlenemedi", map[string]interface{}{"prefix": cache.ListingPrefix, "error": err.Error()})
	}
}

func isDomainError(err error) bool {
	var domainErr *domain.Error
	return errors.As(err, &domainErr)
}
