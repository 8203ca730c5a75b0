package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
)

const (
	ListingPrefix   = "listing"
	ListingByIDKey  = "listing:id:%s"
	ListingsAllKey  = "listings:all"
	ListingOwnerKey = "listing:owner:%s"

	// Listings change on every view increment, keep the windows short.
	ShortExpiration  = 1 * time.Minute
	MediumExpiration = 5 * time.Minute
)

func ListingCacheKey(id string) string {
	return fmt.Sprintf(ListingByIDKey, id)
}

func ListingOwnerCacheKey(ownerID string) string {
	return fmt.Sprintf(ListingOwnerKey, ownerID)
}

// CacheStrategy is the read-through pattern the cached listing service uses.
type CacheStrategy interface {
	ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error
}

type CacheManager struct {
	cache  Cache
	logger logger.Logger
}

func NewCacheManager(cache Cache, logger logger.Logger) CacheStrategy {
	return &CacheManager{
		cache:  cache,
		logger: logger,
	}
}

// ReadThrough checks the cache first; on a miss it fetches from the source,
// stores the result and fills dest with it.
func (cm *CacheManager) ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	err := cm.cache.Get(ctx, key, dest)
	if err == nil {
		metrics.RecordCacheHit()
		return nil
	}

	if err != ErrCacheMiss {
		cm.logger.Error("Cache okuma hatası", map[string]interface{}{"key": key, "error": err.Error()})
		return err
	}

	metrics.RecordCacheMiss()

	value, err := fetchFunc()
	if err != nil {
		return err
	}

	if setErr := cm.cache.Set(ctx, key, value, expiration); setErr != nil {
		cm.logger.Error("Cache yazma hatası", map[string]interface{}{"key": key, "error": setErr.Error()})
	}

	// Round-trip through JSON to fill dest with the fetched value.
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
