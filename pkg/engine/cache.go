package engine

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
)

// ModelCache is an optional read-through cache for derived demand
// models, keyed by (product, store). Safe for concurrent reads and
// writes; the owner decides when to invalidate. Admission is
// best-effort: a Set may be dropped under pressure, which only costs a
// provider round trip on the next lookup.
type ModelCache struct {
	cache *ristretto.Cache[string, domain.DemandModel]
}

// NewModelCache creates a cache sized for roughly maxEntries models.
func NewModelCache(maxEntries int64) (*ModelCache, error) {
	if maxEntries <= 0 {
		return nil, domain.NewValidationError("max_entries", "must be positive")
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, domain.DemandModel]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating model cache: %w", err)
	}
	return &ModelCache{cache: c}, nil
}

func cacheKey(productID, storeID int) string {
	return fmt.Sprintf("%d:%d", productID, storeID)
}

// Get returns the cached model for a pair, if present.
func (mc *ModelCache) Get(productID, storeID int) (domain.DemandModel, bool) {
	return mc.cache.Get(cacheKey(productID, storeID))
}

// Put stores a model for a pair. Each model costs one cache unit.
func (mc *ModelCache) Put(model domain.DemandModel) {
	mc.cache.Set(cacheKey(model.ProductID, model.StoreID), model, 1)
}

// Invalidate drops the cached model for one pair.
func (mc *ModelCache) Invalidate(productID, storeID int) {
	mc.cache.Del(cacheKey(productID, storeID))
}

// Clear drops every cached model.
func (mc *ModelCache) Clear() {
	mc.cache.Clear()
}

// Wait blocks until pending writes are applied. Intended for tests and
// bulk preloading, not the request path.
func (mc *ModelCache) Wait() {
	mc.cache.Wait()
}

// Close releases the cache's background resources.
func (mc *ModelCache) Close() {
	mc.cache.Close()
}
