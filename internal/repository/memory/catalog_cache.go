package memory

import (
	"time"

	"photofolio-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CatalogCache keeps plan grants and the feature catalog in process memory
// so entitlement resolution does not hit the database for every request.
// Entries are invalidated on admin writes (see the catalog events bus) and
// expire on their own as a backstop.
type CatalogCache struct {
	cache *cache.Cache
}

const featureCatalogKey = "features:all"

func NewCatalogCache() *CatalogCache {
	// Short default expiration; admin writes invalidate eagerly, the TTL
	// only covers writes that bypass the API (manual SQL, migrations).
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &CatalogCache{
		cache: c,
	}
}

func (c *CatalogCache) GetGrants(planKey string) ([]*entity.PlanFeature, bool) {
	if x, found := c.cache.Get("grants:" + planKey); found {
		return x.([]*entity.PlanFeature), true
	}
	return nil, false
}

func (c *CatalogCache) SetGrants(planKey string, grants []*entity.PlanFeature) {
	c.cache.Set("grants:"+planKey, grants, cache.DefaultExpiration)
}

func (c *CatalogCache) GetFeatures() ([]*entity.Feature, bool) {
	if x, found := c.cache.Get(featureCatalogKey); found {
		return x.([]*entity.Feature), true
	}
	return nil, false
}

func (c *CatalogCache) SetFeatures(features []*entity.Feature) {
	c.cache.Set(featureCatalogKey, features, cache.DefaultExpiration)
}

// Invalidate drops everything. Plan and feature writes are rare enough
// that a full flush is simpler than tracking which plans a feature edit
// touches.
func (c *CatalogCache) Invalidate() {
	c.cache.Flush()
}
