package providers

import (
	"context"
	"log"

	"github.com/moveguider/moveguider/internal/wellness"
)

// Cache is the contract the in-memory store satisfies for resolved cities.
type Cache interface {
	Save(name string, city wellness.CityContext)
	Get(name string) (wellness.CityContext, error)
}

// CachingResolver serves city contexts from the cache and falls back to the
// resolver on a miss. The scheduler keeps favorite cities warm through
// Refresh, so interactive dashboard requests usually skip the network.
type CachingResolver struct {
	resolver *Resolver
	cache    Cache
}

func NewCachingResolver(resolver *Resolver, cache Cache) *CachingResolver {
	return &CachingResolver{resolver: resolver, cache: cache}
}

// City returns a fresh city context, consulting the cache first.
func (c *CachingResolver) City(ctx context.Context, name string) (wellness.CityContext, error) {
	if cached, err := c.cache.Get(name); err == nil {
		return cached, nil
	}
	return c.Refresh(ctx, name)
}

// Refresh resolves the city, bypassing the cache, and stores the result.
func (c *CachingResolver) Refresh(ctx context.Context, name string) (wellness.CityContext, error) {
	city, err := c.resolver.ResolveCity(ctx, name)
	if err != nil {
		return wellness.CityContext{}, err
	}
	c.cache.Save(name, city)
	log.Printf("resolved %q -> %s (%s)", name, city.Name, city.Timezone)
	return city, nil
}
