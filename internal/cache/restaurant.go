// internal/cache/restaurant.go
package cache

import (
	"time"

	"restaurant-finder/internal/common/metrics"
	"restaurant-finder/internal/models"
)

// Namespace names one of the two independent key spaces.
type Namespace string

const (
	NamespaceSearch  Namespace = "search"
	NamespaceDetails Namespace = "details"
)

// RestaurantCache keeps search results by query and restaurant records by place_id.
// The two namespaces never share keys and expire independently.
type RestaurantCache struct {
	search  *TTLCache[[]models.SearchResult]
	details *TTLCache[*models.Restaurant]
}

func NewRestaurantCache(ttl time.Duration, now func() time.Time) *RestaurantCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RestaurantCache{
		search:  NewTTLCache[[]models.SearchResult](ttl, now),
		details: NewTTLCache[*models.Restaurant](ttl, now),
	}
}

func (c *RestaurantCache) SearchResults(query string) ([]models.SearchResult, bool) {
	results, ok := c.search.Get(query)
	recordLookup(NamespaceSearch, ok)
	return results, ok
}

func (c *RestaurantCache) SetSearchResults(query string, results []models.SearchResult) {
	c.search.Set(query, results)
}

func (c *RestaurantCache) Restaurant(placeID string) (*models.Restaurant, bool) {
	r, ok := c.details.Get(placeID)
	recordLookup(NamespaceDetails, ok)
	return r, ok
}

func (c *RestaurantCache) SetRestaurant(placeID string, r *models.Restaurant) {
	c.details.Set(placeID, r)
}

// Clear wipes both namespaces.
func (c *RestaurantCache) Clear() {
	c.search.Clear()
	c.details.Clear()
}

// Len reports the number of stored entries in ns.
func (c *RestaurantCache) Len(ns Namespace) int {
	switch ns {
	case NamespaceSearch:
		return c.search.Len()
	case NamespaceDetails:
		return c.details.Len()
	}
	return 0
}

func recordLookup(ns Namespace, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheLookups.WithLabelValues(string(ns), result).Inc()
}
