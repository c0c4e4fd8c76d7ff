// internal/places/client.go
package places

import (
	"context"
	"net/http"
	"strings"
	"time"

	"restaurant-finder/internal/cache"
	"restaurant-finder/internal/common/errors"
	commonhttp "restaurant-finder/internal/common/http"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/metrics"
	"restaurant-finder/internal/enrichment"
	"restaurant-finder/internal/mockdata"
	"restaurant-finder/internal/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	Component = "places-client"

	reasonNoCredentials = "no_credentials"
)

// Client answers searches and details lookups cache-first, falling back to mock
// data whenever the upstream API is unconfigured or fails. Upstream errors never
// reach the caller.
type Client struct {
	config   *Config
	upstream *upstream
	cache    *cache.RestaurantCache
	engine   *enrichment.Engine
	mock     *mockdata.Provider
	links    enrichment.LinkFinder
	tracer   trace.Tracer
	logger   logger.Logger
	now      func() time.Time
}

type Option func(*Client)

// WithClock sets the clock used by the cache, hours formatting and mock data.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithCache injects a cache instance, e.g. to share or inspect it.
func WithCache(rc *cache.RestaurantCache) Option {
	return func(c *Client) { c.cache = rc }
}

func WithLinkFinder(f enrichment.LinkFinder) Option {
	return func(c *Client) { c.links = f }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.upstream.http = commonhttp.NewClientWith(hc) }
}

func NewClient(config *Config, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		config: config,
		upstream: &upstream{
			config: config,
			http:   commonhttp.NewClient(config.Timeout),
		},
		links:  enrichment.NoopLinkFinder{},
		tracer: noop.NewTracerProvider().Tracer(Component),
		logger: log.With(map[string]interface{}{
			"component": Component,
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cache == nil {
		c.cache = cache.NewRestaurantCache(config.CacheTTL, c.now)
	}
	c.engine = enrichment.NewEngine(&enrichment.Config{
		PhotoURL:  config.PhotoURL,
		APIKey:    config.APIKey,
		MaxPhotos: config.MaxPhotos,
	}, c.now)
	c.mock = mockdata.NewProvider(c.now)

	if !config.HasCredentials() {
		c.logger.Warn("Google Places API key not configured, serving mock data. Set GOOGLE_MAPS_API_KEY to enable live results", nil)
	}

	return c
}

// MockMode reports whether the client never calls the upstream API.
func (c *Client) MockMode() bool {
	return !c.config.HasCredentials()
}

// Search returns restaurants matching query. query is expected to be trimmed and non-empty.
func (c *Client) Search(ctx context.Context, query string) []models.SearchResult {
	if cached, hit := c.cache.SearchResults(query); hit {
		c.logger.Debug("search cache hit", map[string]interface{}{"query": query})
		return cached
	}

	ctx, span := c.tracer.Start(ctx, "places.Search", trace.WithAttributes(
		attribute.String("places.query", query),
	))
	defer span.End()

	if !c.config.HasCredentials() {
		span.SetAttributes(attribute.Bool("places.mock", true))
		return c.mockSearch(query, reasonNoCredentials)
	}

	out := c.upstream.textSearch(ctx, query)
	span.SetAttributes(attribute.String("places.outcome", out.kind.String()))

	switch out.kind {
	case outcomeOK:
		c.cache.SetSearchResults(query, out.value)
		c.logger.Info("search completed", map[string]interface{}{
			"query":       query,
			"resultCount": len(out.value),
		})
		return out.value
	default:
		span.RecordError(out.reason)
		span.SetStatus(codes.Error, out.reason.Message)
		logger.ForContext(ctx, c.logger).Warn("text search failed, falling back to mock data", map[string]interface{}{
			"operation": operationSearch,
			"query":     query,
			"reason":    string(out.reason.Code),
			"details":   out.reason.Details,
			"status":    out.reason.Metadata["status"],
			"retryable": errors.IsRetryable(out.reason),
		})
		return c.mockSearch(query, strings.ToLower(string(out.reason.Code)))
	}
}

// GetDetails returns the enriched record for placeID. The bool is false only when the
// upstream API confirms the place does not exist; nothing is cached in that case.
func (c *Client) GetDetails(ctx context.Context, placeID string) (*models.Restaurant, bool) {
	if placeID == "" {
		return nil, false
	}

	if cached, hit := c.cache.Restaurant(placeID); hit {
		c.logger.Debug("details cache hit", map[string]interface{}{"placeId": placeID})
		return cached, true
	}

	ctx, span := c.tracer.Start(ctx, "places.GetDetails", trace.WithAttributes(
		attribute.String("places.place_id", placeID),
	))
	defer span.End()

	if !c.config.HasCredentials() {
		span.SetAttributes(attribute.Bool("places.mock", true))
		return c.mockDetails(placeID, reasonNoCredentials), true
	}

	out := c.upstream.details(ctx, placeID)
	span.SetAttributes(attribute.String("places.outcome", out.kind.String()))

	switch out.kind {
	case outcomeOK:
		r := c.engine.Build(placeID, out.value)
		enrichment.ApplyLinks(ctx, c.links, r)
		c.cache.SetRestaurant(placeID, r)
		c.logger.Info("details fetched", map[string]interface{}{
			"placeId":     placeID,
			"imageCount":  len(r.Images),
			"vibeCount":   len(r.Vibes),
			"hasOpenings": r.OperatingHours != nil,
		})
		return r, true
	case outcomeNotFound:
		c.logger.Info("place not found", map[string]interface{}{"placeId": placeID})
		return nil, false
	default:
		span.RecordError(out.reason)
		span.SetStatus(codes.Error, out.reason.Message)
		logger.ForContext(ctx, c.logger).Warn("details lookup failed, falling back to mock data", map[string]interface{}{
			"operation": operationDetails,
			"placeId":   placeID,
			"reason":    string(out.reason.Code),
			"details":   out.reason.Details,
			"status":    out.reason.Metadata["status"],
			"retryable": errors.IsRetryable(out.reason),
		})
		return c.mockDetails(placeID, strings.ToLower(string(out.reason.Code))), true
	}
}

// ClearCache wipes cached searches and details.
func (c *Client) ClearCache() {
	c.cache.Clear()
	c.logger.Info("cache cleared", nil)
}

// mockSearch serves and caches mock results so the next identical query is a cache hit rather than a retry.
func (c *Client) mockSearch(query, reason string) []models.SearchResult {
	metrics.MockFallbacks.WithLabelValues(operationSearch, reason).Inc()
	results := c.mock.SearchResults(query)
	c.cache.SetSearchResults(query, results)
	return results
}

func (c *Client) mockDetails(placeID, reason string) *models.Restaurant {
	metrics.MockFallbacks.WithLabelValues(operationDetails, reason).Inc()
	r := c.mock.Restaurant(placeID)
	c.cache.SetRestaurant(placeID, r)
	return r
}
