package controllers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hoanvu/gophim/internal/models"
	"github.com/hoanvu/gophim/internal/services/phimapi"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const taxonomyTTL = 6 * time.Hour

// CatalogController serves catalog listings with a TTL cache in front of
// the upstream API. Listing failures are recovered locally by substituting
// the static fallback catalog; only detail and search propagate errors.
type CatalogController struct {
	client *phimapi.Client
	cache  *gocache.Cache
	logger *logrus.Logger
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(client *phimapi.Client, ttl time.Duration, logger *logrus.Logger) *CatalogController {
	return &CatalogController{
		client: client,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// cachedPage serves a listing from cache, fetching on miss. A fetch
// failure yields the fallback catalog and is never cached.
func (c *CatalogController) cachedPage(key, operation string, fetch func() (*models.PageResult, error)) *models.PageResult {
	if cached, found := c.cache.Get(key); found {
		cacheHits.Inc()
		return cached.(*models.PageResult)
	}
	cacheMisses.Inc()

	page, err := fetch()
	if err != nil {
		upstreamFailures.WithLabelValues(operation).Inc()
		fallbackServed.WithLabelValues(operation).Inc()
		c.logger.WithError(err).WithField("operation", operation).Warn("Listing fetch failed, serving fallback catalog")
		return phimapi.FallbackCatalog()
	}

	c.cache.SetDefault(key, page)
	return page
}

// Latest returns the newest-movies listing
func (c *CatalogController) Latest(ctx context.Context, page int) *models.PageResult {
	key := fmt.Sprintf("latest:%d", page)
	return c.cachedPage(key, "latest", func() (*models.PageResult, error) {
		return c.client.Latest(ctx, page)
	})
}

// List returns one of the typed catalog listings
func (c *CatalogController) List(ctx context.Context, kind models.ListKind, page int) *models.PageResult {
	key := fmt.Sprintf("list:%s:%d", kind, page)
	return c.cachedPage(key, string(kind), func() (*models.PageResult, error) {
		return c.client.List(ctx, kind, page)
	})
}

// Recommended returns a shuffled slice of the action-genre listing. The
// upstream has no dedicated recommendation endpoint; this mirrors the
// placeholder derivation the site always used, with the static catalog
// behind it when even that fails.
func (c *CatalogController) Recommended(ctx context.Context, page int) *models.PageResult {
	result := c.ByGenre(ctx, "hanh-dong", page)
	shuffled := *result
	shuffled.Items = make([]models.Movie, len(result.Items))
	copy(shuffled.Items, result.Items)
	rand.Shuffle(len(shuffled.Items), func(i, j int) {
		shuffled.Items[i], shuffled.Items[j] = shuffled.Items[j], shuffled.Items[i]
	})
	return &shuffled
}

// ByGenre returns a genre listing page
func (c *CatalogController) ByGenre(ctx context.Context, slug string, page int) *models.PageResult {
	key := fmt.Sprintf("genre:%s:%d", slug, page)
	return c.cachedPage(key, "genre", func() (*models.PageResult, error) {
		return c.client.ByGenre(ctx, slug, page)
	})
}

// ByCountry returns a country listing page
func (c *CatalogController) ByCountry(ctx context.Context, slug string, page int) *models.PageResult {
	key := fmt.Sprintf("country:%s:%d", slug, page)
	return c.cachedPage(key, "country", func() (*models.PageResult, error) {
		return c.client.ByCountry(ctx, slug, page)
	})
}

// Genres returns the genre taxonomy, cached for longer than listings
func (c *CatalogController) Genres(ctx context.Context) []models.Tag {
	return c.cachedTags("genres", func() ([]models.Tag, error) {
		return c.client.Genres(ctx)
	}, phimapi.FallbackGenres)
}

// Countries returns the country taxonomy, cached for longer than listings
func (c *CatalogController) Countries(ctx context.Context) []models.Tag {
	return c.cachedTags("countries", func() ([]models.Tag, error) {
		return c.client.Countries(ctx)
	}, phimapi.FallbackCountries)
}

func (c *CatalogController) cachedTags(key string, fetch func() ([]models.Tag, error), fallback func() []models.Tag) []models.Tag {
	if cached, found := c.cache.Get(key); found {
		cacheHits.Inc()
		return cached.([]models.Tag)
	}
	cacheMisses.Inc()

	tags, err := fetch()
	if err != nil {
		upstreamFailures.WithLabelValues(key).Inc()
		fallbackServed.WithLabelValues(key).Inc()
		c.logger.WithError(err).WithField("operation", key).Warn("Taxonomy fetch failed, serving fallback")
		return fallback()
	}

	c.cache.Set(key, tags, taxonomyTTL)
	return tags
}

// RefreshTaxonomies force-fetches both taxonomies and updates the cache.
// Used by the background warm jobs, which unlike user-facing requests may
// retry.
func (c *CatalogController) RefreshTaxonomies(ctx context.Context) error {
	genres, err := c.client.Genres(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh genres: %w", err)
	}
	countries, err := c.client.Countries(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh countries: %w", err)
	}

	c.cache.Set("genres", genres, taxonomyTTL)
	c.cache.Set("countries", countries, taxonomyTTL)
	return nil
}

// RefreshLatest force-fetches the first newest-movies page into the cache
func (c *CatalogController) RefreshLatest(ctx context.Context) error {
	page, err := c.client.Latest(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to refresh latest listing: %w", err)
	}
	c.cache.SetDefault("latest:1", page)
	return nil
}

// CacheSize reports the number of cached entries
func (c *CatalogController) CacheSize() int {
	return c.cache.ItemCount()
}
