package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/hoanvu/gophim/internal/models"
	"github.com/hoanvu/gophim/internal/playback"
	"github.com/hoanvu/gophim/internal/resolver"
	"github.com/hoanvu/gophim/internal/services/phimapi"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const detailTTL = 2 * time.Minute

// WatchResult is everything the watch view needs for one request
type WatchResult struct {
	Movie     *models.Movie            `json:"movie"`
	Servers   []models.ServerGroup     `json:"servers"`
	Selection models.PlaybackSelection `json:"selection"`
	Synthetic bool                     `json:"synthetic"`
}

// WatchController resolves episodes and playback sources for the watch
// view. Detail fetches are cached briefly; detail failures propagate to
// the caller (there is no good fallback for a missing movie).
type WatchController struct {
	client        *phimapi.Client
	selector      *playback.Selector
	session       *playback.Session
	cache         *gocache.Cache
	playerBaseURL string
	logger        *logrus.Logger
}

// NewWatchController creates a new watch controller
func NewWatchController(client *phimapi.Client, selector *playback.Selector, session *playback.Session, playerBaseURL string, logger *logrus.Logger) *WatchController {
	return &WatchController{
		client:        client,
		selector:      selector,
		session:       session,
		cache:         gocache.New(detailTTL, 2*detailTTL),
		playerBaseURL: playerBaseURL,
		logger:        logger,
	}
}

type cachedDetail struct {
	movie  *models.Movie
	groups []models.ServerGroup
}

// Detail fetches movie metadata plus server groups, with a short cache
func (c *WatchController) Detail(ctx context.Context, slug string) (*models.Movie, []models.ServerGroup, error) {
	if cached, found := c.cache.Get(slug); found {
		d := cached.(cachedDetail)
		return d.movie, d.groups, nil
	}

	movie, groups, err := c.client.Detail(ctx, slug)
	if err != nil {
		upstreamFailures.WithLabelValues("detail").Inc()
		return nil, nil, fmt.Errorf("failed to fetch movie detail: %w", err)
	}

	c.cache.SetDefault(slug, cachedDetail{movie: movie, groups: groups})
	return movie, groups, nil
}

// Watch resolves the requested episode and selects its playback source.
// noEmbed carries the one-way iframe-failure flag for the current episode,
// forcing re-evaluation without the iframe branch.
func (c *WatchController) Watch(ctx context.Context, slug, token, serverName string, noEmbed bool) (*WatchResult, error) {
	movie, groups, err := c.Detail(ctx, slug)
	if err != nil {
		return nil, err
	}

	res := resolver.Resolve(groups, token, serverName, movie.Slug, resolver.EpisodeCountHint(movie), c.playerBaseURL)
	sel := c.selector.Select(res.Episode, noEmbed)
	sel.ServerName = res.ServerName

	c.logger.WithFields(logrus.Fields{
		"slug":    slug,
		"token":   token,
		"server":  res.ServerName,
		"episode": res.Episode.Slug,
		"mode":    sel.Mode,
	}).Debug("Watch request resolved")

	if c.session != nil {
		switch sel.Mode {
		case models.ModeHLS:
			if err := c.session.Attach(ctx, sel.HLSURL); err != nil {
				// Attach exhausted its retry budget; the source is not playable
				c.logger.WithError(err).WithField("manifest", sel.HLSURL).Warn("HLS attach failed, source not playable")
				sel.Mode = models.ModeNone
			}
		default:
			c.session.Detach()
		}
	}

	// Copy so callers can decorate the movie without touching the cache
	movieCopy := *movie

	return &WatchResult{
		Movie:     &movieCopy,
		Servers:   res.Groups,
		Selection: sel,
		Synthetic: res.Synthetic,
	}, nil
}
