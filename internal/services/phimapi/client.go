package phimapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hoanvu/gophim/internal/config"
	"github.com/hoanvu/gophim/internal/models"
	"github.com/sirupsen/logrus"
)

// Client wraps direct movie API HTTP calls
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new movie API client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("movie API base URL is required")
	}

	return &Client{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// get issues a GET request against the API and returns the raw body
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	apiURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	if params != nil {
		apiURL.RawQuery = params.Encode()
	}
	finalURL := apiURL.String()

	c.logger.WithField("url", finalURL).Debug("Performing movie API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "gophim/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movie API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"url":         finalURL,
		}).Error("Movie API returned non-OK status")
		return nil, fmt.Errorf("movie API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// getPage fetches a path and normalizes whichever envelope shape comes back
func (c *Client) getPage(ctx context.Context, path string, params url.Values) (*models.PageResult, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(body)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Error("Unrecognized movie API envelope")
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"path":  path,
		"items": len(page.Items),
		"page":  page.Pagination.CurrentPage,
	}).Debug("Movie API page fetched")

	return page, nil
}

func pageParams(page int) url.Values {
	params := url.Values{}
	if page < 1 {
		page = 1
	}
	params.Add("page", strconv.Itoa(page))
	return params
}

// Latest fetches the newest-movies list
func (c *Client) Latest(ctx context.Context, page int) (*models.PageResult, error) {
	return c.getPage(ctx, "/danh-sach/phim-moi-cap-nhat", pageParams(page))
}

// List fetches one of the typed catalog lists (series, single, animation, theater)
func (c *Client) List(ctx context.Context, kind models.ListKind, page int) (*models.PageResult, error) {
	return c.getPage(ctx, "/v1/api/danh-sach/"+string(kind), pageParams(page))
}

// ByGenre fetches a genre listing page
func (c *Client) ByGenre(ctx context.Context, slug string, page int) (*models.PageResult, error) {
	return c.getPage(ctx, "/v1/api/the-loai/"+url.PathEscape(slug), pageParams(page))
}

// ByCountry fetches a country listing page
func (c *Client) ByCountry(ctx context.Context, slug string, page int) (*models.PageResult, error) {
	return c.getPage(ctx, "/v1/api/quoc-gia/"+url.PathEscape(slug), pageParams(page))
}

// Search performs a free-text search
func (c *Client) Search(ctx context.Context, keyword string, page int) (*models.PageResult, error) {
	params := pageParams(page)
	params.Add("keyword", keyword)
	return c.getPage(ctx, "/v1/api/tim-kiem", params)
}

// Genres fetches the genre taxonomy
func (c *Client) Genres(ctx context.Context) ([]models.Tag, error) {
	body, err := c.get(ctx, "/the-loai", nil)
	if err != nil {
		return nil, err
	}
	return ParseTags(body)
}

// Countries fetches the country taxonomy
func (c *Client) Countries(ctx context.Context) ([]models.Tag, error) {
	body, err := c.get(ctx, "/quoc-gia", nil)
	if err != nil {
		return nil, err
	}
	return ParseTags(body)
}

// Detail fetches movie metadata plus its server groups by slug
func (c *Client) Detail(ctx context.Context, slug string) (*models.Movie, []models.ServerGroup, error) {
	body, err := c.get(ctx, "/phim/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, nil, err
	}

	movie, groups, err := ParseDetail(body)
	if err != nil {
		c.logger.WithError(err).WithField("slug", slug).Error("Failed to parse movie detail")
		return nil, nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"slug":    slug,
		"servers": len(groups),
	}).Debug("Movie detail fetched")

	return movie, groups, nil
}
