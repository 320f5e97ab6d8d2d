// Package omdb implements the external details catalog against the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const detailsCacheTTL = 24 * time.Hour

// Client fetches movie details by exact title. Responses are cached in Redis
// when a cache client is provided; OMDb data is static enough that a stale
// entry is harmless.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      redis.UniversalClient
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, cache redis.UniversalClient, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
		logger:     logger,
	}
}

type detailsResponse struct {
	Title    string `json:"Title"`
	Released string `json:"Released"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// FetchDetails looks the title up in OMDb. A missing title, an invalid API
// key and an unreachable upstream are all reported as a plain error; the saga
// treats them the same way.
func (c *Client) FetchDetails(ctx context.Context, title string) (domain.MovieDetails, error) {
	if details, ok := c.cachedDetails(ctx, title); ok {
		return details, nil
	}

	reqURL := fmt.Sprintf("%s/?t=%s&apikey=%s", c.baseURL, url.QueryEscape(title), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.MovieDetails{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.MovieDetails{}, fmt.Errorf("omdb responded with status %d", resp.StatusCode)
	}

	var body detailsResponse

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return domain.MovieDetails{}, err
	}

	if body.Response != "True" {
		if body.Error != "" {
			return domain.MovieDetails{}, fmt.Errorf("omdb lookup failed: %s", body.Error)
		}

		return domain.MovieDetails{}, errors.New("omdb lookup failed")
	}

	details := domain.MovieDetails{
		Title:    body.Title,
		Released: body.Released,
		Genre:    body.Genre,
		Director: body.Director,
	}

	c.cacheDetails(ctx, title, details)

	return details, nil
}

func (c *Client) cachedDetails(ctx context.Context, title string) (domain.MovieDetails, bool) {
	if c.cache == nil {
		return domain.MovieDetails{}, false
	}

	payload, err := c.cache.Get(ctx, detailsCacheKey(title)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read details from cache", "title", title, "error", err)
		}

		return domain.MovieDetails{}, false
	}

	var details domain.MovieDetails

	err = json.Unmarshal(payload, &details)
	if err != nil {
		c.logger.Warn("failed to decode cached details", "title", title, "error", err)
		return domain.MovieDetails{}, false
	}

	return details, true
}

func (c *Client) cacheDetails(ctx context.Context, title string, details domain.MovieDetails) {
	if c.cache == nil {
		return
	}

	payload, err := json.Marshal(details)
	if err != nil {
		return
	}

	err = c.cache.Set(ctx, detailsCacheKey(title), payload, detailsCacheTTL).Err()
	if err != nil {
		c.logger.Warn("failed to cache details", "title", title, "error", err)
	}
}

func detailsCacheKey(title string) string {
	return "omdb:details:" + title
}
