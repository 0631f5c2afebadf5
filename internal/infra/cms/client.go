// Package cms talks to the remote headless content store. Reads degrade
// to zero records on any failure; writes are gated by the store-side
// shared secret and surface errors to the fan-out layer only.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"caftan/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const cacheCleanupInterval = 5 * time.Minute

// collectionResponse is the envelope the store wraps every collection
// read in.
type collectionResponse struct {
	Docs       []map[string]any `json:"docs"`
	TotalDocs  int              `json:"totalDocs"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
}

// Client is a thin accessor for the remote content store. The zero-value
// configuration (nil config or empty base URL) is a fully supported
// state in which every read returns no records and writes are refused.
type Client struct {
	baseURL    string
	apiSecret  string
	httpClient *http.Client
	cache      *gocache.Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewClient creates a content store client from configuration. cfg may
// be nil.
func NewClient(cfg *config.CMSConfig, logger *slog.Logger) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	if cfg == nil {
		return client
	}

	client.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	client.apiSecret = cfg.APISecret
	client.cacheTTL = cfg.CacheTTL
	if cfg.Timeout > 0 {
		client.httpClient.Timeout = cfg.Timeout
	}
	if client.cacheTTL > 0 {
		client.cache = gocache.New(client.cacheTTL, cacheCleanupInterval)
	}

	return client
}

// IsConfigured reports whether a base endpoint is set in the environment.
func (c *Client) IsConfigured() bool {
	return c.baseURL != ""
}

// FetchCollection performs one GET against {base}/{collection} and
// returns the docs array. Network errors, non-2xx statuses, and decode
// failures all come back as an empty slice; callers treat "no records"
// as a legitimate, cheap-to-retry state.
func (c *Client) FetchCollection(ctx context.Context, collection string, limit, depth int) []map[string]any {
	if !c.IsConfigured() {
		return nil
	}

	cacheKey := fmt.Sprintf("%s?limit=%d&depth=%d", collection, limit, depth)
	if c.cache != nil {
		if cached, found := c.cache.Get(cacheKey); found {
			if docs, ok := cached.([]map[string]any); ok {
				return docs
			}
		}
	}

	url := fmt.Sprintf("%s/%s?limit=%d&depth=%d", c.baseURL, collection, limit, depth)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("building content store request failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)

		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content store unreachable",
			slog.String("collection", collection),
			slog.Any("error", err),
		)

		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("content store returned non-success status",
			slog.String("collection", collection),
			slog.Int("status", resp.StatusCode),
		)

		return nil
	}

	var payload collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("decoding content store response failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)

		return nil
	}

	docs := payload.Docs
	if docs == nil {
		docs = []map[string]any{}
	}
	if c.cache != nil {
		c.cache.Set(cacheKey, docs, gocache.DefaultExpiration)
	}

	return docs
}

// ResolveMediaURL turns either an inline path or a nested media object's
// relative URL into an absolute URL against the configured base. It
// returns "" when no usable URL exists.
func (c *Client) ResolveMediaURL(ref any) string {
	switch v := ref.(type) {
	case string:
		return c.absoluteURL(v)
	case map[string]any:
		if nested, ok := v["url"].(string); ok {
			return c.absoluteURL(nested)
		}
	}

	return ""
}

func (c *Client) absoluteURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !c.IsConfigured() {
		return ""
	}

	// Media is served from the store origin, not the API prefix.
	origin := strings.TrimSuffix(c.baseURL, "/api")

	return origin + "/" + strings.TrimLeft(path, "/")
}

// CreateDocument writes one document into the named collection,
// presenting the shared secret as a bearer token. Non-2xx statuses are
// errors; the caller decides whether they matter.
func (c *Client) CreateDocument(ctx context.Context, collection string, doc any) error {
	if !c.IsConfigured() {
		return errors.New("content store is not configured")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiSecret != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the log line, never echo it back.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("content store returned status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
