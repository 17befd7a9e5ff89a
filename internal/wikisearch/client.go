// Package wikisearch queries the entity-search endpoint for free-text matches.
package wikisearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hyperjump/tantei/internal/metrics"
	"github.com/hyperjump/tantei/internal/models"
	"go.uber.org/zap"
)

// searchResult mirrors the wbsearchentities response shape.
type searchResult struct {
	Search []struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		Description string `json:"description"`
	} `json:"search"`
}

// Client searches the entity-search endpoint for items matching free text.
// Unlike the SPARQL client, Search does return errors: it sits upstream of
// the aggregation core, and the caller decides how to present a failed search.
type Client struct {
	endpoint   string
	language   string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a search client for endpoint, restricting results to the
// given language and to item-type entities.
func NewClient(endpoint, language string, timeout time.Duration, userAgent string, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		language:   language,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Search returns up to limit entity hits for text, in relevance order.
func (c *Client) Search(ctx context.Context, text string, limit int) ([]models.SearchHit, error) {
	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("search", text)
	params.Set("language", c.language)
	params.Set("type", "item")
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("entity search failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("entity search failed: status %d", resp.StatusCode)
	}

	var result searchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	hits := make([]models.SearchHit, 0, len(result.Search))
	for _, s := range result.Search {
		hits = append(hits, models.SearchHit{
			ID:          s.ID,
			Label:       s.Label,
			Description: s.Description,
		})
	}
	c.logger.Debug("entity search", zap.String("text", text), zap.Int("hits", len(hits)))
	metrics.SearchRequests.WithLabelValues("ok").Inc()
	return hits, nil
}
