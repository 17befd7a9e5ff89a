package sparql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hyperjump/tantei/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Binding is one result row, flattened to variable name -> value.
type Binding map[string]string

// selectResult mirrors the SPARQL JSON results format: results.bindings is a
// list of rows, each mapping a variable name to a value wrapper.
type selectResult struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// Client executes SELECT queries against one fixed SPARQL endpoint.
//
// Select never returns an error: any transport, status, or parse failure is
// logged, counted, and degraded to an empty row set, so that a single failed
// sub-query can only thin out results, never abort an aggregation run.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a client for endpoint. rps throttles outgoing queries
// (the public query service asks clients to pace themselves); userAgent is
// sent on every request per endpoint etiquette.
func NewClient(endpoint string, timeout time.Duration, rps float64, userAgent string, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// Select runs one SELECT query and returns its rows. kind names the query for
// logging and metrics (e.g. "person_check", "membership"). On any failure the
// result is nil.
func (c *Client) Select(ctx context.Context, kind, query string) []Binding {
	metrics.SPARQLQueries.WithLabelValues(kind).Inc()

	if err := c.limiter.Wait(ctx); err != nil {
		c.fail(kind, "rate_wait", err)
		return nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.fail(kind, "request", err)
		return nil
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(kind, "transport", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("sparql query failed",
			zap.String("kind", kind),
			zap.Int("status", resp.StatusCode),
		)
		metrics.SPARQLFailures.WithLabelValues("status").Inc()
		return nil
	}

	var result selectResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.fail(kind, "decode", err)
		return nil
	}

	rows := make([]Binding, 0, len(result.Results.Bindings))
	for _, raw := range result.Results.Bindings {
		row := make(Binding, len(raw))
		for name, wrapper := range raw {
			row[name] = wrapper.Value
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Client) fail(kind, reason string, err error) {
	c.logger.Warn("sparql query failed",
		zap.String("kind", kind),
		zap.String("reason", reason),
		zap.Error(err),
	)
	metrics.SPARQLFailures.WithLabelValues(reason).Inc()
}

// EntityID extracts the entity identifier from an entity URI
// ("http://www.wikidata.org/entity/Q42" -> "Q42"). Values that are not URIs
// are returned unchanged.
func EntityID(value string) string {
	if i := strings.LastIndexByte(value, '/'); i >= 0 {
		return value[i+1:]
	}
	return value
}
