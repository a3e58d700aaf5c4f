// Package postgrest is a typed wrapper over the hosted table/RPC REST API.
// The query surface is deliberately narrow — equality filters, ordering and
// limits — because that is all the remote dialect the console uses.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/api/metrics"
	"github.com/spaceresearch/mission-console/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the remote database service.
// APIKey is the anonymous key used for reads; ServiceKey authorizes
// mutations and stored-procedure calls and falls back to APIKey when unset.
type Config struct {
	BaseURL    string
	APIKey     string
	ServiceKey string
	Timeout    time.Duration
}

// Client issues table and RPC requests against the remote service.
type Client struct {
	baseURL    string
	apiKey     string
	serviceKey string
	http       *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	serviceKey := cfg.ServiceKey
	if serviceKey == "" {
		serviceKey = cfg.APIKey
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Ping verifies the remote endpoint answers; used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	return nil
}

// From starts a query against a table or view.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

// Rpc invokes a named stored procedure and decodes the JSON result into
// dest (pass nil to discard).
func (c *Client) Rpc(ctx context.Context, name string, params map[string]any, dest any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/rpc/"+name, nil, body, true, true, dest, "rpc:"+name, "rpc")
}

// Query accumulates filters for a single table request.
type Query struct {
	client  *Client
	table   string
	filters url.Values
}

func (q *Query) set(key, value string) *Query {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(key, value)
	return q
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column string, value any) *Query {
	return q.set(column, fmt.Sprintf("eq.%v", value))
}

// In filters a column to a set of values.
func (q *Query) In(column string, values ...string) *Query {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return q.set(column, "in.("+strings.Join(quoted, ",")+")")
}

// Order sorts rows by a column, descending when desc is true.
func (q *Query) Order(column string, desc bool) *Query {
	dir := ".asc"
	if desc {
		dir = ".desc"
	}
	return q.set("order", column+dir)
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	return q.set("limit", strconv.Itoa(n))
}

// Select fetches matching rows into dest (a pointer to a slice).
func (q *Query) Select(ctx context.Context, dest any) error {
	return q.client.do(ctx, http.MethodGet, "/"+q.table, q.filters, nil, false, false, dest, q.table, "select")
}

// Insert creates a row and decodes the returned representation into dest.
func (q *Query) Insert(ctx context.Context, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.do(ctx, http.MethodPost, "/"+q.table, q.filters, body, true, true, dest, q.table, "insert")
}

// Update patches rows matching the accumulated filters.
func (q *Query) Update(ctx context.Context, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.do(ctx, http.MethodPatch, "/"+q.table, q.filters, body, true, true, dest, q.table, "update")
}

// Delete removes rows matching the accumulated filters.
func (q *Query) Delete(ctx context.Context) error {
	return q.client.do(ctx, http.MethodDelete, "/"+q.table, q.filters, nil, true, false, nil, q.table, "delete")
}

func (c *Client) do(ctx context.Context, method, path string, filters url.Values, body []byte, elevated, returning bool, dest any, table, op string) error {
	endpoint := c.baseURL + path
	if len(filters) > 0 {
		endpoint += "?" + filters.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	key := c.apiKey
	if elevated {
		key = c.serviceKey
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if returning {
		req.Header.Set("Prefer", "return=representation")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(table, op, "error").Inc()
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, op, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(table, op, "error").Inc()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("table", table).
			Str("op", op).
			Str("body", string(snippet)).
			Msg("upstream request failed")
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, op, table, resp.StatusCode)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(table, op, "ok").Inc()
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrUpstream, op, table, err)
	}
	return nil
}
