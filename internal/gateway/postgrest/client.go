// Package postgrest talks to a Supabase project through its REST endpoint.
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

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/khrees2412/talentdesk/internal/gateway"
)

// Client implements gateway.Gateway over PostgREST.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New constructs a Client for the project at projectURL using the anon or service key.
func New(projectURL, key string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(projectURL)
	if trimmed == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("supabase key is required")
	}
	c := &Client{
		baseURL:    strings.TrimRight(trimmed, "/") + "/rest/v1",
		key:        strings.TrimSpace(key),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Select fetches rows matching q.
func (c *Client) Select(ctx context.Context, table string, q gateway.Query) ([]gateway.Row, error) {
	params, err := selectParams(table, q)
	if err != nil {
		return nil, err
	}
	var rows []gateway.Row
	if _, err := c.do(ctx, http.MethodGet, table, params, nil, nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []gateway.Row{}
	}
	return rows, nil
}

// Count asks for an exact count without transferring rows.
func (c *Client) Count(ctx context.Context, table string, filters ...gateway.Filter) (int, error) {
	params, err := selectParams(table, gateway.Query{Filters: filters})
	if err != nil {
		return 0, err
	}
	// tables such as profile have no id column
	params.Set("select", "*")
	hdr := http.Header{}
	hdr.Set("Prefer", "count=exact")
	resp, err := c.do(ctx, http.MethodHead, table, params, nil, hdr, nil)
	if err != nil {
		return 0, err
	}
	return parseContentRange(resp.Get("Content-Range"))
}

// Insert creates one row and returns it as stored.
func (c *Client) Insert(ctx context.Context, table string, row gateway.Row) (gateway.Row, error) {
	if !gateway.ValidIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	var out []gateway.Row
	if _, err := c.do(ctx, http.MethodPost, table, nil, []gateway.Row{row}, representation(), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return row, nil
	}
	return out[0], nil
}

// Update patches the row whose id matches.
func (c *Client) Update(ctx context.Context, table string, id any, patch gateway.Row) (gateway.Row, error) {
	if !gateway.ValidIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("update %s: empty patch", table)
	}
	params := url.Values{}
	params.Set(gateway.IDColumn, "eq."+formatValue(id))
	var out []gateway.Row
	if _, err := c.do(ctx, http.MethodPatch, table, params, patch, representation(), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, gateway.NoRows(table, id)
	}
	return out[0], nil
}

// Delete removes the row whose id matches.
func (c *Client) Delete(ctx context.Context, table string, id any) error {
	if !gateway.ValidIdent(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	params := url.Values{}
	params.Set(gateway.IDColumn, "eq."+formatValue(id))
	var out []gateway.Row
	if _, err := c.do(ctx, http.MethodDelete, table, params, nil, representation(), &out); err != nil {
		return err
	}
	if len(out) == 0 {
		return gateway.NoRows(table, id)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func representation() http.Header {
	h := http.Header{}
	h.Set("Prefer", "return=representation")
	return h
}

func (c *Client) do(ctx context.Context, method, table string, params url.Values, body any, hdr http.Header, v any) (http.Header, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}
	endpoint := c.baseURL + "/" + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vals := range hdr {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.Header, extractError(resp.StatusCode, resp.Header, resp.Body)
	}
	if v == nil || method == http.MethodHead {
		return resp.Header, nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return resp.Header, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.Header, nil
}

func extractError(status int, hdr http.Header, body io.Reader) error {
	apiErr := &gateway.Error{Status: status}
	var data []byte
	if body != nil {
		data, _ = io.ReadAll(body)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// HEAD responses carry no body; name the cause from the headers
		cause := hdr.Get("Proxy-Status")
		if cause == "" {
			cause = http.StatusText(status)
		}
		if cause != "" {
			apiErr.Message = fmt.Sprintf("backend request failed with status %d: %s", status, cause)
		}
		return apiErr
	}
	if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	apiErr.Status = status
	return apiErr
}

func selectParams(table string, q gateway.Query) (url.Values, error) {
	if !gateway.ValidIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	params := url.Values{}
	if len(q.Columns) > 0 {
		for _, col := range q.Columns {
			if col != "*" && !gateway.ValidIdent(col) {
				return nil, fmt.Errorf("invalid column name %q", col)
			}
		}
		params.Set("select", strings.Join(q.Columns, ","))
	}
	for _, f := range q.Filters {
		if !gateway.ValidIdent(f.Column) {
			return nil, fmt.Errorf("invalid filter column %q", f.Column)
		}
		switch f.Op {
		case gateway.OpEq, gateway.OpGte, gateway.OpLt:
			params.Add(f.Column, string(f.Op)+"."+formatValue(f.Value))
		case gateway.OpIn:
			values, _ := f.Value.([]any)
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = quoteListItem(formatValue(v))
			}
			params.Add(f.Column, "in.("+strings.Join(parts, ",")+")")
		default:
			return nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}
	}
	if q.Order != nil {
		if !gateway.ValidIdent(q.Order.Column) {
			return nil, fmt.Errorf("invalid order column %q", q.Order.Column)
		}
		dir := "asc"
		if q.Order.Desc {
			dir = "desc"
		}
		params.Set("order", q.Order.Column+"."+dir)
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params, nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// quoteListItem wraps values that would break PostgREST list syntax.
func quoteListItem(s string) string {
	if !strings.ContainsAny(s, `,()" `) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// parseContentRange reads the total from "0-14/42" or "*/0".
func parseContentRange(h string) (int, error) {
	i := strings.LastIndex(h, "/")
	if i < 0 {
		return 0, fmt.Errorf("missing count in content range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("backend did not report an exact count")
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("parse content range %q: %w", h, err)
	}
	return n, nil
}

var _ gateway.Gateway = (*Client)(nil)
