// Package supabase is a minimal REST client for a hosted Supabase backend:
// PostgREST table access and GoTrue authentication. Row-level security on the
// store side is driven by the bearer token each request carries, so a client
// authorized with a user token only ever sees that user's rows.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// Client talks to one Supabase project. The zero-value bearer means the
// client acts with the service API key only.
type Client struct {
	baseURL    string
	apiKey     string
	bearer     string
	httpClient *http.Client
}

// New creates a client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase: URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// WithToken returns a copy of the client whose requests carry the given user
// access token. The store applies its row-level policy based on this token.
func (c *Client) WithToken(token string) *Client {
	authorized := *c
	authorized.bearer = token
	return &authorized
}

// From starts a query against a table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

// Query builds a single PostgREST request against one table.
type Query struct {
	client  *Client
	table   string
	columns string
	filters url.Values
}

// Select sets the columns to return.
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column string, value any) *Query {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Get executes a select and decodes the rows into dest.
func (q *Query) Get(ctx context.Context, dest any) error {
	req, err := q.request(ctx, http.MethodGet, nil)
	if err != nil {
		return err
	}
	return q.client.do(req, dest)
}

// Insert posts a new row and decodes the returned representation into dest.
func (q *Query) Insert(ctx context.Context, record any, dest any) error {
	req, err := q.request(ctx, http.MethodPost, record)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return q.client.do(req, dest)
}

// Update patches the filtered rows and decodes the returned representation
// into dest.
func (q *Query) Update(ctx context.Context, record any, dest any) error {
	req, err := q.request(ctx, http.MethodPatch, record)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return q.client.do(req, dest)
}

// Delete removes the filtered rows.
func (q *Query) Delete(ctx context.Context) error {
	req, err := q.request(ctx, http.MethodDelete, nil)
	if err != nil {
		return err
	}
	return q.client.do(req, nil)
}

func (q *Query) request(ctx context.Context, method string, record any) (*http.Request, error) {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table)

	params := url.Values{}
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	for column, values := range q.filters {
		for _, v := range values {
			params.Add(column, v)
		}
	}
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var body io.Reader
	if record != nil {
		data, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q.client.setHeaders(req)
	if record != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	bearer := c.bearer
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

// do performs the request, maps failure statuses onto the error taxonomy and
// decodes a success body into dest when dest is non-nil.
func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return storeError(resp.StatusCode, body)
	}

	if dest == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// storeError maps a PostgREST failure to the error taxonomy. The store's
// detail message is passed through unchanged.
func storeError(status int, body []byte) *Error {
	message := errorMessage(body)
	if message == "" {
		message = fmt.Sprintf("store error: status %d", status)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindUnauthenticated, Message: message}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: message}
	default:
		return &Error{Kind: KindUnexpected, Message: message}
	}
}

// errorMessage extracts a human-readable detail string from a GoTrue or
// PostgREST error payload. The two services use different field names.
func errorMessage(body []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Err              string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, candidate := range []string{payload.Message, payload.Msg, payload.ErrorDescription, payload.Err} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
