// Package directus reads portfolio content from a Directus instance over its
// REST API.
package directus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"portfolio/internal/source"
)

// errNoRecord is returned when Directus has no item for the request.
var errNoRecord = errors.New("directus: no record")

// Client is a minimal read-only Directus REST client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ReadSingleton decodes the singleton into out. Directus answers 403 for a
// collection the token cannot see and an empty data object for a singleton
// that was never saved; both mean there is no record.
func (c *Client) ReadSingleton(ctx context.Context, name source.Singleton, fields []string, out any) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %q", source.ErrUnknownCollection, name)
	}
	params := url.Values{}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	var data json.RawMessage
	if err := c.get(ctx, "/items/"+string(name), params, &data); err != nil {
		return err
	}
	if len(data) == 0 || string(data) == "null" || string(data) == "{}" {
		return errNoRecord
	}
	return json.Unmarshal(data, out)
}

// ReadItems runs q against a collection and decodes the item list into out.
func (c *Client) ReadItems(ctx context.Context, collection source.Collection, q source.Query, fields []string, out any) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", source.ErrUnknownCollection, collection)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	params := url.Values{}
	for _, f := range q.Filters {
		op := "_eq"
		if f.Op == source.OpNeq {
			op = "_neq"
		}
		params.Set(fmt.Sprintf("filter[%s][%s]", f.Field, op), fmt.Sprint(f.Value))
	}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	if len(q.Sort) > 0 {
		params.Set("sort", strings.Join(q.Sort, ","))
	}
	limit := -1
	if q.Limit > 0 {
		limit = q.Limit
	}
	params.Set("limit", strconv.Itoa(limit))

	var data json.RawMessage
	if err := c.get(ctx, "/items/"+string(collection), params, &data); err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, data *json.RawMessage) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	_ = json.Unmarshal(body, &env)

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusForbidden:
		return errNoRecord
	case resp.StatusCode >= 300:
		msg := http.StatusText(resp.StatusCode)
		if len(env.Errors) > 0 {
			msg = env.Errors[0].Message
		}
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, msg)
	}
	if env.Data == nil {
		return fmt.Errorf("GET %s: response has no data", path)
	}
	*data = env.Data
	return nil
}
