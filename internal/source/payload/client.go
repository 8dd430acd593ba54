// Package payload reads portfolio content from a Payload CMS instance over
// its REST API.
package payload

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

var errNoRecord = errors.New("payload: no record")

// slugs maps names to Payload collection and global slugs.
var slugs = map[string]string{
	string(source.SingletonHome):          "home",
	string(source.SingletonSiteSettings):  "site-settings",
	string(source.CollectionProjects):     "projects",
	string(source.CollectionTechnologies): "technologies",
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ReadGlobal decodes a global with relations populated two levels deep.
func (c *Client) ReadGlobal(ctx context.Context, name source.Singleton, out any) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %q", source.ErrUnknownCollection, name)
	}
	params := url.Values{"depth": {"2"}}
	body, err := c.get(ctx, "/api/globals/"+slugs[string(name)], params)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// Find runs q against a collection and decodes the docs into out.
func (c *Client) Find(ctx context.Context, collection source.Collection, q source.Query, out any) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", source.ErrUnknownCollection, collection)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	params := url.Values{"depth": {"1"}}
	for _, f := range q.Filters {
		op := "equals"
		if f.Op == source.OpNeq {
			op = "not_equals"
		}
		params.Set(fmt.Sprintf("where[%s][%s]", f.Field, op), fmt.Sprint(f.Value))
	}
	if len(q.Sort) > 0 {
		params.Set("sort", strings.Join(q.Sort, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	} else {
		params.Set("pagination", "false")
	}

	body, err := c.get(ctx, "/api/"+slugs[string(collection)], params)
	if err != nil {
		return err
	}
	var page struct {
		Docs json.RawMessage `json:"docs"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return fmt.Errorf("failed to decode %s page: %w", collection, err)
	}
	if page.Docs == nil {
		return fmt.Errorf("%s response has no docs", collection)
	}
	return json.Unmarshal(page.Docs, out)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "users API-Key "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errNoRecord
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return body, nil
}
