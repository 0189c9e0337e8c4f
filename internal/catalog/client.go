package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the products API over HTTP. It is the collaborator boundary
// used by the catalog view; filtering and sorting happen server-side, the
// free-text search stays on the caller.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: baseURL,
	}
}

func (c *Client) List(ctx context.Context, q Query) ([]Product, error) {
	params := url.Values{}
	if q.Category != "" && q.Category != "all" {
		params.Set("category", q.Category)
	}
	if q.InStock {
		params.Set("inStock", "true")
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	u := c.BaseURL + "/api/products"
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: unexpected status %s", res.Status)
	}
	var body ListResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("catalog: fetch failed")
	}
	return body.Data, nil
}

func (c *Client) Get(ctx context.Context, id int) (*Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/products/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("catalog: unexpected status %s", res.Status)
	}
	var p Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
