// Package bga fetches the Board Game Arena landing page and extracts the
// game catalog embedded in its inline script payload.
package bga

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"

	"github.com/cardtable-labs/bga-cli/internal/config"
)

// Client fetches the catalog page with an authenticated session.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient builds a client for the configured base URL carrying the
// session cookies on every request.
func NewClient(cfg config.BGAConfig, session config.Session) *Client {
	client := resty.New()
	for name, value := range session.Cookies() {
		client.SetCookie(&http.Cookie{Name: name, Value: value})
	}
	return &Client{http: client, baseURL: cfg.BaseURL}
}

// FetchGameList downloads the landing page and extracts the embedded
// catalog. A transport error, an error status, or a missing marker all
// propagate; there is no retry.
func (c *Client) FetchGameList(ctx context.Context) (*GameList, error) {
	res, err := c.http.R().SetContext(ctx).Get(c.baseURL)
	if err != nil {
		return nil, eris.Wrap(err, "bga: fetch page")
	}
	if res.IsError() {
		return nil, eris.Errorf("bga: fetch page: unexpected status %d", res.StatusCode())
	}

	return ExtractGameList(bytes.NewReader(res.Body()))
}
