package platform

import (
	"context"
	"net/url"
	"path"
	"strings"

	"quarkstart/internal/httpfetch"
)

// FetchFunc retrieves a URL and returns its response body as text.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Client queries a code generation service. The zero value is not usable;
// construct with New or NewWithFetcher.
type Client struct {
	apiURL string
	fetch  FetchFunc
}

// New creates a client for the service rooted at apiURL, for example
// "https://code.quarkus.io/api".
func New(apiURL string) *Client {
	return NewWithFetcher(apiURL, httpfetch.Fetch)
}

// NewWithFetcher creates a client with a custom fetch function. Tests use
// this to answer queries without a network.
func NewWithFetcher(apiURL string, fetch FetchFunc) *Client {
	return &Client{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		fetch:  fetch,
	}
}

// APIURL returns the configured base API URL.
func (c *Client) APIURL() string {
	return c.apiURL
}

// dirURL returns the base API URL with its last path segment removed. For
// "https://code.quarkus.io/api" this is "https://code.quarkus.io". The
// service hosts its interface description next to the API root, not under
// it.
func (c *Client) dirURL() string {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return c.apiURL
	}
	dir := path.Dir(u.Path)
	if dir == "." || dir == "/" {
		dir = ""
	}
	u.Path = dir
	u.RawQuery = ""
	return u.String()
}
