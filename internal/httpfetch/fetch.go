// Package httpfetch retrieves URLs over plain GET requests and returns the
// full response body as text.
//
// The fetcher follows 301/302 redirects itself instead of delegating to the
// http.Client, because the redirect target is computed as the origin of the
// original URL joined with the Location header value. A relative Location is
// assumed to be a path; this is a known limitation rather than full RFC
// redirect resolution. Absolute http(s) Location values are used verbatim.
//
// No timeout is imposed here. Callers that need bounded latency must pass a
// context with a deadline.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"quarkstart/pkg/logging"
)

// maxRedirects bounds the redirect chain so a cyclic or misbehaving target
// cannot loop forever.
const maxRedirects = 5

// StatusError reports a non-200, non-redirect HTTP response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s failed: %d %s", e.URL, e.Code, e.Status)
}

// noFollowClient disables the transport's own redirect handling so the
// bounded loop in Fetch sees 301/302 responses directly.
var noFollowClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// Fetch performs a GET request against rawURL and returns the complete
// response body as text. Transport errors and non-200 statuses fail the
// operation; 301/302 responses are followed up to maxRedirects hops.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	origin, err := originOf(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	target := rawURL
	for hop := 0; hop <= maxRedirects; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return "", err
		}

		resp, err := noFollowClient.Do(req)
		if err != nil {
			return "", err
		}

		switch resp.StatusCode {
		case http.StatusMovedPermanently, http.StatusFound:
			location := resp.Header.Get("Location")
			resp.Body.Close()
			if location == "" {
				// A redirect without a target is not followable.
				return "", &StatusError{URL: target, Code: resp.StatusCode, Status: resp.Status}
			}
			next := redirectTarget(origin, location)
			logging.Debug("Fetch", "Following %d redirect from %s to %s", resp.StatusCode, target, next)
			target = next

		case http.StatusOK:
			data, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return "", fmt.Errorf("read response from %s: %w", target, err)
			}
			return string(data), nil

		default:
			resp.Body.Close()
			return "", &StatusError{URL: target, Code: resp.StatusCode, Status: resp.Status}
		}
	}

	return "", fmt.Errorf("GET %s failed: more than %d redirects", rawURL, maxRedirects)
}

// redirectTarget computes the next URL for a redirect. Absolute http(s)
// targets are taken as-is; anything else is treated as a path under the
// origin of the originally requested URL.
func redirectTarget(origin, location string) string {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location
	}
	return origin + location
}

// originOf returns scheme://host for a URL, with no trailing slash.
func originOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("missing scheme or host")
	}
	return u.Scheme + "://" + u.Host, nil
}
