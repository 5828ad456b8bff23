package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is one entry of the service's extension catalog.
type Extension struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Extensions fetches the extension catalog for the given stream key. An
// empty streamKey asks for the service's current recommended platform.
// Ordering follows the service response.
func (c *Client) Extensions(ctx context.Context, streamKey string) ([]Extension, error) {
	target := c.apiURL + "/extensions"
	if streamKey != "" {
		q := url.Values{}
		q.Set("platformOnly", "false")
		q.Set("streamKey", streamKey)
		target += "?" + q.Encode()
	}

	body, err := c.fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	var extensions []Extension
	if err := yaml.Unmarshal([]byte(body), &extensions); err != nil {
		return nil, fmt.Errorf("parse extensions response: %w", err)
	}
	return extensions, nil
}

// FilterExtensions returns the extensions whose id, name or description
// contains the given substring, case-insensitively. An empty search returns
// the input unchanged.
func FilterExtensions(extensions []Extension, search string) []Extension {
	if search == "" {
		return extensions
	}
	needle := strings.ToLower(search)
	var matched []Extension
	for _, ext := range extensions {
		if strings.Contains(strings.ToLower(ext.ID), needle) ||
			strings.Contains(strings.ToLower(ext.Name), needle) ||
			strings.Contains(strings.ToLower(ext.Description), needle) {
			matched = append(matched, ext)
		}
	}
	return matched
}
