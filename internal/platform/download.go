package platform

import (
	"context"
	"net/url"
)

// clientName identifies this tool to the service for its usage statistics.
const clientName = "quarkstart"

// ProjectSpec describes a project skeleton to request from the service.
type ProjectSpec struct {
	GroupID    string
	ArtifactID string
	Version    string
	BuildTool  string
	StreamKey  string
	Extensions []string

	// NoExamples and NoCode are requests, not guarantees: the matching
	// query parameter is only sent when the capability set says the
	// service accepts it. Legacy instances reject unknown parameters.
	NoExamples bool
	NoCode     bool
}

// DownloadURL builds the download request URL for spec, gated by caps.
func (c *Client) DownloadURL(spec ProjectSpec, caps Capabilities) string {
	q := url.Values{}
	q.Set("cn", clientName)
	if spec.GroupID != "" {
		q.Set("g", spec.GroupID)
	}
	if spec.ArtifactID != "" {
		q.Set("a", spec.ArtifactID)
	}
	if spec.Version != "" {
		q.Set("v", spec.Version)
	}
	if spec.BuildTool != "" {
		q.Set("b", spec.BuildTool)
	}
	if spec.StreamKey != "" {
		q.Set("S", spec.StreamKey)
	}
	for _, ext := range spec.Extensions {
		q.Add("e", ext)
	}
	if spec.NoExamples && caps.SupportsNoExamplesParameter {
		q.Set(noExamplesParam, "true")
	}
	if spec.NoCode && caps.SupportsNoCodeParameter {
		q.Set(noCodeParam, "true")
	}
	return c.apiURL + "/download?" + q.Encode()
}

// Download requests a generated project skeleton and returns the raw zip
// payload. The fetcher buffers bodies as strings; zip bytes round-trip
// through a Go string unchanged.
func (c *Client) Download(ctx context.Context, spec ProjectSpec, caps Capabilities) ([]byte, error) {
	body, err := c.fetch(ctx, c.DownloadURL(spec, caps))
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}
