package platform

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// recommendedSuffix is appended to the display label of the stream the
// service marks as recommended.
const recommendedSuffix = " (recommended)"

// Stream is a selectable platform stream offered by the service. Label is
// derived for display; the remaining fields pass through from the service
// verbatim.
type Stream struct {
	Label              string `json:"label" yaml:"label"`
	Key                string `json:"key" yaml:"key"`
	QuarkusCoreVersion string `json:"quarkusCoreVersion" yaml:"quarkusCoreVersion"`
	Recommended        bool   `json:"recommended" yaml:"recommended"`
}

// streamRecord is the wire shape of one entry of the /streams response.
type streamRecord struct {
	Key                string `yaml:"key"`
	QuarkusCoreVersion string `yaml:"quarkusCoreVersion"`
	Recommended        bool   `yaml:"recommended"`
}

// Streams fetches the platform streams the service offers, preserving the
// service's ordering. No deduplication or sorting is applied; presentation
// is the caller's concern.
//
// A record without a key fails the whole query. The list is small and comes
// from one authoritative service, so a clear error beats silently dropping
// a stream.
func (c *Client) Streams(ctx context.Context) ([]Stream, error) {
	body, err := c.fetch(ctx, c.apiURL+"/streams")
	if err != nil {
		return nil, err
	}

	var records []streamRecord
	if err := yaml.Unmarshal([]byte(body), &records); err != nil {
		return nil, fmt.Errorf("parse streams response: %w", err)
	}

	streams := make([]Stream, 0, len(records))
	for i, rec := range records {
		if rec.Key == "" {
			return nil, fmt.Errorf("stream record %d has no key", i)
		}
		streams = append(streams, Stream{
			Label:              streamLabel(rec.Key, rec.Recommended),
			Key:                rec.Key,
			QuarkusCoreVersion: rec.QuarkusCoreVersion,
			Recommended:        rec.Recommended,
		})
	}
	return streams, nil
}

// streamLabel derives the display label from a stream key. The key is a
// compound identifier like "io.quarkus.platform:3.8"; everything after the
// first colon is the version shown to the user.
func streamLabel(key string, recommended bool) string {
	label := key
	if idx := strings.Index(key, ":"); idx >= 0 {
		label = key[idx+1:]
	}
	if recommended {
		label += recommendedSuffix
	}
	return label
}

// RecommendedStream returns the first stream marked recommended, or the
// first stream when none is, or nil for an empty list.
func RecommendedStream(streams []Stream) *Stream {
	for i := range streams {
		if streams[i].Recommended {
			return &streams[i]
		}
	}
	if len(streams) > 0 {
		return &streams[0]
	}
	return nil
}
