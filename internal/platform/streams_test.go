package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quarkstart/internal/httpfetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamsBody = `
- key: "io.quarkus.platform:3.8"
  quarkusCoreVersion: "3.8.4"
  recommended: false
- key: "io.quarkus.platform:3.15"
  quarkusCoreVersion: "3.15.1"
  recommended: true
- key: "io.quarkus.platform:3.15"
  quarkusCoreVersion: "3.15.1"
  recommended: true
`

func TestStreams_DerivesLabelAndPassesFieldsThrough(t *testing.T) {
	client := NewWithFetcher("https://code.quarkus.io/api",
		fakeFetch(map[string]string{"/streams": `[{"key":"io.quarkus:1.2.3","quarkusCoreVersion":"1.2.3","recommended":true}]`}, nil))

	streams, err := client.Streams(context.Background())
	require.NoError(t, err)
	require.Len(t, streams, 1)

	assert.Equal(t, "1.2.3 (recommended)", streams[0].Label)
	assert.Equal(t, "io.quarkus:1.2.3", streams[0].Key)
	assert.Equal(t, "1.2.3", streams[0].QuarkusCoreVersion)
	assert.True(t, streams[0].Recommended)
}

func TestStreams_PreservesOrderWithoutDeduplication(t *testing.T) {
	client := NewWithFetcher("https://code.quarkus.io/api",
		fakeFetch(map[string]string{"/streams": streamsBody}, nil))

	streams, err := client.Streams(context.Background())
	require.NoError(t, err)
	require.Len(t, streams, 3)

	assert.Equal(t, "3.8", streams[0].Label)
	assert.Equal(t, "3.15 (recommended)", streams[1].Label)
	assert.Equal(t, streams[1], streams[2], "duplicates pass through untouched")
}

func TestStreams_RecordWithoutKeyFailsQuery(t *testing.T) {
	body := `
- key: "io.quarkus.platform:3.8"
- quarkusCoreVersion: "3.15.1"
`
	client := NewWithFetcher("https://code.quarkus.io/api",
		fakeFetch(map[string]string{"/streams": body}, nil))

	_, err := client.Streams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream record 1")
}

func TestStreams_FetchFailurePropagates(t *testing.T) {
	sentinel := errors.New("dns failure")
	client := NewWithFetcher("https://code.quarkus.io/api",
		func(ctx context.Context, url string) (string, error) { return "", sentinel })

	_, err := client.Streams(context.Background())
	assert.ErrorIs(t, err, sentinel)
}

func TestStreams_MalformedBodyFails(t *testing.T) {
	client := NewWithFetcher("https://code.quarkus.io/api",
		fakeFetch(map[string]string{"/streams": `{"not":"a list"}`}, nil))

	_, err := client.Streams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse streams response")
}

func TestStreams_ThroughRealFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/streams", r.URL.Path)
		fmt.Fprint(w, streamsBody)
	}))
	defer srv.Close()

	client := NewWithFetcher(srv.URL+"/api", httpfetch.Fetch)
	streams, err := client.Streams(context.Background())
	require.NoError(t, err)
	assert.Len(t, streams, 3)
}

func TestStreamLabel(t *testing.T) {
	tests := []struct {
		key         string
		recommended bool
		want        string
	}{
		{"io.quarkus.platform:3.15", true, "3.15 (recommended)"},
		{"io.quarkus.platform:3.8", false, "3.8"},
		{"no-colon-key", false, "no-colon-key"},
		{"a:b:c", false, "b:c"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, streamLabel(tc.key, tc.recommended))
	}
}

func TestRecommendedStream(t *testing.T) {
	streams := []Stream{
		{Key: "a:1"},
		{Key: "b:2", Recommended: true},
	}
	picked := RecommendedStream(streams)
	require.NotNil(t, picked)
	assert.Equal(t, "b:2", picked.Key)

	first := RecommendedStream([]Stream{{Key: "a:1"}})
	require.NotNil(t, first)
	assert.Equal(t, "a:1", first.Key)

	assert.Nil(t, RecommendedStream(nil))
}
