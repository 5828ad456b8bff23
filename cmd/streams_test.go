package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quarkstart/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns its
// combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func newStreamsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/streams", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"key":"io.quarkus.platform:3.8","quarkusCoreVersion":"3.8.4","recommended":false},
			{"key":"io.quarkus.platform:3.15","quarkusCoreVersion":"3.15.1","recommended":true}
		]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStreamsCommand_JSONOutput(t *testing.T) {
	srv := newStreamsServer(t)

	out, err := executeCommand(t,
		"streams", "-o", "json",
		"--api-url", srv.URL+"/api",
		"--config-path", t.TempDir())
	require.NoError(t, err)

	var streams []platform.Stream
	require.NoError(t, json.Unmarshal([]byte(out), &streams))
	require.Len(t, streams, 2)
	assert.Equal(t, "3.15 (recommended)", streams[1].Label)
}

func TestStreamsCommand_TableOutput(t *testing.T) {
	srv := newStreamsServer(t)

	out, err := executeCommand(t,
		"streams", "-o", "table",
		"--api-url", srv.URL+"/api",
		"--config-path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "io.quarkus.platform:3.8")
	assert.Contains(t, out, "3.15.1")
}

func TestStreamsCommand_InvalidOutputFormat(t *testing.T) {
	_, err := executeCommand(t,
		"streams", "-o", "bogus",
		"--api-url", "http://localhost:1/api",
		"--config-path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestStreamsCommand_ServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := executeCommand(t,
		"streams", "-o", "json",
		"--api-url", srv.URL+"/api",
		"--config-path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
