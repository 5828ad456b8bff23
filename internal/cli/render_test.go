package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"quarkstart/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range ValidOutputFormats {
		assert.NoError(t, ValidateOutputFormat(string(format)))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestRenderStreams_JSONRoundTrips(t *testing.T) {
	streams := []platform.Stream{
		{Label: "3.15 (recommended)", Key: "io.quarkus.platform:3.15", QuarkusCoreVersion: "3.15.1", Recommended: true},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderStreams(&buf, OutputFormatJSON, streams))

	var decoded []platform.Stream
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, streams, decoded)
}

func TestRenderStreams_YAML(t *testing.T) {
	streams := []platform.Stream{{Label: "3.8", Key: "io.quarkus.platform:3.8"}}

	var buf bytes.Buffer
	require.NoError(t, RenderStreams(&buf, OutputFormatYAML, streams))

	var decoded []platform.Stream
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, streams, decoded)
}

func TestRenderStreams_TableContainsKeyAndVersion(t *testing.T) {
	streams := []platform.Stream{
		{Label: "3.15 (recommended)", Key: "io.quarkus.platform:3.15", QuarkusCoreVersion: "3.15.1", Recommended: true},
		{Label: "3.8", Key: "io.quarkus.platform:3.8", QuarkusCoreVersion: "3.8.4"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderStreams(&buf, OutputFormatTable, streams))

	out := buf.String()
	assert.Contains(t, out, "io.quarkus.platform:3.15")
	assert.Contains(t, out, "3.8.4")
	assert.Contains(t, out, "QUARKUS CORE")
}

func TestRenderExtensions_Table(t *testing.T) {
	extensions := []platform.Extension{
		{ID: "io.quarkus:quarkus-resteasy", Name: "RESTEasy Classic", Category: "Web"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderExtensions(&buf, OutputFormatTable, extensions))
	assert.Contains(t, buf.String(), "RESTEasy Classic")
}

func TestRenderCapabilities_Table(t *testing.T) {
	var buf bytes.Buffer
	caps := platform.Capabilities{SupportsNoExamplesParameter: true}
	require.NoError(t, RenderCapabilities(&buf, OutputFormatTable, caps))

	out := buf.String()
	assert.Contains(t, out, "no examples (ne)")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "no starter code (nc)")
}
