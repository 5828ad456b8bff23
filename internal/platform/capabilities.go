package platform

import (
	"context"
	"fmt"

	"quarkstart/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Parameter names the download endpoint may or may not accept, depending on
// the age of the service instance. Sending them to a service that does not
// know them fails the request, hence the discovery step.
const (
	noExamplesParam = "ne"
	noCodeParam     = "nc"
)

// downloadEndpointPath is the download operation's path inside the
// service's interface description.
const downloadEndpointPath = "/api/download"

// Candidate locations of the interface description, relative to the
// directory of the base API URL. Newer service instances serve it under
// /q/openapi, older ones under /openapi.
const (
	openAPIPathPrimary  = "/q/openapi"
	openAPIPathFallback = "/openapi"
)

// Capabilities are the optional download parameters a service instance
// accepts. Immutable once computed.
type Capabilities struct {
	SupportsNoExamplesParameter bool `json:"supportsNoExamplesParameter" yaml:"supportsNoExamplesParameter"`
	SupportsNoCodeParameter     bool `json:"supportsNoCodeParameter" yaml:"supportsNoCodeParameter"`
}

// DefaultCapabilities returns the capability set assumed when discovery is
// skipped: no optional parameter is supported.
func DefaultCapabilities() Capabilities {
	return Capabilities{}
}

// Capabilities fetches the service's interface description and derives
// which optional download parameters it accepts.
//
// The primary discovery URL is tried first; any failure there falls back to
// the legacy URL, and only a failure of both surfaces as an error. A
// document that parses but lacks the expected shape is not an error: every
// missing path segment degrades to false.
func (c *Client) Capabilities(ctx context.Context) (Capabilities, error) {
	dir := c.dirURL()

	body, err := c.fetch(ctx, dir+openAPIPathPrimary)
	if err != nil {
		logging.Debug("Platform", "Discovery via %s failed (%v), trying %s", openAPIPathPrimary, err, openAPIPathFallback)
		body, err = c.fetch(ctx, dir+openAPIPathFallback)
		if err != nil {
			return Capabilities{}, err
		}
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(body), &doc); err != nil {
		return Capabilities{}, fmt.Errorf("parse interface description: %w", err)
	}

	operation := mapAt(mapAt(mapAt(doc, "paths"), downloadEndpointPath), "get")
	parameters := seqAt(operation, "parameters")

	return Capabilities{
		SupportsNoExamplesParameter: hasParameterNamed(parameters, noExamplesParam),
		SupportsNoCodeParameter:     hasParameterNamed(parameters, noCodeParam),
	}, nil
}

// hasParameterNamed reports whether any parameter definition in the list
// has exactly the given name.
func hasParameterNamed(parameters []any, name string) bool {
	for _, p := range parameters {
		def, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if str(def, "name") == name {
			return true
		}
	}
	return false
}
