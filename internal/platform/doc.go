// Package platform is the client for a code.quarkus.io-compatible code
// generation service.
//
// It answers two independent read-only questions about a service instance:
// which optional request parameters its download endpoint accepts
// (Capabilities), and which platform streams and extensions it offers
// (Streams, Extensions). It also builds and performs project download
// requests that honor the discovered capabilities.
//
// All queries go through a single fetch function that returns a response
// body as text. Queries share no state and may run concurrently; every call
// re-fetches over the network.
//
// Response bodies are parsed with yaml.v3. The service answers either YAML
// or JSON depending on the endpoint; YAML 1.2 is a superset of JSON, so one
// parser covers both.
package platform
