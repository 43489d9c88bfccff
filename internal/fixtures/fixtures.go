// Package fixtures bundles sample feature creation requests with the binary.
package fixtures

import "embed"

// Names of the bundled requests.
const (
	Geode      = "feature_creation_request_geode.json"
	Minimal    = "feature_creation_request_minimal.json"
	Invalid    = "feature_creation_request_invalid.json"
	Incomplete = "feature_creation_request_incomplete.json"
)

//go:embed *.json
var FS embed.FS
