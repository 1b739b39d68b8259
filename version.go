package snapshot

import _ "embed"

// Version is the release version of the exporter.
//
//go:embed VERSION
var Version string
