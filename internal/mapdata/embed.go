// Package mapdata provides embedded map presets and utilities for loading
// them.
package mapdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
