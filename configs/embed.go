package configs

import "embed"

// Engines contains embedded browser-automation engine definitions
//
//go:embed engines/*.json
var Engines embed.FS
