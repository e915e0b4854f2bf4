package embed

import "embed"

// Assets contains the embedded edition content (one YAML file per edition).
//
//go:embed content/*.yaml
var Assets embed.FS
