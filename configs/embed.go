// Package configs embeds the shipped game data and its JSON schemas
package configs

import _ "embed"

// CatalogJSON is the default catalog shipped with the binary
//
//go:embed catalog.json
var CatalogJSON []byte

// CatalogSchema validates catalog files before they are seeded
//
//go:embed schemas/catalog.schema.json
var CatalogSchema []byte
