package catalog

// Seed sources recorded on catalog.seeded events
const (
	SourceDefault = "default"
	SourceFile    = "file"
)

// SchemaName is the name the embedded catalog schema is registered under
const SchemaName = "catalog.schema.json"

// Log messages
const (
	LogMsgCatalogSeeded   = "Catalog seeded"
	LogMsgCatalogLoaded   = "Catalog file loaded"
	LogMsgCatalogMiss     = "Catalog lookup missed"
	LogMsgCacheInvalidate = "Catalog cache purged"
)
