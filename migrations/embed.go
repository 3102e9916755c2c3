// Package migrations embeds the goose SQL migrations so binaries can migrate
// without the files on disk.
package migrations

import "embed"

// FS holds every *.sql migration in this directory
//
//go:embed *.sql
var FS embed.FS
