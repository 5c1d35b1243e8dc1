package migrations

import "embed"

// FS contains the embedded SQLite roster migrations.
//
//go:embed *.sql
var FS embed.FS
