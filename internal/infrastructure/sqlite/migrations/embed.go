package migrations

import "embed"

// FS migraciones SQLite embebidas.
//
//go:embed *.sql
var FS embed.FS
