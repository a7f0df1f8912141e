package migrations

import "embed"

// FS migraciones PostgreSQL embebidas en el binario.
//
//go:embed *.sql
var FS embed.FS
