// Package migrations embeds the goose SQL migrations for the PostgreSQL
// adapter.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
