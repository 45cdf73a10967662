// Package migrations carries the embedded schema migration files so the
// binary can provision its own database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
