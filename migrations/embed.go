// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
package migrations

import "embed"

// FS holds the snapshot table migrations.
//
//go:embed *.sql
var FS embed.FS
