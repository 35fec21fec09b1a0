// Package migrations embeds the SQL schema for the submissions store.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
