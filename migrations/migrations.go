// Package migrations embeds the SQL schema of the service.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
