// Package migrations embeds the SQL schema migrations shipped with the
// binary so the store can initialize and upgrade itself without external
// files.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
