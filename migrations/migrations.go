// Package migrations embeds the versioned schema files so a deployed
// binary can migrate without shipping the directory alongside it.
package migrations

import "embed"

//go:embed V*.sql
var FS embed.FS
