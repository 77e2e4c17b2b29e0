// Package corpus embeds assets that must ship inside the binary.
package corpus

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
