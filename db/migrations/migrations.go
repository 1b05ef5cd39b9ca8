package migrations

import "embed"

// FS embeds the SQL migration files in this directory for the
// golang-migrate iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest migration; db.Migrate targets it.
const Version = 1
