// Package cmsscan embeds the database migrations so the binary can apply them
// without access to the source tree.
package cmsscan

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose SQL migrations with the migrations/ prefix
// stripped, as expected by postgres.PgSQL.MigrateResults.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err) // the directory is fixed at compile time
	}

	return sub
}
