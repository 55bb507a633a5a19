// Package repomanager wires repositories to a database handle and runs
// migrations. The manager hands out repositories bound to either the pool
// or a transaction, whichever dbx.DBTX the caller passes.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/edgcastillo/saveddit/internal/dbx"
	"github.com/edgcastillo/saveddit/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
