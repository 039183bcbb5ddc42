package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronov/linkvault/internal/dbx"
	"github.com/avoronov/linkvault/internal/server/repositories/bookmarks"
	"github.com/avoronov/linkvault/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// the same queries on a plain connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Bookmarks(db dbx.DBTX) bookmarks.Repository
}
