package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/bans"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/logs"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/roles"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same service
// code can run against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	Bans(db dbx.DBTX) bans.Repository
	Logs(db dbx.DBTX) logs.Repository
}
