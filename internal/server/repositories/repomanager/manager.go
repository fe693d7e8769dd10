// Package repomanager vends repositories bound to a connection or a running
// transaction and owns the database lifecycle: opening it and migrating the
// schema with goose.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountsvc/internal/dbx"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/roles"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
}
