package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/accountsvc/internal/dbx"
	"github.com/dmitrijs2005/accountsvc/internal/server/migrations"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/roles"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

var gooseDialects = map[string]string{
	DriverPostgres: "pgx",
	DriverSQLite:   "sqlite3",
}

// SQLRepositoryManager serves both drivers; only the migration dialect
// differs between them.
type SQLRepositoryManager struct {
	driver string
}

// NewRepositoryManager fails for drivers other than DriverPostgres and
// DriverSQLite.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	if _, ok := gooseDialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	return &SQLRepositoryManager{driver: driver}, nil
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Roles(db dbx.DBTX) roles.Repository {
	return roles.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. goose keeps its settings in
// package state, so concurrent calls with different drivers are not safe.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(gooseDialects[m.driver]); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// Open connects and pings. SQLite is limited to a single connection since it
// serialises writers anyway.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if _, ok := gooseDialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}
