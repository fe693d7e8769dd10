package roles

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLRepository(db), mock
}

const (
	existsQ   = `^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+roles\s+WHERE\s+name\s*=\s*\$1\)$`
	addQ      = `(?s)^INSERT\s+INTO\s+user_roles\s*\(user_id,\s*role_name\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`
	userRoleQ = `^SELECT\s+role_name\s+FROM\s+user_roles\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+role_name$`
	inRoleQ   = `(?s)^SELECT\s+u\.id,.*JOIN\s+user_roles\s+ur\s+ON\s+ur\.user_id\s*=\s*u\.id\s+WHERE\s+ur\.role_name\s*=\s*\$1\s+ORDER\s+BY\s+u\.email\s*$`
	removeQ   = `^DELETE\s+FROM\s+user_roles\s+WHERE\s+user_id\s*=\s*\$1$`
)

func TestExists(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(existsQ).WithArgs("Admin").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsQ).WithArgs("Root").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(existsQ).WithArgs("Admin").WillReturnError(errors.New("down"))

	ok, err := repo.Exists(context.Background(), "Admin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), "Root")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Exists(context.Background(), "Admin")
	assert.ErrorContains(t, err, "db error: down")
}

func TestAddToRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(addQ).WithArgs("u-1", "Admin").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(addQ).WithArgs("u-1", "Admin").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(addQ).WithArgs("u-1", "Admin").WillReturnError(errors.New("fk"))

	assert.NoError(t, repo.AddToRole(context.Background(), "u-1", "Admin"))
	assert.NoError(t, repo.AddToRole(context.Background(), "u-1", "Admin"))
	assert.ErrorContains(t, repo.AddToRole(context.Background(), "u-1", "Admin"), "db error: fk")
}

func TestGetUserRoles(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(userRoleQ).WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"role_name"}).AddRow("Admin").AddRow("User"))
	mock.ExpectQuery(userRoleQ).WithArgs("u-2").
		WillReturnRows(sqlmock.NewRows([]string{"role_name"}))

	got, err := repo.GetUserRoles(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin", "User"}, got)

	got, err = repo.GetUserRoles(context.Background(), "u-2")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestListUsersInRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(inRoleQ).WithArgs("Admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "name", "phone_number", "password_hash"}).
			AddRow("u-1", "root@example.com", "root@example.com", "Root", "12", "h"))
	mock.ExpectQuery(inRoleQ).WithArgs("Admin").WillReturnError(sql.ErrConnDone)

	got, err := repo.ListUsersInRole(context.Background(), "Admin")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "root@example.com", got[0].Email)

	_, err = repo.ListUsersInRole(context.Background(), "Admin")
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestRemoveAll(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(removeQ).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(removeQ).WithArgs("u-1").WillReturnError(errors.New("locked"))

	assert.NoError(t, repo.RemoveAll(context.Background(), "u-1"))
	assert.ErrorContains(t, repo.RemoveAll(context.Background(), "u-1"), "locked")
}
