package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountsvc/internal/dbx"
	"github.com/dmitrijs2005/accountsvc/internal/server/auth"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	rolesrepo "github.com/dmitrijs2005/accountsvc/internal/server/repositories/roles"
	usersrepo "github.com/dmitrijs2005/accountsvc/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
	gotKey string

	updateErr error
	updated   *models.User

	updatePassErr error
	newHash       string

	deleteErr error
	deletedID string

	listOut []*models.User
	listErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-new"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) get(key string) (*models.User, error) {
	f.gotKey = key
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.getOut
	return &cp, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return f.get(email)
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return f.get(id)
}

func (f *fakeUsersRepo) Update(_ context.Context, u *models.User) error {
	f.updated = u
	return f.updateErr
}

func (f *fakeUsersRepo) UpdatePassword(_ context.Context, _ string, hash string) error {
	f.newHash = hash
	return f.updatePassErr
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeUsersRepo) List(context.Context) ([]*models.User, error) {
	return f.listOut, f.listErr
}

type fakeRolesRepo struct {
	missing   bool
	existsErr error

	addErr error
	added  []string

	userRoles    []string
	userRolesErr error

	inRole    []*models.User
	inRoleErr error

	removeErr error
	removed   string
}

func (f *fakeRolesRepo) Exists(context.Context, string) (bool, error) {
	return !f.missing, f.existsErr
}

func (f *fakeRolesRepo) AddToRole(_ context.Context, userID, role string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, userID+":"+role)
	return nil
}

func (f *fakeRolesRepo) GetUserRoles(context.Context, string) ([]string, error) {
	return f.userRoles, f.userRolesErr
}

func (f *fakeRolesRepo) ListUsersInRole(context.Context, string) ([]*models.User, error) {
	return f.inRole, f.inRoleErr
}

func (f *fakeRolesRepo) RemoveAll(_ context.Context, userID string) error {
	f.removed = userID
	return f.removeErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRolesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Roles(dbx.DBTX) rolesrepo.Repository          { return m.r }

type fakeHasher struct {
	hashErr error

	verifyOK    bool
	verifyErr   error
	verifyCalls []string
	hashCalls   int
}

func (f *fakeHasher) Hash(password string) (string, error) {
	f.hashCalls++
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(hash, _ string) (bool, error) {
	f.verifyCalls = append(f.verifyCalls, hash)
	return f.verifyOK, f.verifyErr
}

func (f *fakeHasher) DummyHash() string { return "dummy" }

type fakeIssuer struct {
	err      error
	gotUser  *models.User
	gotRoles []string
}

func (f *fakeIssuer) Issue(u *models.User, roles []string) (string, error) {
	f.gotUser, f.gotRoles = u, roles
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + u.ID, nil
}

type fakeGuard struct {
	principal *auth.Principal
	err       error
	got       []auth.Requirement
}

func (f *fakeGuard) Authorize(_ context.Context, req auth.Requirement) (*auth.Principal, error) {
	f.got = append(f.got, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.principal, nil
}
