// Package services contains server-side business logic. AccountService runs
// every account operation as guard, then validation, then the store work.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"github.com/dmitrijs2005/accountsvc/internal/cryptox"
	"github.com/dmitrijs2005/accountsvc/internal/dbx"
	"github.com/dmitrijs2005/accountsvc/internal/server/auth"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountsvc/internal/server/validation"
)

// Messages returned on success.
const (
	MsgRegistered      = "User registered successfully"
	MsgPasswordChanged = "Password changed"
	MsgUserDeleted     = "User deleted successfully"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgUserNotFound       = "user not found"
	msgProfileNotFound    = "user profile not found"
	msgUserOrRoleNotFound = "user/role not found"
	msgIncorrectPassword  = "Incorrect password."
	msgPasswordTooLong    = "Password cannot exceed 72 bytes."
)

// TokenIssuer is satisfied by *auth.Issuer.
type TokenIssuer interface {
	Issue(user *models.User, roles []string) (string, error)
}

// Authorizer is satisfied by *auth.Guard.
type Authorizer interface {
	Authorize(ctx context.Context, req auth.Requirement) (*auth.Principal, error)
}

type RegisterInput struct {
	Email       string
	Name        string
	PhoneNumber string
	Password    string
}

type LoginResult struct {
	Token    string
	UserName string
}

type UpdateProfileInput struct {
	Name        string
	PhoneNumber string
}

type ChangePasswordInput struct {
	OldPassword        string
	NewPassword        string
	ConfirmNewPassword string
}

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher
	issuer      TokenIssuer
	guard       Authorizer
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher,
	issuer TokenIssuer, guard Authorizer) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
		guard:       guard,
	}
}

// internalError keeps the cause for logs; callers only ever see the kind.
func internalError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrorInternal, err)
}

func (s *AccountService) hash(password string) (string, error) {
	h, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return "", common.NewError(common.ErrorInvalidInput, msgPasswordTooLong)
		}
		return "", internalError("hash password", err)
	}
	return h, nil
}

// Register creates the identity and grants it the User role in one
// transaction.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if _, err := s.guard.Authorize(ctx, auth.None); err != nil {
		return "", err
	}
	if err := validation.Register(in.Email, in.Name, in.PhoneNumber, in.Password).Err(); err != nil {
		return "", err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:        in.Email,
		UserName:     in.Email,
		Name:         in.Name,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		roles := s.repomanager.Roles(tx)

		ok, err := roles.Exists(ctx, models.RoleUser)
		if err != nil {
			return internalError("check role", err)
		}
		if !ok {
			return common.NewError(common.ErrorConflict, fmt.Sprintf("Role '%s' does not exist.", models.RoleUser))
		}

		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.NewError(common.ErrorConflict, fmt.Sprintf("Email '%s' is already taken.", in.Email))
			}
			return internalError("create user", err)
		}

		if err := roles.AddToRole(ctx, user.ID, models.RoleUser); err != nil {
			return fmt.Errorf("add role: %v: %w", err,
				common.NewError(common.ErrorConflict, fmt.Sprintf("Could not assign role '%s'.", models.RoleUser)))
		}
		return nil
	})
	if err != nil {
		var kindErr *common.Error
		if errors.As(err, &kindErr) || errors.Is(err, common.ErrorInternal) {
			return "", err
		}
		return "", internalError("register", err)
	}

	return MsgRegistered, nil
}

// Login answers an unknown email and a wrong password identically, spending
// a bcrypt comparison in both cases.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if _, err := s.guard.Authorize(ctx, auth.None); err != nil {
		return nil, err
	}
	if err := validation.Login(email, password).Err(); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(s.hasher.DummyHash(), password)
			return nil, common.NewError(common.ErrorUnauthorized, msgInvalidCredentials)
		}
		return nil, internalError("find user", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return nil, internalError("verify password", err)
	}
	if !ok {
		return nil, common.NewError(common.ErrorUnauthorized, msgInvalidCredentials)
	}

	roles, err := s.repomanager.Roles(s.db).GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, internalError("load roles", err)
	}

	token, err := s.issuer.Issue(user, roles)
	if err != nil {
		return nil, internalError("issue token", err)
	}

	return &LoginResult{Token: token, UserName: user.UserName}, nil
}

func (s *AccountService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	if _, err := s.guard.Authorize(ctx, auth.Authenticated); err != nil {
		return nil, err
	}
	if err := validation.GetProfile(email).Err(); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewError(common.ErrorNotFound, msgUserNotFound)
		}
		return nil, internalError("find user", err)
	}

	return user.Profile(), nil
}

// UpdateProfile acts on the caller named by the token subject.
func (s *AccountService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	p, err := s.guard.Authorize(ctx, auth.Authenticated)
	if err != nil {
		return nil, err
	}
	if err := validation.UpdateProfile(in.Name, in.PhoneNumber).Err(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewError(common.ErrorNotFound, msgUserNotFound)
		}
		return nil, internalError("find user", err)
	}

	user.Name = in.Name
	user.PhoneNumber = in.PhoneNumber

	if err := repo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewError(common.ErrorNotFound, msgUserNotFound)
		}
		return nil, internalError("update user", err)
	}

	return user.Profile(), nil
}

func (s *AccountService) ChangePassword(ctx context.Context, in ChangePasswordInput) (string, error) {
	p, err := s.guard.Authorize(ctx, auth.Authenticated)
	if err != nil {
		return "", err
	}
	if err := validation.ChangePassword(in.OldPassword, in.NewPassword, in.ConfirmNewPassword).Err(); err != nil {
		return "", err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.ErrorNotFound, msgUserNotFound)
		}
		return "", internalError("find user", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, in.OldPassword)
	if err != nil {
		return "", internalError("verify password", err)
	}
	if !ok {
		return "", common.NewError(common.ErrorInvalidInput, msgIncorrectPassword)
	}

	hash, err := s.hash(in.NewPassword)
	if err != nil {
		return "", err
	}

	if err := repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.ErrorNotFound, msgUserNotFound)
		}
		return "", internalError("update password", err)
	}

	return MsgPasswordChanged, nil
}

// DeleteAccount removes the identity whose username (its email) matches.
func (s *AccountService) DeleteAccount(ctx context.Context, username string) (string, error) {
	if _, err := s.guard.Authorize(ctx, auth.RequireRole(models.RoleAdmin)); err != nil {
		return "", err
	}
	if err := validation.DeleteAccount(username).Err(); err != nil {
		return "", err
	}

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.ErrorNotFound, msgProfileNotFound)
		}
		return "", internalError("find user", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Roles(tx).RemoveAll(ctx, user.ID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.ErrorNotFound, msgProfileNotFound)
		}
		return "", internalError("delete user", err)
	}

	return MsgUserDeleted, nil
}

// AssignAdminRole grants Admin. The promoted user's existing tokens keep
// their old role claims until the next login.
func (s *AccountService) AssignAdminRole(ctx context.Context, email string) (string, error) {
	if _, err := s.guard.Authorize(ctx, auth.RequireRole(models.RoleAdmin)); err != nil {
		return "", err
	}
	if err := validation.AssignRole(email).Err(); err != nil {
		return "", err
	}

	user, err := s.grantAdmin(ctx, email)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s has been made an %s", user.Name, models.RoleAdmin), nil
}

func (s *AccountService) grantAdmin(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewError(common.ErrorNotFound, msgUserOrRoleNotFound)
		}
		return nil, internalError("find user", err)
	}

	roles := s.repomanager.Roles(s.db)

	ok, err := roles.Exists(ctx, models.RoleAdmin)
	if err != nil {
		return nil, internalError("check role", err)
	}
	if !ok {
		return nil, common.NewError(common.ErrorNotFound, msgUserOrRoleNotFound)
	}

	if err := roles.AddToRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("add role: %v: %w", err,
			common.NewError(common.ErrorConflict, fmt.Sprintf("Could not assign role '%s'.", models.RoleAdmin)))
	}

	return user, nil
}

func (s *AccountService) ListAllUsers(ctx context.Context) ([]*models.Profile, error) {
	if _, err := s.guard.Authorize(ctx, auth.RequireRole(models.RoleAdmin)); err != nil {
		return nil, err
	}

	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, internalError("list users", err)
	}
	return profiles(users), nil
}

func (s *AccountService) ListAllAdmins(ctx context.Context) ([]*models.Profile, error) {
	if _, err := s.guard.Authorize(ctx, auth.RequireRole(models.RoleAdmin)); err != nil {
		return nil, err
	}

	users, err := s.repomanager.Roles(s.db).ListUsersInRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, internalError("list admins", err)
	}
	return profiles(users), nil
}

// EnsureAdmin grants Admin to an already registered account without any
// token check. It is meant for process startup only and is not reachable
// over RPC.
func (s *AccountService) EnsureAdmin(ctx context.Context, email string) error {
	_, err := s.grantAdmin(ctx, email)
	return err
}

func profiles(users []*models.User) []*models.Profile {
	result := make([]*models.Profile, 0, len(users))
	for _, u := range users {
		result = append(result, u.Profile())
	}
	return result
}
