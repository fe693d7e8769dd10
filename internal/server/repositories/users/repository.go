package users

import (
	"context"

	"github.com/dmitrijs2005/accountsvc/internal/server/models"
)

// Repository is the identity part of the credential store. Lookups by email
// ignore case.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.User, error)
}
