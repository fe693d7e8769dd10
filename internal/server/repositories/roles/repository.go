package roles

import (
	"context"

	"github.com/dmitrijs2005/accountsvc/internal/server/models"
)

// Repository manages role membership. Role names themselves are seeded by
// the migrations.
type Repository interface {
	Exists(ctx context.Context, role string) (bool, error)
	// AddToRole is idempotent: adding an existing membership is not an error.
	AddToRole(ctx context.Context, userID, role string) error
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	ListUsersInRole(ctx context.Context, role string) ([]*models.User, error)
	RemoveAll(ctx context.Context, userID string) error
}
