package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/common"
)

type requirementKind int

const (
	kindNone requirementKind = iota
	kindAuthenticated
	kindRole
)

// Requirement is what an operation demands of its caller.
type Requirement struct {
	kind requirementKind
	role string
}

var (
	// None lets anyone through; no token is inspected.
	None = Requirement{kind: kindNone}
	// Authenticated needs any valid, unexpired token.
	Authenticated = Requirement{kind: kindAuthenticated}
)

// RequireRole needs a valid token carrying the role claim.
func RequireRole(role string) Requirement {
	return Requirement{kind: kindRole, role: role}
}

func (r Requirement) String() string {
	switch r.kind {
	case kindAuthenticated:
		return "authenticated"
	case kindRole:
		return "role:" + r.role
	default:
		return "none"
	}
}

// Principal is the caller as described by its token at issuance time.
type Principal struct {
	UserID    string
	Email     string
	Name      string
	Roles     []string
	ExpiresAt time.Time
}

func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenVerifier is satisfied by *Verifier.
type TokenVerifier interface {
	Parse(token string) (*Claims, error)
}

// Guard decides from token claims alone. It never looks at the store, so a
// role revoked after issuance keeps working until the token expires and a
// newly granted role needs a fresh login.
type Guard struct {
	verifier TokenVerifier
}

func NewGuard(v TokenVerifier) *Guard {
	return &Guard{verifier: v}
}

// Authorize checks the token found in ctx against req. For None it returns
// (nil, nil) without looking at the context.
func (g *Guard) Authorize(ctx context.Context, req Requirement) (*Principal, error) {
	if req.kind == kindNone {
		return nil, nil
	}

	raw, ok := TokenFromContext(ctx)
	if !ok {
		return nil, common.NewError(common.ErrorUnauthorized, "missing token")
	}

	claims, err := g.verifier.Parse(raw)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.NewError(common.ErrorUnauthorized, common.ErrTokenExpired.Error())
		}
		return nil, common.NewError(common.ErrorUnauthorized, common.ErrInvalidToken.Error())
	}

	p := &Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
		Roles:  []string(claims.Roles),
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}

	if req.kind == kindRole && !p.HasRole(req.role) {
		return nil, common.NewError(common.ErrorForbidden, "permission denied")
	}

	return p, nil
}
