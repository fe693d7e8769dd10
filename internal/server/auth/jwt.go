// Package auth issues and verifies the service's signed access tokens and
// decides, per operation, whether the caller's token is good enough.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenValidity is the lifetime of an access token.
const DefaultTokenValidity = 10 * time.Hour

var signingMethod = jwt.SigningMethodHS512

// RoleList is the "role" claim. A single role is encoded as a plain string
// and several as an array, which is what most JWT stacks emit; both forms
// decode.
type RoleList []string

func (r RoleList) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]string(r))
}

func (r *RoleList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*r = RoleList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("role claim: %w", err)
	}
	*r = RoleList(many)
	return nil
}

// Claims carried by an access token: sub, iss, aud, exp, nbf, iat and jti
// from the registered set plus email, name (the login user name) and one
// role entry per role.
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles RoleList `json:"role,omitempty"`
}

type settings struct {
	now func() time.Time
}

// Option tweaks an Issuer or Verifier.
type Option func(*settings)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func newSettings(opts []Option) settings {
	s := settings{now: time.Now}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func checkSigningConfig(secret []byte, issuer, audience string) error {
	switch {
	case len(secret) == 0:
		return errors.New("token signing secret is empty")
	case issuer == "":
		return errors.New("token issuer is empty")
	case audience == "":
		return errors.New("token audience is empty")
	}
	return nil
}

// Issuer mints HS512 access tokens.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	settings
}

// NewIssuer fails on an empty secret, issuer or audience; callers treat that
// as a startup error. A non-positive ttl means DefaultTokenValidity.
func NewIssuer(secret []byte, issuer, audience string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if err := checkSigningConfig(secret, issuer, audience); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTokenValidity
	}
	return &Issuer{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		settings: newSettings(opts),
	}, nil
}

// Issue signs a token for user holding roles. Every call gets a fresh jti, so
// two tokens minted for the same user in the same second still differ.
func (i *Issuer) Issue(user *models.User, roles []string) (string, error) {
	now := i.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Email: user.Email,
		Name:  user.UserName,
		Roles: append(RoleList(nil), roles...),
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verifier checks signature, algorithm, issuer, audience and expiry.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
	settings
}

func NewVerifier(secret []byte, issuer, audience string, opts ...Option) (*Verifier, error) {
	if err := checkSigningConfig(secret, issuer, audience); err != nil {
		return nil, err
	}
	return &Verifier{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		settings: newSettings(opts),
	}, nil
}

// Parse returns the token's claims. Expired tokens yield
// common.ErrTokenExpired; every other failure wraps common.ErrInvalidToken.
func (v *Verifier) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	return claims, nil
}
