package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/storefront-api/internal/config"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

// SigningMethod is the only algorithm tokens are signed with or accepted in.
var SigningMethod = jwt.SigningMethodHS256

var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload of a session token.
type Claims struct {
	User *principal.Principal `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// verifiedClaims also accepts tokens from before the nested "user" claim,
// where role and id fields sat at the top level.
type verifiedClaims struct {
	User *principal.Principal `json:"user,omitempty"`
	principal.Principal
	jwt.RegisteredClaims
}

type TokenOptions struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// TokenManager issues and verifies session tokens.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenManager(opts TokenOptions) (*TokenManager, error) {
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, &config.ConfigError{Key: "JWT_SECRET", Reason: "must be set"}
	}
	if opts.TTL <= 0 {
		opts.TTL = 7 * 24 * time.Hour
	}
	return &TokenManager{
		secret:   []byte(opts.Secret),
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		now:      time.Now,
	}, nil
}

func NewTokenManagerFromConfig(cfg *config.Config) (*TokenManager, error) {
	return NewTokenManager(TokenOptions{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	})
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs a fresh token for p. Every call gets its own jti.
func (m *TokenManager) Issue(p principal.Principal) (string, error) {
	if !p.Role.Valid() {
		return "", fmt.Errorf("issue token: invalid role %q", p.Role)
	}
	sub := p.Subject()
	if sub == "" {
		return "", fmt.Errorf("issue token: principal has no %s id", p.Role)
	}

	now := m.now()
	claims := Claims{
		User: &p,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   sub,
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(SigningMethod, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature, algorithm, issuer, audience and expiry and returns
// the asserted principal. Every failure wraps ErrInvalidToken.
func (m *TokenManager) Verify(raw string) (principal.Principal, error) {
	var claims verifiedClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{SigningMethod.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return principal.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return principal.Principal{}, ErrInvalidToken
	}

	p := claims.Principal
	if claims.User != nil {
		p = *claims.User
	}
	// a signed token must still name a known role and that role's own id
	if !p.Role.Valid() {
		return principal.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, p.Role)
	}
	if _, ok := p.Identifier(); !ok {
		return principal.Principal{}, fmt.Errorf("%w: no %s id", ErrInvalidToken, p.Role)
	}
	return p, nil
}
