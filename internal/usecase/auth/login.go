package auth

import (
	"context"
	"log/slog"

	authpkg "github.com/BruksfildServices01/storefront-api/internal/auth"
	"github.com/BruksfildServices01/storefront-api/internal/domain/account"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/throttle"
)

type LoginInput struct {
	Kind     principal.Role
	Email    string
	Password string
}

type Login struct {
	store  account.Store
	hasher *authpkg.PasswordHasher
	tokens *authpkg.TokenManager
	guard  throttle.Guard
	log    *slog.Logger
}

func NewLogin(
	store account.Store,
	hasher *authpkg.PasswordHasher,
	tokens *authpkg.TokenManager,
	guard throttle.Guard,
	log *slog.Logger,
) *Login {
	if guard == nil {
		guard = throttle.Noop{}
	}
	return &Login{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		guard:  guard,
		log:    log,
	}
}

// Execute answers ErrInvalidCredentials for both an unknown email and a wrong
// password, after the same amount of hashing work.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*Session, error) {
	key := throttle.Key(string(in.Kind), in.Email)

	locked, err := uc.guard.Locked(ctx, key)
	if err != nil {
		uc.log.Warn("login throttle unavailable", slog.Any("error", err))
	}
	if locked {
		return nil, ErrTooManyAttempts
	}

	acc, err := uc.store.FindByEmail(ctx, in.Kind, in.Email)
	if err != nil {
		if !httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, err
		}
		uc.hasher.VerifyNothing(ctx, in.Password)
		uc.recordFailure(ctx, key)
		return nil, ErrInvalidCredentials
	}

	ok, err := uc.hasher.Verify(ctx, in.Password, acc.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		uc.recordFailure(ctx, key)
		return nil, ErrInvalidCredentials
	}

	if err := uc.guard.Reset(ctx, key); err != nil {
		uc.log.Warn("login throttle reset failed", slog.Any("error", err))
	}

	p := acc.Principal()
	token, err := uc.tokens.Issue(p)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: p}, nil
}

func (uc *Login) recordFailure(ctx context.Context, key string) {
	if err := uc.guard.Fail(ctx, key); err != nil {
		uc.log.Warn("login throttle write failed", slog.Any("error", err))
	}
}
