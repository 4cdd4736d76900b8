package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	authpkg "github.com/BruksfildServices01/storefront-api/internal/auth"
	"github.com/BruksfildServices01/storefront-api/internal/domain/account"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Kind     principal.Role
	Name     string
	Email    string
	Password string
	Address  string
	Phone    string
}

type Session struct {
	Token string              `json:"token"`
	User  principal.Principal `json:"user"`
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	store  account.Store
	hasher *authpkg.PasswordHasher
	tokens *authpkg.TokenManager
	audit  audit.Recorder
}

func NewRegister(
	store account.Store,
	hasher *authpkg.PasswordHasher,
	tokens *authpkg.TokenManager,
	audit audit.Recorder,
) *Register {
	return &Register{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute creates the account and signs its first token. A taken email
// surfaces as the store's email_taken business error.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	hash, err := uc.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	acc := &account.Account{
		Kind:         in.Kind,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Phone:        in.Phone,
	}
	if err := uc.store.Create(ctx, acc); err != nil {
		return nil, err
	}

	p := acc.Principal()
	token, err := uc.tokens.Issue(p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.NewEvent(p, string(in.Kind)+"_registered", string(in.Kind), acc.ID))

	return &Session{Token: token, User: p}, nil
}
