package account

import (
	"context"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

// Account is a login record of any principal kind.
type Account struct {
	ID           uint
	Kind         principal.Role
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Phone        string
}

func (a Account) Principal() principal.Principal {
	return principal.New(a.Kind, a.ID, a.Name, a.Email)
}

// Store is the credential store. Emails are unique per Kind and compared
// lower-cased.
type Store interface {
	Create(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, kind principal.Role, email string) (*Account, error)
}
