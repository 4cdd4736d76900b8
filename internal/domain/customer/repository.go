package customer

import (
	"context"

	"github.com/BruksfildServices01/storefront-api/internal/models"
)

// Patch holds the fields of a partial update; nil means unchanged.
// PasswordHash is already hashed.
type Patch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Address      *string
	Phone        *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil &&
		p.Address == nil && p.Phone == nil
}

type Repository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
	Update(ctx context.Context, id uint, p Patch) (*models.Customer, error)
	Delete(ctx context.Context, id uint) error
}
