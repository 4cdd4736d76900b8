package product

import (
	"context"

	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

// SortFields is the allow-list for the product sort routes.
var SortFields = sorting.NewAllowList(
	[2]string{"productId", "id"},
	[2]string{"name", "name"},
	[2]string{"price", "price"},
	[2]string{"stock", "stock"},
	[2]string{"createdAt", "created_at"},
)

type Patch struct {
	Name  *string
	Price *float64
	Stock *int
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil
}

type Repository interface {
	// List orders by id ascending when no order is given.
	List(ctx context.Context, order ...sorting.Order) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id uint, p Patch) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}
