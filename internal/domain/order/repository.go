package order

import (
	"context"

	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

// SortFields is the allow-list for the order sort routes.
var SortFields = sorting.NewAllowList(
	[2]string{"orderId", "id"},
	[2]string{"total", "total"},
	[2]string{"status", "status"},
	[2]string{"createdAt", "created_at"},
)

type Patch struct {
	Status *string
	Total  *float64
}

func (p Patch) Empty() bool {
	return p.Status == nil && p.Total == nil
}

type Repository interface {
	List(ctx context.Context, order ...sorting.Order) ([]models.Order, error)
	ListByCustomer(ctx context.Context, custID uint) ([]models.Order, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, id uint, p Patch) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
}
