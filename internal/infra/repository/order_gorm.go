package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/storefront-api/internal/domain/order"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context, sort ...sorting.Order) ([]models.Order, error) {
	var orders []models.Order
	if err := orderBy(r.db.WithContext(ctx), sort).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByCustomer(ctx context.Context, custID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("cust_id = ?", custID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = string(order.InitialStatus())
	}
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r *OrderGormRepository) Update(
	ctx context.Context,
	id uint,
	p order.Patch,
) (*models.Order, error) {

	changes := map[string]any{}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.Total != nil {
		changes["total"] = *p.Total
	}

	var o models.Order
	res := r.db.WithContext(ctx).
		Model(&o).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)
	if err := notFoundIfUntouched(res); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id uint) error {
	return notFoundIfUntouched(r.db.WithContext(ctx).Delete(&models.Order{}, id))
}

// Compile-time check
var _ order.Repository = (*OrderGormRepository)(nil)
