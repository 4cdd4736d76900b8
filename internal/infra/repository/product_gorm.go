package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/storefront-api/internal/domain/product"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// orderBy quotes each column through the clause builder; columns come from an
// allow-list and are never caller text.
func orderBy(db *gorm.DB, order []sorting.Order) *gorm.DB {
	if len(order) == 0 {
		return db.Order("id ASC")
	}
	cols := make([]clause.OrderByColumn, 0, len(order)+1)
	for _, o := range order {
		cols = append(cols, clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Desc,
		})
	}
	cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	return db.Clauses(clause.OrderBy{Columns: cols})
}

func (r *ProductGormRepository) List(ctx context.Context, order ...sorting.Order) ([]models.Product, error) {
	var products []models.Product
	if err := orderBy(r.db.WithContext(ctx), order).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductGormRepository) Update(
	ctx context.Context,
	id uint,
	patch product.Patch,
) (*models.Product, error) {

	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.Stock != nil {
		changes["stock"] = *patch.Stock
	}

	var p models.Product
	res := r.db.WithContext(ctx).
		Model(&p).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)
	if err := notFoundIfUntouched(res); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id uint) error {
	return notFoundIfUntouched(r.db.WithContext(ctx).Delete(&models.Product{}, id))
}

// Compile-time check
var _ product.Repository = (*ProductGormRepository)(nil)
