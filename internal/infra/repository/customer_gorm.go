package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/storefront-api/internal/domain/customer"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerGormRepository) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c *models.Customer) error {
	c.Email = normalizeEmail(c.Email)
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

// Update writes the patch and reads the row back in one statement.
func (r *CustomerGormRepository) Update(
	ctx context.Context,
	id uint,
	p customer.Patch,
) (*models.Customer, error) {

	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Email != nil {
		changes["email"] = normalizeEmail(*p.Email)
	}
	if p.PasswordHash != nil {
		changes["password_hash"] = *p.PasswordHash
	}
	if p.Address != nil {
		changes["address"] = *p.Address
	}
	if p.Phone != nil {
		changes["phone"] = *p.Phone
	}

	var c models.Customer
	res := r.db.WithContext(ctx).
		Model(&c).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)
	if err := notFoundIfUntouched(res); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerGormRepository) Delete(ctx context.Context, id uint) error {
	return notFoundIfUntouched(r.db.WithContext(ctx).Delete(&models.Customer{}, id))
}

// Compile-time check
var _ customer.Repository = (*CustomerGormRepository)(nil)
