package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/storefront-api/internal/domain/account"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AccountGormRepository) Create(ctx context.Context, a *account.Account) error {
	a.Email = normalizeEmail(a.Email)
	db := r.db.WithContext(ctx)

	switch a.Kind {
	case principal.RoleCustomer:
		m := models.Customer{
			Name:         a.Name,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Address:      a.Address,
			Phone:        a.Phone,
			Role:         string(principal.RoleCustomer),
		}
		if err := db.Create(&m).Error; err != nil {
			return translate(err)
		}
		a.ID = m.ID
	case principal.RoleStaff:
		m := models.Staff{
			Name:         a.Name,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Role:         string(principal.RoleStaff),
		}
		if err := db.Create(&m).Error; err != nil {
			return translate(err)
		}
		a.ID = m.ID
	case principal.RoleAdmin:
		m := models.Admin{
			Name:         a.Name,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Role:         string(principal.RoleAdmin),
		}
		if err := db.Create(&m).Error; err != nil {
			return translate(err)
		}
		a.ID = m.ID
	default:
		return fmt.Errorf("create account: unknown kind %q", a.Kind)
	}
	return nil
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *AccountGormRepository) FindByEmail(
	ctx context.Context,
	kind principal.Role,
	email string,
) (*account.Account, error) {

	email = normalizeEmail(email)
	q := r.db.WithContext(ctx).Where("email = ?", email)

	switch kind {
	case principal.RoleCustomer:
		var m models.Customer
		if err := q.First(&m).Error; err != nil {
			return nil, translate(err)
		}
		return &account.Account{
			ID: m.ID, Kind: kind, Name: m.Name, Email: m.Email,
			PasswordHash: m.PasswordHash, Address: m.Address, Phone: m.Phone,
		}, nil
	case principal.RoleStaff:
		var m models.Staff
		if err := q.First(&m).Error; err != nil {
			return nil, translate(err)
		}
		return &account.Account{ID: m.ID, Kind: kind, Name: m.Name, Email: m.Email, PasswordHash: m.PasswordHash}, nil
	case principal.RoleAdmin:
		var m models.Admin
		if err := q.First(&m).Error; err != nil {
			return nil, translate(err)
		}
		return &account.Account{ID: m.ID, Kind: kind, Name: m.Name, Email: m.Email, PasswordHash: m.PasswordHash}, nil
	}
	return nil, fmt.Errorf("find account: unknown kind %q", kind)
}

// Compile-time check
var _ account.Store = (*AccountGormRepository)(nil)
