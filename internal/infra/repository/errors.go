package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/storefront-api/internal/httperr"
)

const pgUniqueViolation = "23505"

// translate maps driver and ORM errors onto the business codes handlers know.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Wrap(httperr.CodeNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.Wrap(httperr.CodeEmailTaken, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.Wrap(httperr.CodeEmailTaken, err)
	}
	return err
}

func notFoundIfUntouched(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}
