package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork runs one logical operation as a single transaction: every
// write inside fn commits together or not at all. gorm rolls back on a
// returned error or a panic and releases the session either way.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}
