package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands out database handles bound to a request context.
// Repositories receive whichever handle the usecase chose, so the same
// repository call works inside and outside a transaction.
type Transactor interface {
	Conn(ctx context.Context) *gorm.DB
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
