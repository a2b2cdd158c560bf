package port

import (
	"context"

	"tally.com/internal/domain/entity"
)

// StockLedger is the port for warehouse operations
type StockLedger interface {
	Add(ctx context.Context, code string, quantity int) error
	Remove(ctx context.Context, code string, quantity int) error
	Quantity(ctx context.Context, code string) (int, error)
	List(ctx context.Context) []entity.Holding
}

// Basket is the port for basket operations. A basket draws from and
// returns to exactly one StockLedger.
type Basket interface {
	Add(ctx context.Context, code string, quantity int) error
	Remove(ctx context.Context, code string, quantity int) error
	Quantity(ctx context.Context, code string) (int, error)
	List(ctx context.Context) []entity.Holding
}
