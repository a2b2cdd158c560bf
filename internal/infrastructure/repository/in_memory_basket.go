package repository

import (
	"context"
	"sync"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
	"tally.com/internal/infrastructure/logger"
)

// InMemoryBasket implements the Basket port on top of a StockLedger
type InMemoryBasket struct {
	mu     sync.RWMutex
	ledger port.StockLedger
	items  *holdings
	logger logger.Logger
}

// NewInMemoryBasket creates an empty basket bound to ledger
func NewInMemoryBasket(ledger port.StockLedger, logger logger.Logger) port.Basket {
	return &InMemoryBasket{
		ledger: ledger,
		items:  newHoldings(),
		logger: logger,
	}
}

// Add moves quantity of code from the warehouse into the basket.
// Ledger failures are returned unchanged and leave the basket untouched.
func (b *InMemoryBasket) Add(ctx context.Context, code string, quantity int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.items.room(code, quantity); err != nil {
		b.logger.LogWarning(ctx, "Basket addition rejected",
			"code", code,
			"quantity", quantity,
			"reason", err.Error())
		return err
	}

	if err := b.ledger.Remove(ctx, code, quantity); err != nil {
		return err
	}

	newQuantity, _ := b.items.add(code, quantity)

	b.logger.LogInfo(ctx, "Moved to basket",
		"code", code,
		"quantity", quantity,
		"basket_quantity", newQuantity)

	return nil
}

// Remove moves quantity of code from the basket back into the warehouse
func (b *InMemoryBasket) Remove(ctx context.Context, code string, quantity int) error {
	if err := (entity.Movement{Code: code, Quantity: quantity}).Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	newQuantity, err := b.items.take(code, quantity)
	if err != nil {
		b.logger.LogWarning(ctx, "Basket removal rejected",
			"code", code,
			"quantity", quantity,
			"reason", err.Error())
		return err
	}

	if err := b.ledger.Add(ctx, code, quantity); err != nil {
		_, _ = b.items.add(code, quantity)
		b.logger.LogError(ctx, "Failed to return stock, basket restored", err,
			"code", code,
			"quantity", quantity)
		return err
	}

	b.logger.LogInfo(ctx, "Returned to store",
		"code", code,
		"quantity", quantity,
		"basket_quantity", newQuantity)

	return nil
}

// Quantity returns the quantity of code held in the basket
func (b *InMemoryBasket) Quantity(_ context.Context, code string) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	quantity, ok := b.items.get(code)
	if !ok {
		return 0, entity.UnknownCode(code)
	}
	return quantity, nil
}

// List returns a copy of every basket entry in first-seen order
func (b *InMemoryBasket) List(_ context.Context) []entity.Holding {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.items.list()
}
