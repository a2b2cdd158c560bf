package repository

import (
	"context"
	"sync"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
	"tally.com/internal/infrastructure/logger"
)

// InMemoryLedger implements the StockLedger port
type InMemoryLedger struct {
	mu     sync.RWMutex
	stock  *holdings
	logger logger.Logger
}

// NewInMemoryLedger creates a new, empty in-memory warehouse
func NewInMemoryLedger(logger logger.Logger) port.StockLedger {
	return &InMemoryLedger{
		stock:  newHoldings(),
		logger: logger,
	}
}

// Add puts quantity of code into the warehouse
func (l *InMemoryLedger) Add(ctx context.Context, code string, quantity int) error {
	if err := (entity.Movement{Code: code, Quantity: quantity}).Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	newQuantity, err := l.stock.add(code, quantity)
	if err != nil {
		l.logger.LogWarning(ctx, "Stock addition rejected",
			"code", code,
			"quantity", quantity,
			"current_quantity", newQuantity,
			"reason", err.Error())
		return err
	}

	l.logger.LogInfo(ctx, "Stock added",
		"code", code,
		"quantity", quantity,
		"new_quantity", newQuantity)

	return nil
}

// Remove takes quantity of code out of the warehouse
func (l *InMemoryLedger) Remove(ctx context.Context, code string, quantity int) error {
	if err := (entity.Movement{Code: code, Quantity: quantity}).Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	newQuantity, err := l.stock.take(code, quantity)
	if err != nil {
		l.logger.LogWarning(ctx, "Stock removal rejected",
			"code", code,
			"quantity", quantity,
			"reason", err.Error())
		return err
	}

	l.logger.LogInfo(ctx, "Stock removed",
		"code", code,
		"quantity", quantity,
		"new_quantity", newQuantity)

	return nil
}

// Quantity returns the quantity on hand for code
func (l *InMemoryLedger) Quantity(_ context.Context, code string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	quantity, ok := l.stock.get(code)
	if !ok {
		return 0, entity.UnknownCode(code)
	}
	return quantity, nil
}

// List returns a copy of every warehouse entry in first-seen order
func (l *InMemoryLedger) List(_ context.Context) []entity.Holding {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.stock.list()
}
