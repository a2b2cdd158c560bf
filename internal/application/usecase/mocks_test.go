package usecase

import (
	"context"

	"tally.com/internal/domain/entity"
)

// mockValidator is a mock implementation of MovementValidator
type mockValidator struct {
	validateFunc func(ctx context.Context, movement entity.Movement) error
}

func (m *mockValidator) ValidateMovement(ctx context.Context, movement entity.Movement) error {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, movement)
	}
	return nil
}

// mockStockLedger is a mock implementation of StockLedger and Basket
type mockStockLedger struct {
	addFunc    func(ctx context.Context, code string, quantity int) error
	removeFunc func(ctx context.Context, code string, quantity int) error
	listFunc   func(ctx context.Context) []entity.Holding
}

func (m *mockStockLedger) Add(ctx context.Context, code string, quantity int) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, code, quantity)
	}
	return nil
}

func (m *mockStockLedger) Remove(ctx context.Context, code string, quantity int) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, code, quantity)
	}
	return nil
}

func (m *mockStockLedger) Quantity(ctx context.Context, code string) (int, error) {
	return 0, entity.UnknownCode(code)
}

func (m *mockStockLedger) List(ctx context.Context) []entity.Holding {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []entity.Holding{}
}
