package usecase

import (
	"context"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
)

// FillWarehouseUseCase handles stocking the warehouse
type FillWarehouseUseCase struct {
	validator port.MovementValidator
	ledger    port.StockLedger
}

// NewFillWarehouseUseCase creates a new FillWarehouseUseCase
func NewFillWarehouseUseCase(
	validator port.MovementValidator,
	ledger port.StockLedger,
) *FillWarehouseUseCase {
	return &FillWarehouseUseCase{
		validator: validator,
		ledger:    ledger,
	}
}

// Execute validates the movement and adds it to the warehouse
func (uc *FillWarehouseUseCase) Execute(ctx context.Context, movement entity.Movement) error {
	if err := uc.validator.ValidateMovement(ctx, movement); err != nil {
		return err
	}

	return uc.ledger.Add(ctx, movement.Code, movement.Quantity)
}
