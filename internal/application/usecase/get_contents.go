package usecase

import (
	"context"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
)

// GetContentsUseCase handles listing the basket and the warehouse
type GetContentsUseCase struct {
	ledger port.StockLedger
	basket port.Basket
}

// NewGetContentsUseCase creates a new GetContentsUseCase
func NewGetContentsUseCase(ledger port.StockLedger, basket port.Basket) *GetContentsUseCase {
	return &GetContentsUseCase{
		ledger: ledger,
		basket: basket,
	}
}

// Execute returns a snapshot of both sides
func (uc *GetContentsUseCase) Execute(ctx context.Context) entity.Contents {
	return entity.Contents{
		Basket: uc.basket.List(ctx),
		Store:  uc.ledger.List(ctx),
	}
}
