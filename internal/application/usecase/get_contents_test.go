package usecase

import (
	"context"
	"testing"

	"tally.com/internal/domain/entity"
)

func TestGetContentsUseCase_Execute(t *testing.T) {
	ledger := &mockStockLedger{
		listFunc: func(ctx context.Context) []entity.Holding {
			return []entity.Holding{{Code: "A", Quantity: 2}, {Code: "B", Quantity: 0}}
		},
	}
	basket := &mockStockLedger{
		listFunc: func(ctx context.Context) []entity.Holding {
			return []entity.Holding{{Code: "A", Quantity: 3}}
		},
	}

	useCase := NewGetContentsUseCase(ledger, basket)
	contents := useCase.Execute(context.Background())

	if len(contents.Store) != 2 {
		t.Fatalf("Store length = %v, want 2", len(contents.Store))
	}
	if contents.Store[1] != (entity.Holding{Code: "B", Quantity: 0}) {
		t.Errorf("Store[1] = %+v, want B = 0", contents.Store[1])
	}
	if len(contents.Basket) != 1 || contents.Basket[0].Quantity != 3 {
		t.Errorf("Basket = %+v, want [A = 3]", contents.Basket)
	}
}
