package usecase

import (
	"context"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
)

// Transfer commands understood by TransferUseCase
const (
	CommandAdd    = "add"
	CommandRemove = "remove"
)

// TransferUseCase moves stock between the warehouse and the basket
type TransferUseCase struct {
	validator port.MovementValidator
	basket    port.Basket
}

// NewTransferUseCase creates a new TransferUseCase
func NewTransferUseCase(
	validator port.MovementValidator,
	basket port.Basket,
) *TransferUseCase {
	return &TransferUseCase{
		validator: validator,
		basket:    basket,
	}
}

// TransferRequest contains one basket command
type TransferRequest struct {
	Command  string
	Movement entity.Movement
}

// IsTransferCommand reports whether command is add or remove
func IsTransferCommand(command string) bool {
	return command == CommandAdd || command == CommandRemove
}

// Execute validates the request and dispatches it to the basket
func (uc *TransferUseCase) Execute(ctx context.Context, req TransferRequest) error {
	if !IsTransferCommand(req.Command) {
		return entity.UnknownCommand(req.Command)
	}

	if err := uc.validator.ValidateMovement(ctx, req.Movement); err != nil {
		return err
	}

	if req.Command == CommandAdd {
		return uc.basket.Add(ctx, req.Movement.Code, req.Movement.Quantity)
	}
	return uc.basket.Remove(ctx, req.Movement.Code, req.Movement.Quantity)
}
