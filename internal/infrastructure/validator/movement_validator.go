package validator

import (
	"context"
	"strconv"

	"tally.com/internal/domain/entity"
	"tally.com/internal/domain/port"
	"tally.com/internal/infrastructure/logger"
)

// MovementValidator implements the MovementValidator port
type MovementValidator struct {
	logger logger.Logger
}

// NewMovementValidator creates a new movement validator
func NewMovementValidator(logger logger.Logger) port.MovementValidator {
	return &MovementValidator{
		logger: logger,
	}
}

// ValidateMovement rejects an empty code or a non-positive quantity
func (v *MovementValidator) ValidateMovement(ctx context.Context, movement entity.Movement) error {
	if err := movement.Validate(); err != nil {
		v.logger.LogWarning(ctx, "Invalid movement",
			"code", movement.Code,
			"quantity", movement.Quantity,
			"reason", err.Error())
		return err
	}
	return nil
}

// ParseQuantity converts a console token into a quantity.
// Sign is left to ValidateMovement so "-1" reports quantity <= 0.
func ParseQuantity(token string) (int, error) {
	quantity, err := strconv.Atoi(token)
	if err != nil {
		return 0, entity.ErrQuantityNotNumber
	}
	return quantity, nil
}
