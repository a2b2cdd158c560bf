package port

import (
	"context"

	"tally.com/internal/domain/entity"
)

// MovementValidator is the port for movement argument validation
type MovementValidator interface {
	ValidateMovement(ctx context.Context, movement entity.Movement) error
}
