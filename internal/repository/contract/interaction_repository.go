package contract

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/specification"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	// FindAll returns interactions in insertion order.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error)
}
