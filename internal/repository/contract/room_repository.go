package contract

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/specification"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	Update(ctx context.Context, room *entity.Room) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error)
	// FindAll returns rooms oldest first.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error)
}
