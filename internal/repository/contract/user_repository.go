package contract

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/specification"
)

// FindOne returns nil, nil when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
}
