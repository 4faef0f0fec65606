package unitofwork

import (
	"context"

	"live-rooms-be/internal/repository/contract"
)

// UnitOfWork groups repository writes. Outside Begin/Commit each repository
// call runs on its own.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RoomRepository() contract.RoomRepository
	SessionRepository() contract.SessionRepository
	InteractionRepository() contract.InteractionRepository
}
