package unitofwork

import (
	"context"

	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/memory"
)

// MemoryUnitOfWork writes straight through; Rollback does not undo.
type MemoryUnitOfWork struct {
	store *memory.Store
}

func NewMemoryUnitOfWork(store *memory.Store) UnitOfWork {
	return &MemoryUnitOfWork{store: store}
}

func (u *MemoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *MemoryUnitOfWork) Commit() error                   { return nil }
func (u *MemoryUnitOfWork) Rollback() error                 { return nil }

func (u *MemoryUnitOfWork) UserRepository() contract.UserRepository {
	return memory.NewUserRepository(u.store)
}

func (u *MemoryUnitOfWork) RoomRepository() contract.RoomRepository {
	return memory.NewRoomRepository(u.store)
}

func (u *MemoryUnitOfWork) SessionRepository() contract.SessionRepository {
	return memory.NewSessionRepository(u.store)
}

func (u *MemoryUnitOfWork) InteractionRepository() contract.InteractionRepository {
	return memory.NewInteractionRepository(u.store)
}
