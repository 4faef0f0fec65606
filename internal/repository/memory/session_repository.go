package memory

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) contract.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.sessions.Set(session.Id.String(), cloneSession(session), cache.NoExpiration)
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, session *entity.Session) error {
	r.store.sessions.Set(session.Id.String(), cloneSession(session), cache.NoExpiration)
	return nil
}

func (r *SessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	for _, item := range r.store.sessions.Items() {
		s := item.Object.(*entity.Session)
		if specification.SatisfiesAll(s, specs...) {
			return cloneSession(s), nil
		}
	}
	return nil, nil
}
