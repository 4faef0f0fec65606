package memory

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.userMu.Lock()
	defer r.store.userMu.Unlock()

	existing, _ := r.FindOne(ctx, specification.ByEmail{Email: user.Email})
	if existing != nil {
		return contract.ErrDuplicate
	}
	r.store.users.Set(user.Id.String(), cloneUser(user), cache.NoExpiration)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.users.Set(user.Id.String(), cloneUser(user), cache.NoExpiration)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, item := range r.store.users.Items() {
		u := item.Object.(*entity.User)
		if specification.SatisfiesAll(u, specs...) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	users := []*entity.User{}
	for _, item := range r.store.users.Items() {
		u := item.Object.(*entity.User)
		if specification.SatisfiesAll(u, specs...) {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}
