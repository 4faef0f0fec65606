package memory

import (
	"context"
	"sort"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

type RoomRepository struct {
	store *Store
}

func NewRoomRepository(store *Store) contract.RoomRepository {
	return &RoomRepository{store: store}
}

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) error {
	r.store.rooms.Set(room.Id.String(), cloneRoom(room), cache.NoExpiration)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entity.Room) error {
	r.store.rooms.Set(room.Id.String(), cloneRoom(room), cache.NoExpiration)
	return nil
}

func (r *RoomRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	for _, item := range r.store.rooms.Items() {
		room := item.Object.(*entity.Room)
		if specification.SatisfiesAll(room, specs...) {
			return cloneRoom(room), nil
		}
	}
	return nil, nil
}

func (r *RoomRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	rooms := []*entity.Room{}
	for _, item := range r.store.rooms.Items() {
		room := item.Object.(*entity.Room)
		if specification.SatisfiesAll(room, specs...) {
			rooms = append(rooms, cloneRoom(room))
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].Id.String() < rooms[j].Id.String()
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})
	return rooms, nil
}
