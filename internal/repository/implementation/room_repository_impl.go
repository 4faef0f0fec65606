package implementation

import (
	"context"
	"errors"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/mapper"
	"live-rooms-be/internal/model"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/scope"
	"live-rooms-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomRepository(db *gorm.DB) contract.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *entity.Room) error {
	modelRoom := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Create(modelRoom).Error; err != nil {
		return translateError(err)
	}
	*room = *r.mapper.ToEntity(modelRoom)
	return nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, room *entity.Room) error {
	modelRoom := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Save(modelRoom).Error; err != nil {
		return translateError(err)
	}
	*room = *r.mapper.ToEntity(modelRoom)
	return nil
}

func (r *RoomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var modelRoom model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRoom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelRoom), nil
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	var modelRooms []*model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByCreatedAsc)

	if err := query.Find(&modelRooms).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRooms), nil
}
