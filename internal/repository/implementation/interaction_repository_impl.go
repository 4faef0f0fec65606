package implementation

import (
	"context"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/mapper"
	"live-rooms-be/internal/model"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/scope"
	"live-rooms-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewInteractionRepository(db *gorm.DB) contract.InteractionRepository {
	return &InteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *InteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create is append-only; interactions are never updated.
func (r *InteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.Interaction) error {
	row := r.mapper.InteractionToModel(interaction)
	return translateError(r.db.WithContext(ctx).Create(row).Error)
}

func (r *InteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error) {
	var rows []*model.Interaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByTimestampAsc)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	interactions := make([]*entity.Interaction, 0, len(rows))
	for _, row := range rows {
		interaction, err := r.mapper.InteractionToEntity(row)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}
	return interactions, nil
}
