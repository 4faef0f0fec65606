package memory

import (
	"context"
	"sort"

	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

type InteractionRepository struct {
	store *Store
}

func NewInteractionRepository(store *Store) contract.InteractionRepository {
	return &InteractionRepository{store: store}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	r.store.interactions.Set(interaction.Id.String(), cloneInteraction(interaction), cache.NoExpiration)
	return nil
}

func (r *InteractionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interaction, error) {
	interactions := []*entity.Interaction{}
	for _, item := range r.store.interactions.Items() {
		i := item.Object.(*entity.Interaction)
		if specification.SatisfiesAll(i, specs...) {
			interactions = append(interactions, cloneInteraction(i))
		}
	}
	sort.SliceStable(interactions, func(a, b int) bool {
		if interactions[a].Timestamp.Equal(interactions[b].Timestamp) {
			return interactions[a].Id.String() < interactions[b].Id.String()
		}
		return interactions[a].Timestamp.Before(interactions[b].Timestamp)
	})
	return interactions, nil
}
