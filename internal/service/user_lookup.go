package service

import (
	"context"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/repository/specification"
	"live-rooms-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// resolveNames loads display names for ids in a single query. Ids that no
// longer resolve are absent from the map.
func resolveNames(ctx context.Context, uow unitofwork.UnitOfWork, ids ...uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.Id] = u.Name
	}
	return names, nil
}

func summarize(ids []uuid.UUID, names map[uuid.UUID]string) []dto.UserSummary {
	out := make([]dto.UserSummary, len(ids))
	for i, id := range ids {
		out[i] = dto.UserSummary{Id: id, Name: names[id]}
	}
	return out
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
