package mapper

import (
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/model"

	"gorm.io/datatypes"
)

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) ToEntity(r *model.Room) *entity.Room {
	if r == nil {
		return nil
	}
	return &entity.Room{
		Id:           r.Id,
		Title:        r.Title,
		Description:  r.Description,
		HostId:       r.HostId,
		Participants: StringsToUUIDs(r.Participants),
		InvitedUsers: StringsToUUIDs(r.InvitedUsers),
		Moderators:   StringsToUUIDs(r.Moderators),
		Privacy:      entity.RoomPrivacy(r.Privacy),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *RoomMapper) ToModel(r *entity.Room) *model.Room {
	if r == nil {
		return nil
	}
	return &model.Room{
		Id:           r.Id,
		Title:        r.Title,
		Description:  r.Description,
		HostId:       r.HostId,
		Participants: datatypes.JSONSlice[string](UUIDsToStrings(r.Participants)),
		InvitedUsers: datatypes.JSONSlice[string](UUIDsToStrings(r.InvitedUsers)),
		Moderators:   datatypes.JSONSlice[string](UUIDsToStrings(r.Moderators)),
		Privacy:      string(r.Privacy),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *RoomMapper) ToEntities(rooms []*model.Room) []*entity.Room {
	entities := make([]*entity.Room, len(rooms))
	for i, r := range rooms {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
