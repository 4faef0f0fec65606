package mapper

import (
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// Session Mappers

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:           s.Id,
		RoomId:       s.RoomId,
		HostId:       s.HostId,
		Participants: StringsToUUIDs(s.Participants),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		IsRecording:  s.IsRecording,
		RecordingURL: s.RecordingURL,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:           s.Id,
		RoomId:       s.RoomId,
		HostId:       s.HostId,
		Participants: datatypes.JSONSlice[string](UUIDsToStrings(s.Participants)),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		IsRecording:  s.IsRecording,
		RecordingURL: s.RecordingURL,
	}
}

// Interaction Mappers

func (m *SessionMapper) InteractionToEntity(i *model.Interaction) (*entity.Interaction, error) {
	if i == nil {
		return nil, nil
	}
	payload, err := entity.NewInteractionPayload(entity.InteractionType(i.Type), i.Content)
	if err != nil {
		return nil, err
	}
	return &entity.Interaction{
		Id:        i.Id,
		SessionId: i.SessionId,
		UserId:    i.UserId,
		Payload:   payload,
		Timestamp: i.Timestamp,
	}, nil
}

func (m *SessionMapper) InteractionToModel(i *entity.Interaction) *model.Interaction {
	if i == nil {
		return nil
	}
	return &model.Interaction{
		Id:        i.Id,
		SessionId: i.SessionId,
		UserId:    i.UserId,
		Type:      string(i.Payload.Type()),
		Content:   i.Payload.Content(),
		Timestamp: i.Timestamp,
	}
}
