package service

import (
	"context"
	"time"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/repository/specification"
	"live-rooms-be/internal/repository/unitofwork"
	"live-rooms-be/pkg/events"

	"github.com/google/uuid"
)

type IRoomService interface {
	Create(ctx context.Context, hostId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	List(ctx context.Context, privacy entity.RoomPrivacy) ([]dto.RoomResponse, error)
	Show(ctx context.Context, roomId uuid.UUID) (*dto.RoomResponse, error)
	Update(ctx context.Context, roomId, callerId uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Join(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error)
	Leave(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error)
	InviteUsers(ctx context.Context, roomId, callerId uuid.UUID, userIds []uuid.UUID) (*dto.InviteUsersResponse, error)
	AddModerator(ctx context.Context, roomId, callerId, userId uuid.UUID) (*dto.MessageResponse, error)
}

type roomService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
	logger         logger.ILogger
	now            func() time.Time
}

func NewRoomService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher, log logger.ILogger) IRoomService {
	return &roomService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
		now:            time.Now,
	}
}

func (s *roomService) toResponses(ctx context.Context, uow unitofwork.UnitOfWork, rooms ...*entity.Room) ([]dto.RoomResponse, error) {
	var ids []uuid.UUID
	for _, r := range rooms {
		ids = append(ids, r.HostId)
		ids = append(ids, r.Participants...)
	}

	names, err := resolveNames(ctx, uow, ids...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = dto.RoomResponse{
			Id:           r.Id,
			Title:        r.Title,
			Description:  r.Description,
			Host:         dto.UserSummary{Id: r.HostId, Name: names[r.HostId]},
			Participants: summarize(r.Participants, names),
			InvitedUsers: nonNilIDs(r.InvitedUsers),
			Moderators:   nonNilIDs(r.Moderators),
			Privacy:      string(r.Privacy),
			IsActive:     r.IsActive,
			CreatedAt:    r.CreatedAt,
		}
	}
	return out, nil
}

func (s *roomService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, room *entity.Room) (*dto.RoomResponse, error) {
	res, err := s.toResponses(ctx, uow, room)
	if err != nil {
		return nil, err
	}
	return &res[0], nil
}

func (s *roomService) findRoom(ctx context.Context, uow unitofwork.UnitOfWork, roomId uuid.UUID) (*entity.Room, error) {
	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if room == nil {
		return nil, apperror.ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) Create(ctx context.Context, hostId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	privacy := entity.RoomPrivacy(req.Privacy)
	if privacy == "" {
		privacy = entity.RoomPrivacyPublic
	}

	room := &entity.Room{
		Id:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		HostId:       hostId,
		Participants: []uuid.UUID{},
		InvitedUsers: []uuid.UUID{},
		Moderators:   []uuid.UUID{},
		Privacy:      privacy,
		IsActive:     true,
		CreatedAt:    s.now(),
	}

	if err := uow.RoomRepository().Create(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.NewRoomCreated(room.Id, hostId, string(privacy), room.CreatedAt))

	return s.toResponse(ctx, uow, room)
}

// List returns active rooms only, optionally narrowed by privacy.
func (s *roomService) List(ctx context.Context, privacy entity.RoomPrivacy) ([]dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ActiveRooms{}}
	if privacy != "" {
		specs = append(specs, specification.ByPrivacy{Privacy: privacy})
	}

	rooms, err := uow.RoomRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return s.toResponses(ctx, uow, rooms...)
}

func (s *roomService) Show(ctx context.Context, roomId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, room)
}

func (s *roomService) Update(ctx context.Context, roomId, callerId uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}
	if !room.IsHost(callerId) {
		return nil, apperror.ErrNotRoomHost
	}

	if req.Title != "" {
		room.Title = req.Title
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Privacy != "" {
		room.Privacy = entity.RoomPrivacy(req.Privacy)
	}

	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	return s.toResponse(ctx, uow, room)
}

func (s *roomService) Join(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}
	if !room.AddParticipant(callerId) {
		return nil, apperror.ErrAlreadyMember
	}

	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	return s.toResponse(ctx, uow, room)
}

func (s *roomService) Leave(ctx context.Context, roomId, callerId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}

	room.RemoveParticipant(callerId)
	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	return s.toResponse(ctx, uow, room)
}

// InviteUsers replaces the invitation list with the subset of userIds that
// belong to existing users, in request order.
func (s *roomService) InviteUsers(ctx context.Context, roomId, callerId uuid.UUID, userIds []uuid.UUID) (*dto.InviteUsersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}
	if !room.IsHost(callerId) {
		return nil, apperror.ErrInviteForbidden
	}

	names, err := resolveNames(ctx, uow, userIds...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	invited := []uuid.UUID{}
	seen := make(map[uuid.UUID]bool, len(userIds))
	for _, id := range userIds {
		if _, ok := names[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		invited = append(invited, id)
	}

	room.InvitedUsers = invited
	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.InviteUsersResponse{Msg: "Users invited successfully", InvitedUsers: invited}, nil
}

func (s *roomService) AddModerator(ctx context.Context, roomId, callerId, userId uuid.UUID) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := s.findRoom(ctx, uow, roomId)
	if err != nil {
		return nil, err
	}
	if !room.IsHost(callerId) {
		return nil, apperror.ErrModerateForbidden
	}

	room.AddModerator(userId)
	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.MessageResponse{Msg: "User is now a moderator"}, nil
}
