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

type ISessionService interface {
	Start(ctx context.Context, callerId, roomId uuid.UUID) (*dto.SessionResponse, error)
	End(ctx context.Context, callerId, sessionId uuid.UUID) (*dto.EndSessionResponse, error)
	GetParticipants(ctx context.Context, sessionId uuid.UUID) ([]dto.UserSummary, error)
	GetRecordingUrl(ctx context.Context, sessionId uuid.UUID) (*dto.RecordingResponse, error)
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
	logger         logger.ILogger
	now            func() time.Time
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
		now:            time.Now,
	}
}

func toSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Id:           s.Id,
		Room:         s.RoomId,
		Host:         s.HostId,
		Participants: nonNilIDs(s.Participants),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		IsRecording:  s.IsRecording,
		RecordingUrl: s.RecordingURL,
	}
}

func (s *sessionService) findSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, apperror.ErrSessionNotFound
	}
	return session, nil
}

// Start opens a session hosted by the room host. Participants are the room
// participants at the moment the session starts.
func (s *sessionService) Start(ctx context.Context, callerId, roomId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if room == nil {
		return nil, apperror.ErrRoomNotFound
	}
	if !room.IsHost(callerId) {
		return nil, apperror.ErrStartSessionDenied
	}

	session := &entity.Session{
		Id:           uuid.New(),
		RoomId:       room.Id,
		HostId:       room.HostId,
		Participants: append([]uuid.UUID{}, room.Participants...),
		StartedAt:    s.now(),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	room.IsActive = true
	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.NewSessionStarted(session.Id, room.Id, session.HostId, session.StartedAt))

	res := toSessionResponse(session)
	return &res, nil
}

// End stamps the session and marks its room inactive. Ending twice moves
// endedAt forward.
func (s *sessionService) End(ctx context.Context, callerId, sessionId uuid.UUID) (*dto.EndSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	session, err := s.findSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if !session.IsHost(callerId) {
		return nil, apperror.ErrEndSessionDenied
	}

	endedAt := s.now()
	session.EndedAt = &endedAt
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: session.RoomId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if room != nil {
		room.IsActive = false
		if err := uow.RoomRepository().Update(ctx, room); err != nil {
			return nil, apperror.Internal(err)
		}
	} else {
		s.logger.Warn("SESSION", "Ended session references a missing room", map[string]interface{}{
			"session_id": session.Id.String(),
			"room_id":    session.RoomId.String(),
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.NewSessionEnded(session.Id, session.RoomId, endedAt))

	return &dto.EndSessionResponse{Msg: "Session ended", Session: toSessionResponse(session)}, nil
}

func (s *sessionService) GetParticipants(ctx context.Context, sessionId uuid.UUID) ([]dto.UserSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	names, err := resolveNames(ctx, uow, session.Participants...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return summarize(session.Participants, names), nil
}

func (s *sessionService) GetRecordingUrl(ctx context.Context, sessionId uuid.UUID) (*dto.RecordingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if session.RecordingURL == "" {
		return nil, apperror.ErrRecordingNotFound
	}
	return &dto.RecordingResponse{RecordingUrl: session.RecordingURL}, nil
}
