package service

import (
	"context"
	"strings"
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

type IInteractionService interface {
	AddMessage(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error)
	AddReaction(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error)
	RaiseHand(ctx context.Context, userId uuid.UUID, req *dto.RaiseHandRequest) (*dto.InteractionResponse, error)
	ListBySession(ctx context.Context, sessionId uuid.UUID) ([]dto.InteractionResponse, error)
}

type interactionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
	logger         logger.ILogger
	now            func() time.Time
}

func NewInteractionService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher, log logger.ILogger) IInteractionService {
	return &interactionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
		now:            time.Now,
	}
}

func toInteractionResponse(i *entity.Interaction, names map[uuid.UUID]string) dto.InteractionResponse {
	return dto.InteractionResponse{
		Id:        i.Id,
		Session:   i.SessionId,
		User:      dto.UserSummary{Id: i.UserId, Name: names[i.UserId]},
		Type:      string(i.Payload.Type()),
		Content:   i.Payload.Content(),
		Timestamp: i.Timestamp,
	}
}

// record stores an interaction without checking that the session exists or
// is still running.
func (s *interactionService) record(ctx context.Context, userId uuid.UUID, rawSessionId string, kind entity.InteractionType, content string) (*dto.InteractionResponse, error) {
	sessionId, err := uuid.Parse(strings.TrimSpace(rawSessionId))
	if err != nil {
		return nil, apperror.ErrInvalidSessionID
	}
	if kind != entity.InteractionTypeHandRaised && content == "" {
		return nil, apperror.ErrContentRequired
	}

	payload, err := entity.NewInteractionPayload(kind, content)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	interaction := &entity.Interaction{
		Id:        id,
		SessionId: sessionId,
		UserId:    userId,
		Payload:   payload,
		Timestamp: s.now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InteractionRepository().Create(ctx, interaction); err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger,
		events.NewInteractionRecorded(interaction.Id, sessionId, userId, string(kind), interaction.Timestamp))

	names, err := resolveNames(ctx, uow, userId)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := toInteractionResponse(interaction, names)
	return &res, nil
}

func (s *interactionService) AddMessage(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error) {
	return s.record(ctx, userId, req.SessionId, entity.InteractionTypeMessage, req.Content)
}

func (s *interactionService) AddReaction(ctx context.Context, userId uuid.UUID, req *dto.ContentInteractionRequest) (*dto.InteractionResponse, error) {
	return s.record(ctx, userId, req.SessionId, entity.InteractionTypeReaction, req.Content)
}

func (s *interactionService) RaiseHand(ctx context.Context, userId uuid.UUID, req *dto.RaiseHandRequest) (*dto.InteractionResponse, error) {
	return s.record(ctx, userId, req.SessionId, entity.InteractionTypeHandRaised, "")
}

func (s *interactionService) ListBySession(ctx context.Context, sessionId uuid.UUID) ([]dto.InteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interactions, err := uow.InteractionRepository().FindAll(ctx, specification.BySession{SessionID: sessionId})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	seen := make(map[uuid.UUID]bool)
	var authors []uuid.UUID
	for _, i := range interactions {
		if !seen[i.UserId] {
			seen[i.UserId] = true
			authors = append(authors, i.UserId)
		}
	}

	names, err := resolveNames(ctx, uow, authors...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]dto.InteractionResponse, len(interactions))
	for i, interaction := range interactions {
		out[i] = toInteractionResponse(interaction, names)
	}
	return out, nil
}
