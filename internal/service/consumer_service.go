// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

// NewConsumerService delivers queued OTP mails. Delivery failures are logged
// and acknowledged; the API has already answered the caller.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.OTPMailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("MAIL_CONSUMER", "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	var err error
	switch payload.Kind {
	case dto.OTPMailVerification:
		err = cs.emailService.SendVerificationOTP(payload.Email, payload.Code, payload.TTL)
	case dto.OTPMailPasswordReset:
		err = cs.emailService.SendPasswordResetOTP(payload.Email, payload.Code, payload.TTL)
	default:
		cs.logger.Warn("MAIL_CONSUMER", "Unknown mail kind", map[string]interface{}{
			"message_id": msg.UUID,
			"kind":       payload.Kind,
		})
		return
	}

	if err != nil {
		cs.logger.Error("MAIL_CONSUMER", "Failed to deliver OTP", map[string]interface{}{
			"kind":  payload.Kind,
			"to":    payload.Email,
			"error": err.Error(),
		})
	}
}
