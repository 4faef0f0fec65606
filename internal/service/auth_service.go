// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"live-rooms-be/internal/dto"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/pkg/apperror"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/token"
	"live-rooms-be/internal/repository/contract"
	"live-rooms-be/internal/repository/specification"
	"live-rooms-be/internal/repository/unitofwork"
	"live-rooms-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MessageResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.MessageResponse, error)
	ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) (*dto.MessageResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.MessageResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error)
}

type AuthConfig struct {
	OTPTTL   time.Duration
	HashCost int
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokens         token.Manager
	mailQueue      IPublisherService
	eventPublisher IEventPublisher
	logger         logger.ILogger
	cfg            AuthConfig
	now            func() time.Time

	// compared against on unknown emails so Login costs one bcrypt either way
	dummyHash []byte
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens token.Manager,
	mailQueue IPublisherService,
	eventPublisher IEventPublisher,
	log logger.ILogger,
	cfg AuthConfig,
) IAuthService {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = time.Hour
	}
	if cfg.HashCost == 0 {
		cfg.HashCost = bcrypt.DefaultCost
	}
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("live-rooms-unknown-user"), cfg.HashCost)

	return &authService{
		uowFactory:     uowFactory,
		tokens:         tokens,
		mailQueue:      mailQueue,
		eventPublisher: eventPublisher,
		logger:         log,
		cfg:            cfg,
		now:            time.Now,
		dummyHash:      dummyHash,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) issueOTP(purpose entity.OTPPurpose) (*entity.OneTimeCode, error) {
	code, err := generateOTP()
	if err != nil {
		return nil, err
	}
	return &entity.OneTimeCode{
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: s.now().Add(s.cfg.OTPTTL),
	}, nil
}

// queueMail hands the code to the mail consumer. A failure here is logged and
// does not change the response.
func (s *authService) queueMail(ctx context.Context, kind dto.OTPMailKind, email, code string) {
	payload, err := json.Marshal(dto.OTPMailMessage{Kind: kind, Email: email, Code: code, TTL: s.cfg.OTPTTL})
	if err == nil {
		err = s.mailQueue.Publish(ctx, payload)
	}
	if err != nil {
		s.logger.Warn("AUTH", "Failed to queue OTP mail", map[string]interface{}{
			"kind":  kind,
			"email": email,
			"error": err.Error(),
		})
	}
}

func (s *authService) findByEmail(ctx context.Context, uow unitofwork.UnitOfWork, email string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: normalizeEmail(email)})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MessageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.ErrNameRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	email := normalizeEmail(req.Email)

	existing, err := s.findByEmail(ctx, uow, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.HashCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	otp, err := s.issueOTP(entity.OTPPurposeVerifyEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsVerified:   false,
		OTP:          otp,
		CreatedAt:    s.now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.ErrEmailTaken
		}
		return nil, apperror.Internal(err)
	}

	s.queueMail(ctx, dto.OTPMailVerification, user.Email, otp.Code)
	publishEvent(ctx, s.eventPublisher, s.logger, events.NewUserRegistered(user.Id, user.Email, user.CreatedAt))

	return &dto.MessageResponse{Msg: "Registration successful, please verify your email using the OTP sent."}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findByEmail(ctx, uow, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrAccountNotFound
	}
	if user.IsVerified {
		return nil, apperror.ErrAlreadyVerified
	}
	if !user.OTP.Matches(req.Otp, entity.OTPPurposeVerifyEmail, s.now()) {
		return nil, apperror.ErrInvalidOTP
	}

	user.IsVerified = true
	user.OTP = nil
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.NewUserVerified(user.Id, s.now()))

	return &dto.MessageResponse{Msg: "Email verified successfully"}, nil
}

func (s *authService) ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findByEmail(ctx, uow, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrAccountNotFound
	}
	if user.IsVerified {
		return nil, apperror.ErrAlreadyVerified
	}

	otp, err := s.issueOTP(entity.OTPPurposeVerifyEmail)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.OTP = otp
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.queueMail(ctx, dto.OTPMailVerification, user.Email, otp.Code)

	return &dto.MessageResponse{Msg: "Verification OTP sent"}, nil
}

// Login checks the password before the verification flag, so an unverified
// account is only revealed to someone who knows its password. Unknown emails
// still pay for a bcrypt compare.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findByEmail(ctx, uow, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperror.ErrNotVerified
	}

	signed, err := s.tokens.Generate(user.Id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.LoginResponse{Token: signed}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findByEmail(ctx, uow, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrAccountNotExist
	}

	otp, err := s.issueOTP(entity.OTPPurposeResetPassword)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.OTP = otp
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.queueMail(ctx, dto.OTPMailPasswordReset, user.Email, otp.Code)

	return &dto.MessageResponse{Msg: "Password reset OTP sent"}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findByEmail(ctx, uow, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.OTP.Matches(req.Otp, entity.OTPPurposeResetPassword, s.now()) {
		return nil, apperror.ErrInvalidResetOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.HashCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user.PasswordHash = string(hash)
	user.OTP = nil
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.MessageResponse{Msg: "Password successfully reset"}, nil
}
