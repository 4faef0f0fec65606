package bootstrap

import (
	"context"
	"log"
	"time"

	"live-rooms-be/internal/config"
	"live-rooms-be/internal/controller"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/pkg/mailer"
	"live-rooms-be/internal/pkg/ratelimit"
	"live-rooms-be/internal/pkg/serverutils"
	"live-rooms-be/internal/pkg/token"
	"live-rooms-be/internal/repository/unitofwork"
	"live-rooms-be/internal/service"

	pktNats "live-rooms-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	RoomController        controller.IRoomController
	SessionController     controller.ISessionController
	InteractionController controller.IInteractionController

	// Middleware
	JwtMiddleware   fiber.Handler
	AuthRateLimiter fiber.Handler

	Logger logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	tokens := token.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	var emailService mailer.IEmailService
	if cfg.SMTP.Host == "" {
		log.Println("[WARN] SMTP_HOST is empty, OTP mails are written to the log")
		emailService = mailer.NewLogEmailService(sysLogger)
	} else {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
			sysLogger,
		)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var eventPublisher service.IEventPublisher
	if cfg.Events.NatsURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		natsPub, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
		cancel()
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Rate limiting
	var counter ratelimit.Counter = ratelimit.NewMemoryCounter()
	if cfg.Cache.RedisURL != "" {
		if rdb := connectRedis(cfg.Cache.RedisURL); rdb != nil {
			counter = ratelimit.NewRedisCounter(rdb)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}
	c.AuthRateLimiter = ratelimit.New(counter, ratelimit.Config{
		Max:    cfg.Cache.RateLimitMax,
		Window: cfg.Cache.RateLimitWindow,
		Prefix: "ratelimit:auth:",
	}, sysLogger)
	c.JwtMiddleware = serverutils.NewJwtMiddleware(tokens)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.MailTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.MailTopic, emailService, sysLogger)

	authService := service.NewAuthService(uowFactory, tokens, publisherService, eventPublisher, sysLogger, service.AuthConfig{
		OTPTTL: cfg.Auth.OTPTTL,
	})
	userService := service.NewUserService(uowFactory)
	roomService := service.NewRoomService(uowFactory, eventPublisher, sysLogger)
	sessionService := service.NewSessionService(uowFactory, eventPublisher, sysLogger)
	interactionService := service.NewInteractionService(uowFactory, eventPublisher, sysLogger)

	// 5. Controllers
	c.AuthController = controller.NewAuthController(authService, userService)
	c.RoomController = controller.NewRoomController(roomService)
	c.SessionController = controller.NewSessionController(sessionService)
	c.InteractionController = controller.NewInteractionController(interactionService)

	return c
}

// Close releases the event bus and broker connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func connectRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Rate limits are kept in memory", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
