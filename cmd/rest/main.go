package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"live-rooms-be/internal/bootstrap"
	"live-rooms-be/internal/config"
	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/internal/server"
	"live-rooms-be/internal/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Telemetry.Enabled, cfg.Telemetry.Endpoint)
	defer shutdownTracer(context.Background())

	// 3. Initialize Storage
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	storage, err := bootstrap.OpenStorage(connectCtx, cfg)
	cancel()
	if err != nil {
		log.Panicf("Unable to open storage: %v", err)
	}
	defer storage.Close()

	// 4. Bootstrap Dependencies (Container)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	container := bootstrap.NewContainer(storage.Factory, cfg, sysLogger)
	defer container.Close()

	// 5. Start Background Services
	log.Println("Background: Starting OTP mail consumer...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
