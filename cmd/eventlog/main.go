package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"live-rooms-be/internal/config"
	"live-rooms-be/pkg/events"
	pktNats "live-rooms-be/pkg/nats"

	"github.com/fatih/color"
)

// eventlog tails the domain event stream, e.g. `go run ./cmd/eventlog -type SESSION_STARTED`.
func main() {
	eventType := flag.String("type", "", "only show this event type (default: all)")
	durable := flag.String("durable", "", "durable consumer name to resume from")
	flag.Parse()

	cfg := config.Load()
	if cfg.Events.NatsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL, func(format string, args ...any) {
		color.Red(format, args...)
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	subject := pktNats.SubjectPrefix + ">"
	if *eventType != "" {
		subject = pktNats.Subject(*eventType)
	}

	if err := sub.Subscribe(ctx, subject, *durable, printEvent); err != nil {
		log.Fatalf("Error: %v", err)
	}

	color.Cyan("📡 Listening on %s (Ctrl+C to stop)\n", subject)
	<-ctx.Done()
}

func printEvent(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}

	ts := color.New(color.Faint).Sprint(event.Timestamp().Local().Format(time.TimeOnly))
	name := color.New(color.FgYellow, color.Bold).Sprint(event.EventType())
	fmt.Printf("%s %s %s\n", ts, name, payload)
	return nil
}
