package main

import (
	"context"
	"log"
	"time"

	"live-rooms-be/internal/bootstrap"
	"live-rooms-be/internal/config"
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/repository/specification"
	"live-rooms-be/internal/repository/unitofwork"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

type demoUser struct {
	Name  string
	Email string
	Bio   string
}

var demoUsers = []demoUser{
	{Name: "Demo Host", Email: "host@example.com", Bio: "Runs the weekly standup"},
	{Name: "Demo Guest", Email: "guest@example.com", Bio: "Mostly listens"},
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Error: Failed to open storage: %v", err)
	}
	defer storage.Close()

	color.Cyan("🌱 Seeding demo data (driver: %s)\n", cfg.Database.Driver)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}

	var host *entity.User
	for _, du := range demoUsers {
		user, err := seedUser(ctx, storage.Factory, du, string(hash))
		if err != nil {
			color.Red("Failed to seed %s: %v", du.Email, err)
			continue
		}
		if host == nil {
			host = user
		}
	}

	if host == nil {
		color.Red("No host user available, skipping room")
		return
	}

	if err := seedRoom(ctx, storage.Factory, host); err != nil {
		color.Red("Failed to seed room: %v", err)
		return
	}

	color.Green("\n✅ Seeding completed. Log in with any demo email and %q", demoPassword)
}

func seedUser(ctx context.Context, factory unitofwork.RepositoryFactory, du demoUser, hash string) (*entity.User, error) {
	uow := factory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: du.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		color.Yellow("User %s already exists, skipping...", du.Email)
		return existing, nil
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         du.Name,
		Email:        du.Email,
		PasswordHash: hash,
		IsVerified:   true,
		Bio:          du.Bio,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	color.Green("Created user: %s (%s)", user.Name, user.Email)
	return user, nil
}

func seedRoom(ctx context.Context, factory unitofwork.RepositoryFactory, host *entity.User) error {
	uow := factory.NewUnitOfWork(ctx)

	rooms, err := uow.RoomRepository().FindAll(ctx, specification.ActiveRooms{})
	if err != nil {
		return err
	}
	for _, r := range rooms {
		if r.HostId == host.Id {
			color.Yellow("Room %q already exists, skipping...", r.Title)
			return nil
		}
	}

	room := &entity.Room{
		Id:           uuid.New(),
		Title:        "Weekly Standup",
		Description:  "Demo room created by the seeder",
		HostId:       host.Id,
		Participants: []uuid.UUID{},
		InvitedUsers: []uuid.UUID{},
		Moderators:   []uuid.UUID{},
		Privacy:      entity.RoomPrivacyPublic,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uow.RoomRepository().Create(ctx, room); err != nil {
		return err
	}

	color.Green("Created room: %s (%s)", room.Title, room.Id)
	return nil
}
