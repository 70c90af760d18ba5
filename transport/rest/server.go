package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type roomUseCase interface {
	CreateRoom(ctx context.Context, hostID, hostName, roomName string) (*entity.Room, error)
	GetRoomByID(ctx context.Context, id string) (*entity.Room, error)
	ListOpenRooms(ctx context.Context) ([]*entity.Room, error)

	JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.Room, error)
	AddBotSeat(ctx context.Context, roomID, actorID string) (*entity.Room, error)
	RemoveSeat(ctx context.Context, roomID, playerID string) (*entity.Room, error)

	StartRoom(ctx context.Context, roomID, actorID string) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type matchStarter interface {
	StartMatch(ctx context.Context, room *entity.Room) (*entity.Game, error)
}

// Server is the room directory: everything that happens before a match
// exists goes through here.
type Server struct {
	logger   *slog.Logger
	rooms    roomUseCase
	gamePlay matchStarter

	app *fiber.App
}

func New(logger *slog.Logger, rooms roomUseCase, gamePlay matchStarter) *Server {
	server := &Server{
		logger:   logger.With("component", "rest"),
		rooms:    rooms,
		gamePlay: gamePlay,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/ping", server.handlePing)

	app.Post("/rooms", server.handleCreateRoom)
	app.Get("/rooms", server.handleListRooms)
	app.Get("/rooms/:id", server.handleGetRoom)
	app.Post("/rooms/:id/join", server.handleJoinRoom)
	app.Post("/rooms/:id/bots", server.handleAddBot)
	app.Delete("/rooms/:id/seats/:playerID", server.handleRemoveSeat)
	app.Post("/rooms/:id/start", server.handleStartRoom)
	app.Delete("/rooms/:id", server.handleDeleteRoom)

	server.app = app

	return server
}

// Start - starts the room directory server.
func (that *Server) Start(ctx context.Context, port string) error {
	go func() {
		<-ctx.Done()
		if err := that.app.Shutdown(); err != nil {
			that.logger.Error("failed to shutdown rest server", "error", err)
		}
	}()

	if err := that.app.Listen(":" + port); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handlePing(c *fiber.Ctx) error {
	return c.SendString("pong")
}
