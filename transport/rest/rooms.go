package rest

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository"
)

type roomRequest struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
	Name       string `json:"name,omitempty"`
}

func (that *Server) handleCreateRoom(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleCreateRoom")

	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	if req.PlayerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "playerId is required"})
	}

	room, err := that.rooms.CreateRoom(c.Context(), req.PlayerID, req.PlayerName, req.Name)
	if err != nil {
		log.Error("failed to create room", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create room"})
	}

	log.Info("room created", "roomID", room.ID)

	return c.Status(fiber.StatusCreated).JSON(room)
}

func (that *Server) handleListRooms(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleListRooms")

	rooms, err := that.rooms.ListOpenRooms(c.Context())
	if err != nil {
		log.Error("failed to list rooms", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list rooms"})
	}

	return c.JSON(rooms)
}

func (that *Server) handleGetRoom(c *fiber.Ctx) error {
	room, err := that.rooms.GetRoomByID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrRoomNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get room"})
	}

	return c.JSON(room)
}

func (that *Server) handleJoinRoom(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleJoinRoom")

	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := that.rooms.JoinRoom(c.Context(), c.Params("id"), req.PlayerID, req.PlayerName)
	if err != nil {
		return that.roomError(c, log, "failed to join room", err)
	}

	return c.JSON(room)
}

func (that *Server) handleAddBot(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleAddBot")

	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := that.rooms.AddBotSeat(c.Context(), c.Params("id"), req.PlayerID)
	if err != nil {
		return that.roomError(c, log, "failed to add bot seat", err)
	}

	return c.JSON(room)
}

func (that *Server) handleRemoveSeat(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleRemoveSeat")

	room, err := that.rooms.RemoveSeat(c.Context(), c.Params("id"), c.Params("playerID"))
	if err != nil {
		return that.roomError(c, log, "failed to remove seat", err)
	}

	return c.JSON(room)
}

// handleStartRoom closes the roster and hands it to the host pipeline.
func (that *Server) handleStartRoom(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleStartRoom")

	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := that.rooms.StartRoom(c.Context(), c.Params("id"), req.PlayerID)
	if err != nil {
		return that.roomError(c, log, "failed to start room", err)
	}

	game, err := that.gamePlay.StartMatch(c.Context(), room)
	if err != nil {
		log.Error("failed to start match", "roomID", room.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to start match"})
	}

	log.Info("match started", "gameID", game.ID)

	return c.JSON(game)
}

// handleDeleteRoom lets the host dissolve a room that never started.
func (that *Server) handleDeleteRoom(c *fiber.Ctx) error {
	log := that.logger.With("method", "handleDeleteRoom")

	var req roomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	room, err := that.rooms.GetRoomByID(c.Context(), c.Params("id"))
	if err != nil {
		return that.roomError(c, log, "failed to get room", err)
	}

	host := room.Host()
	if host == nil || host.ID != req.PlayerID {
		return that.roomError(c, log, "failed to delete room", apperror.ErrNotRoomHost)
	}

	if err = that.rooms.DeleteRoom(c.Context(), room.ID); err != nil {
		return that.roomError(c, log, "failed to delete room", err)
	}

	log.Info("room deleted", "roomID", room.ID)

	return c.SendStatus(fiber.StatusNoContent)
}

func (that *Server) roomError(c *fiber.Ctx, log *slog.Logger, message string, err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
	case errors.Is(err, apperror.ErrRoomFull),
		errors.Is(err, apperror.ErrRoomNotOpen),
		errors.Is(err, apperror.ErrNotEnoughSeat),
		errors.Is(err, apperror.ErrNotRoomHost):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error(message, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
}
