package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/pkg"
)

type RoomService interface {
	CreateRoom(ctx context.Context, hostID, hostName, roomName string) (*entity.Room, error)
	GetRoomByID(ctx context.Context, id string) (*entity.Room, error)
	ListOpenRooms(ctx context.Context) ([]*entity.Room, error)

	JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.Room, error)
	AddBotSeat(ctx context.Context, roomID, actorID string) (*entity.Room, error)
	RemoveSeat(ctx context.Context, roomID, playerID string) (*entity.Room, error)

	StartRoom(ctx context.Context, roomID, actorID string) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	ListOpen(ctx context.Context) ([]*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
}

type roomService struct {
	roomRepo roomRepo
}

func NewRoomService(roomRepo roomRepo) RoomService {
	return &roomService{
		roomRepo: roomRepo,
	}
}

func (that *roomService) CreateRoom(ctx context.Context, hostID, hostName, roomName string) (*entity.Room, error) {
	room := &entity.Room{
		ID:     pkg.GenerateRoomID(),
		Name:   roomName,
		Status: entity.RoomOpen,
		Seats: []entity.Seat{
			{ID: hostID, Name: hostName, IsHost: true},
		},
	}

	if err := that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}

func (that *roomService) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

func (that *roomService) ListOpenRooms(ctx context.Context) ([]*entity.Room, error) {
	rooms, err := that.roomRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open rooms: %w", err)
	}

	return rooms, nil
}

func (that *roomService) JoinRoom(ctx context.Context, roomID, playerID, name string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	if !room.IsOpen() {
		return nil, apperror.ErrRoomNotOpen
	}

	if room.HasSeat(playerID) {
		return room, nil
	}

	if room.IsFull() {
		return nil, apperror.ErrRoomFull
	}

	room.Seats = append(room.Seats, entity.Seat{ID: playerID, Name: name})

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}

func (that *roomService) AddBotSeat(ctx context.Context, roomID, actorID string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	if !that.isHost(room, actorID) {
		return nil, apperror.ErrNotRoomHost
	}

	if !room.IsOpen() {
		return nil, apperror.ErrRoomNotOpen
	}

	if room.IsFull() {
		return nil, apperror.ErrRoomFull
	}

	bots := 0
	for _, seat := range room.Seats {
		if seat.IsAutomated {
			bots++
		}
	}

	room.Seats = append(room.Seats, entity.Seat{
		ID:          pkg.GenerateNewSessionID(),
		Name:        fmt.Sprintf("Bot %d", bots+1),
		IsAutomated: true,
	})

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}

func (that *roomService) RemoveSeat(ctx context.Context, roomID, playerID string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	for i, seat := range room.Seats {
		if seat.ID != playerID {
			continue
		}

		room.Seats = append(room.Seats[:i], room.Seats[i+1:]...)

		// a room without its host does not survive
		if seat.IsHost || len(room.Seats) == 0 {
			if err = that.roomRepo.DeleteByID(ctx, roomID); err != nil {
				return nil, fmt.Errorf("failed to delete room: %w", err)
			}
			return room, nil
		}

		if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to update room: %w", err)
		}

		return room, nil
	}

	return room, nil
}

func (that *roomService) StartRoom(ctx context.Context, roomID, actorID string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	if !that.isHost(room, actorID) {
		return nil, apperror.ErrNotRoomHost
	}

	if !room.IsOpen() {
		return nil, apperror.ErrRoomNotOpen
	}

	if len(room.Seats) < entity.MinSeats {
		return nil, apperror.ErrNotEnoughSeat
	}

	room.Status = entity.RoomStarted

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}

func (that *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := that.roomRepo.DeleteByID(ctx, roomID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (that *roomService) isHost(room *entity.Room, actorID string) bool {
	host := room.Host()
	return host != nil && host.ID == actorID
}
