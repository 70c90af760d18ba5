package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

var ErrRoomNotFound = errors.New("room not found")

// openRoomsKey indexes the ids of rooms still accepting players.
const openRoomsKey = "rooms:open"

type RoomRepository interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	ListOpen(ctx context.Context) ([]*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbRoom struct {
	client *redis.Client
}

func NewRoomRepository(client *redis.Client) RoomRepository {
	return &dbRoom{
		client: client,
	}
}

func (that *dbRoom) CreateOrUpdate(ctx context.Context, room *entity.Room) error {
	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("could not marshal room: %w", err)
	}

	roomKey := "room:" + room.ID
	if err = that.client.Set(ctx, roomKey, roomJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set room: %w", err)
	}

	if room.IsOpen() {
		if err = that.client.SAdd(ctx, openRoomsKey, room.ID).Err(); err != nil {
			return fmt.Errorf("failed to index open room: %w", err)
		}
		return nil
	}

	if err = that.client.SRem(ctx, openRoomsKey, room.ID).Err(); err != nil {
		return fmt.Errorf("failed to unindex room: %w", err)
	}

	return nil
}

func (that *dbRoom) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	roomKey := "room:" + id

	response, err := that.client.Get(ctx, roomKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Room{}, ErrRoomNotFound
	}

	if err != nil {
		return &entity.Room{}, fmt.Errorf("failed to get room by ID: %w", err)
	}

	var existingRoom entity.Room
	if err = json.Unmarshal([]byte(response), &existingRoom); err != nil {
		return &entity.Room{}, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &existingRoom, nil
}

func (that *dbRoom) ListOpen(ctx context.Context) ([]*entity.Room, error) {
	ids, err := that.client.SMembers(ctx, openRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open rooms: %w", err)
	}

	rooms := make([]*entity.Room, 0, len(ids))
	for _, id := range ids {
		room, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrRoomNotFound) {
			// index entry outlived the room, drop it
			_ = that.client.SRem(ctx, openRoomsKey, id).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (that *dbRoom) DeleteByID(ctx context.Context, id string) error {
	roomKey := "room:" + id

	if err := that.client.Del(ctx, roomKey).Err(); err != nil {
		return fmt.Errorf("failed to delete room by ID: %w", err)
	}

	if err := that.client.SRem(ctx, openRoomsKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex room: %w", err)
	}

	return nil
}
