package repository

import (
	"testing"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenRoom(id string) *entity.Room {
	return &entity.Room{
		ID:     id,
		Name:   "friday night",
		Status: entity.RoomOpen,
		Seats: []entity.Seat{
			{ID: "p1", Name: "Alice", IsHost: true},
		},
	}
}

func TestRoomRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: an open room with a host
	room := newOpenRoom("room-123")

	// When: CreateOrUpdate is called
	err := roomRepo.CreateOrUpdate(ctx, room)

	// Then: no error should be returned, and the room is listed as open
	require.NoError(t, err)

	open, err := roomRepo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, room.ID, open[0].ID)
}

func TestRoomRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a stored room with two seats
		room := newOpenRoom("room-123")
		room.Seats = append(room.Seats, entity.Seat{ID: "bot1", Name: "Bot 1", IsAutomated: true})

		err := roomRepo.CreateOrUpdate(ctx, room)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedRoom, err := roomRepo.GetByID(ctx, room.ID)

		// Then: the retrieved room should match the saved room
		require.NoError(t, err)
		require.Equal(t, room.ID, retrievedRoom.ID)
		require.Len(t, retrievedRoom.Seats, 2)
		assert.True(t, retrievedRoom.Seats[0].IsHost)
		assert.True(t, retrievedRoom.Seats[1].IsAutomated)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedRoom, err := roomRepo.GetByID(ctx, "9999999")

		// Then: an ErrRoomNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrRoomNotFound, err)
		assert.Empty(t, retrievedRoom.ID)
	})
}

func TestRoomRepository_ListOpen(t *testing.T) {
	t.Run("ListOpen_SkipsStartedRooms", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: one open and one started room
		open := newOpenRoom("room-open")
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, open))

		started := newOpenRoom("room-started")
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, started))
		started.Status = entity.RoomStarted
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, started))

		// When: ListOpen is called
		rooms, err := roomRepo.ListOpen(ctx)

		// Then: only the open room is returned
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, open.ID, rooms[0].ID)
	})

	t.Run("ListOpen_DropsOrphanedIndexEntries", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a room whose record was deleted behind the index's back
		room := newOpenRoom("room-123")
		require.NoError(t, roomRepo.CreateOrUpdate(ctx, room))
		require.NoError(t, st.Storage.Del(ctx, "room:"+room.ID).Err())

		// When: ListOpen is called
		rooms, err := roomRepo.ListOpen(ctx)

		// Then: the orphan is silently skipped and unindexed
		require.NoError(t, err)
		assert.Empty(t, rooms)

		members, err := st.Storage.SMembers(ctx, "rooms:open").Result()
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestRoomRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: an open room in the store
	room := newOpenRoom("room-123")
	require.NoError(t, roomRepo.CreateOrUpdate(ctx, room))

	// When: DeleteByID is called
	err := roomRepo.DeleteByID(ctx, room.ID)

	// Then: the room is gone from both the store and the index
	require.NoError(t, err)

	_, err = roomRepo.GetByID(ctx, room.ID)
	assert.Equal(t, ErrRoomNotFound, err)

	rooms, err := roomRepo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
