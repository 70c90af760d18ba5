package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/replica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDice replays fixed rolls and card picks so pipeline tests are
// deterministic. The last roll repeats once the script runs out.
type scriptedDice struct {
	rolls [][2]int
	idx   int
}

func (that *scriptedDice) RollDice() (int, int) {
	if len(that.rolls) == 0 {
		return 1, 2
	}
	roll := that.rolls[that.idx]
	if that.idx < len(that.rolls)-1 {
		that.idx++
	}
	return roll[0], roll[1]
}

func (that *scriptedDice) PickCard(int) int {
	return 0
}

type fakeGameRepo struct {
	mu    sync.Mutex
	games map[string]*entity.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*entity.Game)}
}

func (that *fakeGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.games[game.ID] = game
	return nil
}

func (that *fakeGameRepo) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()
	delete(that.games, id)
	return nil
}

func (that *fakeGameRepo) has(id string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()
	_, ok := that.games[id]
	return ok
}

// snapshotBook records every broadcast snapshot in arrival order.
type snapshotBook struct {
	mu        sync.Mutex
	snapshots []replica.Snapshot
}

func (that *snapshotBook) record(_ string, snapshot replica.Snapshot) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.snapshots = append(that.snapshots, snapshot)
}

func (that *snapshotBook) latest() (replica.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()
	if len(that.snapshots) == 0 {
		return replica.Snapshot{}, false
	}
	return that.snapshots[len(that.snapshots)-1], true
}

func newTestGamePlay(t *testing.T, rolls [][2]int) (*GamePlay, *fakeGameRepo, *snapshotBook) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := monopoly.NewEngine(monopoly.DefaultRules(), &scriptedDice{rolls: rolls})
	repo := newFakeGameRepo()
	book := &snapshotBook{}

	gamePlay := NewGamePlay(logger, engine, NewBalanceDecider(100), repo, 20*time.Millisecond, time.Millisecond)
	gamePlay.SetBroadcast(book.record)

	return gamePlay, repo, book
}

func newStartedRoom(seats ...entity.Seat) *entity.Room {
	return &entity.Room{
		ID:     "room-1",
		Name:   "friday night",
		Status: entity.RoomStarted,
		Seats:  seats,
	}
}

func TestGamePlay_StartMatch(t *testing.T) {
	t.Run("The roster seeds the initial state and the first snapshot", func(t *testing.T) {
		// Given: a started room with a host and a bot
		gamePlay, repo, book := newTestGamePlay(t, nil)
		room := newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "bot1", Name: "Bot 1", IsAutomated: true},
		)

		// When: the match starts
		game, err := gamePlay.StartMatch(context.Background(), room)
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// Then: everyone sits at Go with the starting money
		require.Len(t, game.Players, 2)
		for _, player := range game.Players {
			assert.Equal(t, 1500, player.Money)
			assert.Equal(t, 0, player.Position)
		}
		assert.True(t, game.Players[0].Host)
		assert.True(t, game.Players[1].IsBot())
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, uint64(1), game.Seq)

		// And: the state is persisted and announced
		require.True(t, repo.has(game.ID))
		snapshot, ok := book.latest()
		require.True(t, ok)
		assert.Equal(t, uint64(1), snapshot.Seq)
	})
}

func TestGamePlay_Submit(t *testing.T) {
	t.Run("A rejected intent reaches nobody", func(t *testing.T) {
		// Given: a running match on Alice's turn
		gamePlay, _, book := newTestGamePlay(t, nil)
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// When: Bob rolls out of turn
		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p2"})

		// Then: he gets the rejection and no snapshot went out
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		snapshot, ok := book.latest()
		require.True(t, ok)
		assert.Equal(t, uint64(1), snapshot.Seq)
	})

	t.Run("An accepted intent bumps the sequence and is broadcast", func(t *testing.T) {
		// Given: Alice will roll a three onto unowned Baltic Avenue
		gamePlay, _, book := newTestGamePlay(t, [][2]int{{1, 2}})
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// When: she rolls
		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p1"})
		require.NoError(t, err)

		// Then: the broadcast carries the advanced state
		snapshot, ok := book.latest()
		require.True(t, ok)
		assert.Equal(t, uint64(2), snapshot.Seq)
		assert.Equal(t, 3, snapshot.Game.PlayerByID("p1").Position)
		assert.Equal(t, entity.PhaseDecide, snapshot.Game.Phase)

		current, ok := gamePlay.GameByID(game.ID)
		require.True(t, ok)
		assert.Equal(t, uint64(2), current.Seq)
	})

	t.Run("Submitting to an unknown match fails fast", func(t *testing.T) {
		gamePlay, _, _ := newTestGamePlay(t, nil)

		err := gamePlay.Submit(context.Background(), "no-such-game", monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p1"})
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestGamePlay_CardReveal(t *testing.T) {
	t.Run("A drawn card resolves by itself after the reveal delay", func(t *testing.T) {
		// Given: Alice will roll a seven onto Chance, drawing the dividend card
		gamePlay, _, book := newTestGamePlay(t, [][2]int{{3, 4}})
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// When: she rolls onto the chance tile
		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p1"})
		require.NoError(t, err)

		// Then: the card sits face down first
		snapshot, ok := book.latest()
		require.True(t, ok)
		require.NotNil(t, snapshot.Game.PendingCard)
		assert.Equal(t, 1500, snapshot.Game.PlayerByID("p1").Money)

		// And: once the delay passes the effect lands in a new snapshot
		require.Eventually(t, func() bool {
			snapshot, ok := book.latest()
			return ok && snapshot.Game.PendingCard == nil && snapshot.Seq >= 3
		}, time.Second, 5*time.Millisecond)

		snapshot, _ = book.latest()
		assert.Equal(t, 1650, snapshot.Game.PlayerByID("p1").Money)
	})
}

func TestGamePlay_Bots(t *testing.T) {
	t.Run("A bot plays its whole turn unattended", func(t *testing.T) {
		// Given: the bot holds the first seat and will roll a three onto
		// unowned Baltic Avenue
		gamePlay, _, book := newTestGamePlay(t, [][2]int{{1, 2}})
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "bot1", Name: "Bot 1", IsAutomated: true, IsHost: true},
			entity.Seat{ID: "p1", Name: "Alice"},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// Then: without anyone submitting a thing, the bot rolls, buys the
		// street and hands the dice to Alice
		require.Eventually(t, func() bool {
			snapshot, ok := book.latest()
			return ok && snapshot.Game.Turn == 1
		}, time.Second, 5*time.Millisecond)

		snapshot, _ := book.latest()
		assert.Equal(t, "bot1", snapshot.Game.TileByID(3).Owner)
		assert.Equal(t, 1440, snapshot.Game.PlayerByID("bot1").Money)
		assert.Equal(t, entity.PhaseRoll, snapshot.Game.Phase)
	})

	t.Run("Surrenders can leave the bot the last one standing", func(t *testing.T) {
		// Given: two humans and a bot
		gamePlay, _, book := newTestGamePlay(t, nil)
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
			entity.Seat{ID: "bot1", Name: "Bot 1", IsAutomated: true},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		// When: both humans give up
		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentSurrender, PlayerID: "p2"})
		require.NoError(t, err)

		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentSurrender, PlayerID: "p1"})
		require.NoError(t, err)

		// Then: the bot wins without rolling once
		require.Eventually(t, func() bool {
			snapshot, ok := book.latest()
			return ok && snapshot.Game.IsFinished()
		}, time.Second, 5*time.Millisecond)

		snapshot, _ := book.latest()
		assert.Equal(t, "bot1", snapshot.Game.Winner)
	})

	t.Run("A finished match is torn down and forgotten", func(t *testing.T) {
		// Given: a two-player match
		gamePlay, repo, _ := newTestGamePlay(t, nil)
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
		))
		require.NoError(t, err)

		// When: Alice surrenders and the match ends
		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentSurrender, PlayerID: "p1"})
		require.NoError(t, err)

		// Then: the match is gone from the registry and the store
		require.Eventually(t, func() bool {
			_, ok := gamePlay.GameByID(game.ID)
			return !ok && !repo.has(game.ID)
		}, time.Second, 5*time.Millisecond)

		err = gamePlay.Submit(context.Background(), game.ID, monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p2"})
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestHostSubmitter(t *testing.T) {
	t.Run("The host submits through the same pipeline as everyone else", func(t *testing.T) {
		// Given: a running match and the host's submitter
		gamePlay, _, book := newTestGamePlay(t, [][2]int{{1, 2}})
		game, err := gamePlay.StartMatch(context.Background(), newStartedRoom(
			entity.Seat{ID: "p1", Name: "Alice", IsHost: true},
			entity.Seat{ID: "p2", Name: "Bob"},
		))
		require.NoError(t, err)
		defer gamePlay.StopMatch(game.ID)

		var submitter replica.Submitter = NewHostSubmitter(gamePlay, game.ID)

		// When: the host rolls through it
		err = submitter.Submit(context.Background(), monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "p1"})
		require.NoError(t, err)

		// Then: the snapshot reflects the applied intent
		snapshot, ok := book.latest()
		require.True(t, ok)
		assert.Equal(t, uint64(2), snapshot.Seq)
	})
}
