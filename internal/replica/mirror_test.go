package replica

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithSeq(seq uint64) Snapshot {
	game := entity.NewGame("test-game")
	game.Seq = seq
	return NewSnapshot(game)
}

func TestMirror_ApplySnapshot(t *testing.T) {
	t.Run("The first snapshot is always adopted", func(t *testing.T) {
		mirror := NewMirror()

		require.True(t, mirror.ApplySnapshot(snapshotWithSeq(5)))

		require.NotNil(t, mirror.Game())
		assert.Equal(t, uint64(5), mirror.Seq())
	})

	t.Run("Stale and duplicate snapshots are discarded", func(t *testing.T) {
		// Given: the mirror is at sequence 5
		mirror := NewMirror()
		require.True(t, mirror.ApplySnapshot(snapshotWithSeq(5)))

		// When: older and equal sequences arrive out of order
		require.False(t, mirror.ApplySnapshot(snapshotWithSeq(3)))
		require.False(t, mirror.ApplySnapshot(snapshotWithSeq(5)))

		// Then: the mirror did not move
		assert.Equal(t, uint64(5), mirror.Seq())

		// And a newer one still lands
		require.True(t, mirror.ApplySnapshot(snapshotWithSeq(6)))
		assert.Equal(t, uint64(6), mirror.Seq())
	})

	t.Run("A snapshot without a game is ignored", func(t *testing.T) {
		mirror := NewMirror()

		require.False(t, mirror.ApplySnapshot(Snapshot{Seq: 9}))
		assert.Nil(t, mirror.Game())
	})

	t.Run("The local selection survives snapshot adoption", func(t *testing.T) {
		// Given: the user highlighted a tile
		mirror := NewMirror()
		mirror.Select(24)

		// When: a fresh snapshot arrives
		require.True(t, mirror.ApplySnapshot(snapshotWithSeq(1)))

		// Then: the highlight is still there
		assert.Equal(t, 24, mirror.Selection())
	})

	t.Run("Adoption closes the update channel exactly once", func(t *testing.T) {
		mirror := NewMirror()
		first := mirror.Updated()

		require.True(t, mirror.ApplySnapshot(snapshotWithSeq(1)))

		select {
		case <-first:
		default:
			t.Fatal("expected the update channel to be closed")
		}

		// the replacement channel stays open until the next adoption
		select {
		case <-mirror.Updated():
			t.Fatal("expected a fresh open channel")
		default:
		}
	})
}

func TestRemoteSubmitter(t *testing.T) {
	t.Run("Submit returns once the next broadcast lands", func(t *testing.T) {
		// Given: a mirror whose send path echoes back a snapshot
		mirror := NewMirror()
		send := func(_ context.Context, _ monopoly.Intent) error {
			go func() {
				time.Sleep(10 * time.Millisecond)
				mirror.ApplySnapshot(snapshotWithSeq(1))
			}()
			return nil
		}
		submitter := NewRemoteSubmitter(send, mirror)

		// When / Then: submitting blocks until the snapshot is adopted
		err := submitter.Submit(context.Background(), monopoly.Intent{Kind: monopoly.IntentRoll, PlayerID: "a"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), mirror.Seq())
	})

	t.Run("A send failure is reported immediately", func(t *testing.T) {
		mirror := NewMirror()
		sendErr := errors.New("relay is down")
		submitter := NewRemoteSubmitter(func(context.Context, monopoly.Intent) error {
			return sendErr
		}, mirror)

		err := submitter.Submit(context.Background(), monopoly.Intent{Kind: monopoly.IntentRoll})
		require.ErrorIs(t, err, sendErr)
	})

	t.Run("A broadcast that never comes times out with the context", func(t *testing.T) {
		mirror := NewMirror()
		submitter := NewRemoteSubmitter(func(context.Context, monopoly.Intent) error {
			return nil
		}, mirror)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := submitter.Submit(ctx, monopoly.Intent{Kind: monopoly.IntentRoll})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
