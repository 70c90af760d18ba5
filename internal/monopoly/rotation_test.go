package monopoly

import (
	"testing"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestEngine_EndTurn(t *testing.T) {
	t.Run("Ending the turn hands the dice to the next player", func(t *testing.T) {
		// Given: Alice has nothing left to do
		engine := newTestEngine(nil, nil)
		game := newTestGame("Alice", "Bob")
		game.Phase = entity.PhaseEnd
		game.PlayerByID("a").Doubles = 1

		// When: she ends her turn
		next, _, err := engine.Apply(game, Intent{Kind: IntentEndTurn, PlayerID: "a"})
		require.NoError(t, err)

		// Then: Bob is up, the doubles counter is wiped
		require.Equal(t, 1, next.Turn)
		require.Equal(t, entity.PhaseRoll, next.Phase)
		require.Equal(t, 0, next.PlayerByID("a").Doubles)
		require.False(t, next.ExtraTurn)
	})

	t.Run("Bankrupt players are skipped in the rotation", func(t *testing.T) {
		// Given: Bob is out of the game
		engine := newTestEngine(nil, nil)
		game := newTestGame("Alice", "Bob", "Carol")
		game.PlayerByID("b").Bankrupt = true
		game.Phase = entity.PhaseEnd

		// When: Alice ends her turn
		next, _, err := engine.Apply(game, Intent{Kind: IntentEndTurn, PlayerID: "a"})
		require.NoError(t, err)

		// Then: Carol gets the dice, not Bob
		require.Equal(t, 2, next.Turn)
	})

	t.Run("The rotation wraps back to the first seat", func(t *testing.T) {
		engine := newTestEngine(nil, nil)
		game := newTestGame("Alice", "Bob", "Carol")
		game.Turn = 2
		game.Phase = entity.PhaseEnd

		next, _, err := engine.Apply(game, Intent{Kind: IntentEndTurn, PlayerID: "c"})
		require.NoError(t, err)

		require.Equal(t, 0, next.Turn)
	})

	t.Run("A turn cannot end before it is over", func(t *testing.T) {
		engine := newTestEngine(nil, nil)
		game := newTestGame("Alice", "Bob")

		next, _, err := engine.Apply(game, Intent{Kind: IntentEndTurn, PlayerID: "a"})

		require.ErrorIs(t, err, apperror.ErrWrongPhase)
		require.Same(t, game, next)
	})
}
