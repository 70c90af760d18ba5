package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

func (that *Engine) endTurn(game *entity.Game, _ *entity.Player) error {
	if game.Phase != entity.PhaseEnd {
		return apperror.ErrWrongPhase
	}

	that.advanceTurn(game)

	return nil
}

// advanceTurn moves the current-player pointer to the next non-bankrupt
// player. The loop is bounded by the player count so it terminates even
// when almost everyone is gone.
func (that *Engine) advanceTurn(game *entity.Game) {
	if current := game.CurrentPlayer(); current != nil {
		current.Doubles = 0
	}
	game.ExtraTurn = false

	that.checkWinner(game)
	if game.IsFinished() {
		return
	}

	for i := 0; i < len(game.Players); i++ {
		game.Turn = (game.Turn + 1) % len(game.Players)
		if !game.Players[game.Turn].Bankrupt {
			break
		}
	}

	game.Phase = entity.PhaseRoll
	game.LogEvent(entity.EventInfo, "it is %s's turn", game.CurrentPlayer().Name)
}

// checkWinner ends the match once at most one active player remains.
func (that *Engine) checkWinner(game *entity.Game) {
	active := game.ActivePlayers()
	if len(active) > 1 {
		return
	}

	game.Status = entity.StatusFinished
	game.Phase = ""
	game.ExtraTurn = false

	if len(active) == 1 {
		game.Winner = active[0].ID
		game.LogEvent(entity.EventInfo, "%s wins the game", active[0].Name)
		return
	}

	game.LogEvent(entity.EventInfo, "the game ends with no players left")
}

func (that *Engine) surrender(game *entity.Game, player *entity.Player) {
	game.LogEvent(entity.EventInfo, "%s surrenders", player.Name)

	// declareBankrupt hands the dice on when it was their turn
	that.declareBankrupt(game, player)
}
