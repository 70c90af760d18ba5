package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// resolveRoll runs the jail sub-state machine, the speeding rule and the
// movement for one roll intent.
func (that *Engine) resolveRoll(game *entity.Game, player *entity.Player) error {
	if game.Phase != entity.PhaseRoll {
		return apperror.ErrWrongPhase
	}

	die1, die2 := that.rnd.RollDice()
	game.Dice = [2]int{die1, die2}
	total := die1 + die2
	double := die1 == die2

	game.LogEvent(entity.EventInfo, "%s rolls %d and %d", player.Name, die1, die2)

	if player.Jailed {
		return that.resolveJailRoll(game, player, total, double)
	}

	if double {
		player.Doubles++
		if player.Doubles >= 3 {
			game.LogEvent(entity.EventInfo, "%s is caught speeding and goes to jail", player.Name)
			that.sendToJail(game, player)
			return nil
		}
	} else {
		player.Doubles = 0
	}

	that.moveForward(game, player, total)
	that.resolveLanding(game, player, double)

	return nil
}

func (that *Engine) resolveJailRoll(game *entity.Game, player *entity.Player, total int, double bool) error {
	if double {
		player.Jailed = false
		player.JailTurns = 0
		player.Doubles = 0
		game.LogEvent(entity.EventInfo, "%s rolls a double and walks out of jail", player.Name)

		that.moveForward(game, player, total)
		that.resolveLanding(game, player, true)

		return nil
	}

	if player.JailTurns >= 2 {
		// third failed attempt: bail is taken whether they can afford it or not
		game.LogEvent(entity.EventInfo, "%s pays $%d bail after three turns in jail", player.Name, that.rules.BailFee)
		that.charge(game, player, that.rules.BailFee, nil)

		player.Jailed = false
		player.JailTurns = 0

		if player.Bankrupt || game.IsFinished() {
			return nil
		}

		that.moveForward(game, player, total)
		that.resolveLanding(game, player, false)

		return nil
	}

	player.JailTurns++
	game.Phase = entity.PhaseEnd
	game.LogEvent(entity.EventInfo, "%s fails to roll a double and stays in jail", player.Name)

	return nil
}

// moveForward moves the player by the given number of steps and pays the
// pass-start bonus when the movement crosses or reaches position 0.
func (that *Engine) moveForward(game *entity.Game, player *entity.Player, steps int) {
	target := player.Position + steps
	player.Position = target % entity.BoardSize

	if target >= entity.BoardSize {
		player.Money += that.rules.PassStartBonus
		game.LogEvent(entity.EventInfo, "%s passes Go and collects $%d", player.Name, that.rules.PassStartBonus)
	}

	game.LogEvent(entity.EventInfo, "%s moves to %s", player.Name, game.TileByID(player.Position).Name)
}

func (that *Engine) sendToJail(game *entity.Game, player *entity.Player) {
	player.Position = entity.JailPosition
	player.Jailed = true
	player.JailTurns = 0
	player.Doubles = 0

	// incarceration ends the turn no matter what was rolled
	game.Phase = entity.PhaseEnd
	game.ExtraTurn = false
}
