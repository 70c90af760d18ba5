package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	utilityRentSingle = 4
	utilityRentBoth   = 10
)

// rentFor computes the rent an opponent owes on the tile.
func (that *Engine) rentFor(game *entity.Game, tile *entity.Tile, owner *entity.Player) int {
	switch tile.Type {
	case entity.TileStation:
		owned := game.CountOwnedOfType(owner, entity.TileStation)
		return tile.Rents[0] << (owned - 1)

	case entity.TileUtility:
		diceSum := game.Dice[0] + game.Dice[1]
		if game.CountOwnedOfType(owner, entity.TileUtility) >= 2 {
			return diceSum * utilityRentBoth
		}
		return diceSum * utilityRentSingle

	default:
		if tile.Houses == 0 && game.OwnsGroup(owner, tile.Group) {
			// monopoly bonus applies only while the street is unimproved
			return tile.Rents[0] * 2
		}
		return tile.Rents[tile.Houses]
	}
}

// charge moves money from payer to beneficiary (nil means the bank). The
// balance may go transiently negative; that triggers bankruptcy.
func (that *Engine) charge(game *entity.Game, payer *entity.Player, amount int, beneficiary *entity.Player) {
	payer.Money -= amount
	if beneficiary != nil {
		beneficiary.Money += amount
	}

	if payer.Money < 0 {
		that.declareBankrupt(game, payer)
	}
}

// declareBankrupt marks the player bankrupt, releases every tile they own
// and immediately re-evaluates the win condition. A bankrupt player cannot
// hold the turn, so when the game goes on the pointer moves along.
func (that *Engine) declareBankrupt(game *entity.Game, player *entity.Player) {
	player.Bankrupt = true

	for _, id := range player.Properties {
		tile := game.TileByID(id)
		tile.Owner = ""
		tile.Houses = 0
	}
	player.Properties = nil

	game.LogEvent(entity.EventInfo, "%s goes bankrupt, their properties return to the bank", player.Name)

	that.checkWinner(game)
	if game.IsFinished() {
		return
	}

	if current := game.CurrentPlayer(); current != nil && current.ID == player.ID {
		that.advanceTurn(game)
	}
}

func (that *Engine) buyTile(game *entity.Game, player *entity.Player) error {
	if game.Phase != entity.PhaseDecide {
		return apperror.ErrWrongPhase
	}

	tile := game.TileByID(player.Position)
	if !tile.IsOwnable() {
		return apperror.ErrTileNotOwnable
	}

	if tile.Owner != "" {
		return apperror.ErrTileAlreadyOwned
	}

	if player.Money < tile.Price {
		return apperror.ErrInsufficientFunds
	}

	player.Money -= tile.Price
	tile.Owner = player.ID
	player.AddProperty(tile.ID)

	game.LogEvent(entity.EventInfo, "%s buys %s for $%d", player.Name, tile.Name, tile.Price)
	that.finishDecision(game)

	return nil
}

func (that *Engine) declineTile(game *entity.Game, player *entity.Player) error {
	if game.Phase != entity.PhaseDecide {
		return apperror.ErrWrongPhase
	}

	tile := game.TileByID(player.Position)
	game.LogEvent(entity.EventInfo, "%s declines to buy %s", player.Name, tile.Name)
	that.finishDecision(game)

	return nil
}

// finishDecision leaves the purchase-decision phase, honoring a double
// rolled before it.
func (that *Engine) finishDecision(game *entity.Game) {
	if game.ExtraTurn {
		game.Phase = entity.PhaseRoll
	} else {
		game.Phase = entity.PhaseEnd
	}
	game.ExtraTurn = false
}

func (that *Engine) payBail(game *entity.Game, player *entity.Player) error {
	if !player.Jailed {
		return apperror.ErrNotJailed
	}

	if game.Phase != entity.PhaseRoll {
		return apperror.ErrWrongPhase
	}

	if player.Money < that.rules.BailFee {
		return apperror.ErrInsufficientFunds
	}

	player.Money -= that.rules.BailFee
	player.Jailed = false
	player.JailTurns = 0

	game.LogEvent(entity.EventInfo, "%s pays $%d bail and is free to roll", player.Name, that.rules.BailFee)

	return nil
}

func (that *Engine) buildHouse(game *entity.Game, player *entity.Player, tileID int) error {
	if game.Phase == entity.PhaseDecide {
		return apperror.ErrWrongPhase
	}

	tile := game.TileByID(tileID)
	if tile == nil {
		return apperror.ErrUnknownTile
	}

	if !tile.IsBuildable() {
		return apperror.ErrTileNotOwnable
	}

	if tile.Owner != player.ID {
		return apperror.ErrNotTileOwner
	}

	if !game.OwnsGroup(player, tile.Group) {
		return apperror.ErrIncompleteGroup
	}

	if tile.Houses >= entity.MaxHouses {
		return apperror.ErrMaxBuildings
	}

	if player.Money < tile.HouseCost {
		return apperror.ErrInsufficientFunds
	}

	player.Money -= tile.HouseCost
	tile.Houses++

	if tile.Houses == entity.MaxHouses {
		game.LogEvent(entity.EventInfo, "%s builds a hotel on %s", player.Name, tile.Name)
	} else {
		game.LogEvent(entity.EventInfo, "%s builds a house on %s (%d)", player.Name, tile.Name, tile.Houses)
	}

	return nil
}
