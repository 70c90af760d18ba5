package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

// resolveLanding dispatches on the tile the player just arrived at. The
// double flag decides whether the player may roll again afterwards.
func (that *Engine) resolveLanding(game *entity.Game, player *entity.Player, double bool) {
	tile := game.TileByID(player.Position)

	switch tile.Type {
	case entity.TileGoToJail:
		game.LogEvent(entity.EventInfo, "%s is sent to jail", player.Name)
		that.sendToJail(game, player)
		return

	case entity.TileChance, entity.TileCommunity:
		// an earlier draw still waiting on its reveal is applied now, so no
		// card effect is ever lost
		that.flushPendingCard(game)
		if player.Bankrupt || game.IsFinished() {
			return
		}

		card := entity.ChanceDeck[that.rnd.PickCard(len(entity.ChanceDeck))]
		game.PendingCard = &card
		game.PendingCardFor = player.ID
		game.LogEvent(entity.EventInfo, "%s draws a card: %s", player.Name, card.Text)

	case entity.TileTax:
		game.LogEvent(entity.EventInfo, "%s pays $%d tax", player.Name, tile.Tax)
		that.charge(game, player, tile.Tax, nil)
		if player.Bankrupt || game.IsFinished() {
			return
		}

	case entity.TileProperty, entity.TileStation, entity.TileUtility:
		if tile.Owner == "" {
			game.Phase = entity.PhaseDecide
			game.ExtraTurn = double
			game.LogEvent(entity.EventInfo, "%s may buy %s for $%d", player.Name, tile.Name, tile.Price)
			return
		}

		owner := game.PlayerByID(tile.Owner)
		if owner != nil && owner.ID != player.ID && !owner.Bankrupt {
			rent := that.rentFor(game, tile, owner)
			game.LogEvent(entity.EventInfo, "%s pays $%d rent to %s for %s", player.Name, rent, owner.Name, tile.Name)
			that.charge(game, player, rent, owner)
			if player.Bankrupt || game.IsFinished() {
				return
			}
		}

	default:
		game.LogEvent(entity.EventInfo, "%s lands on %s", player.Name, tile.Name)
	}

	if double {
		game.Phase = entity.PhaseRoll
	} else {
		game.Phase = entity.PhaseEnd
	}
}

// flushPendingCard applies the parked card to its drawer and clears it. A
// card whose drawer went bankrupt in the meantime fizzles.
func (that *Engine) flushPendingCard(game *entity.Game) {
	if game.PendingCard == nil {
		return
	}

	card := *game.PendingCard
	drawer := game.PlayerByID(game.PendingCardFor)
	game.PendingCard = nil
	game.PendingCardFor = ""

	if drawer == nil || drawer.Bankrupt {
		return
	}

	that.applyCard(game, drawer, card)
}

// applyCard runs a drawn card's effect once the reveal delay has passed.
func (that *Engine) applyCard(game *entity.Game, player *entity.Player, card entity.Card) {
	switch card.Effect {
	case entity.CardMoney:
		if card.Value >= 0 {
			player.Money += card.Value
			game.LogEvent(entity.EventInfo, "%s receives $%d", player.Name, card.Value)
			return
		}
		game.LogEvent(entity.EventInfo, "%s pays $%d", player.Name, -card.Value)
		that.charge(game, player, -card.Value, nil)

	case entity.CardMoveTo:
		if card.Value == entity.JailPosition {
			game.LogEvent(entity.EventInfo, "%s is sent to jail", player.Name)
			that.sendToJail(game, player)
			return
		}
		if card.Value < player.Position {
			player.Money += that.rules.PassStartBonus
			game.LogEvent(entity.EventInfo, "%s passes Go and collects $%d", player.Name, that.rules.PassStartBonus)
		}
		player.Position = card.Value
		game.LogEvent(entity.EventInfo, "%s moves to %s", player.Name, game.TileByID(player.Position).Name)

	case entity.CardMoveSteps:
		target := player.Position + card.Value
		player.Position = ((target % entity.BoardSize) + entity.BoardSize) % entity.BoardSize
		if card.Value > 0 && target >= entity.BoardSize {
			player.Money += that.rules.PassStartBonus
			game.LogEvent(entity.EventInfo, "%s passes Go and collects $%d", player.Name, that.rules.PassStartBonus)
		}
		game.LogEvent(entity.EventInfo, "%s moves to %s", player.Name, game.TileByID(player.Position).Name)

	case entity.CardGoToJail:
		game.LogEvent(entity.EventInfo, "%s is sent to jail", player.Name)
		that.sendToJail(game, player)
	}
}
