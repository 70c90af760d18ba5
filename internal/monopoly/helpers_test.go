package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// stubRandomizer replays scripted rolls and card picks; the last entry
// repeats once the script runs out.
type stubRandomizer struct {
	rolls   [][2]int
	cards   []int
	rollIdx int
	cardIdx int
}

func (that *stubRandomizer) RollDice() (int, int) {
	if len(that.rolls) == 0 {
		return 1, 2
	}

	roll := that.rolls[that.rollIdx]
	if that.rollIdx < len(that.rolls)-1 {
		that.rollIdx++
	}

	return roll[0], roll[1]
}

func (that *stubRandomizer) PickCard(deckSize int) int {
	if len(that.cards) == 0 {
		return 0
	}

	pick := that.cards[that.cardIdx]
	if that.cardIdx < len(that.cards)-1 {
		that.cardIdx++
	}

	return pick % deckSize
}

func newTestEngine(rolls [][2]int, cards []int) *Engine {
	return NewEngine(DefaultRules(), &stubRandomizer{rolls: rolls, cards: cards})
}

func newTestGame(names ...string) *entity.Game {
	game := entity.NewGame("match-1")

	for i, name := range names {
		game.Players = append(game.Players, &entity.Player{
			ID:    string(rune('a' + i)),
			Name:  name,
			Money: 1500,
		})
	}

	game.Status = entity.StatusOngoing
	game.Phase = entity.PhaseRoll

	return game
}

// giveTile assigns the tile to the player on both sides of the ownership
// relation.
func giveTile(game *entity.Game, playerID string, tileID int) {
	game.TileByID(tileID).Owner = playerID
	game.PlayerByID(playerID).AddProperty(tileID)
}
