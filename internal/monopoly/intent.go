package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	IntentRoll      = "roll"
	IntentBuy       = "buy"
	IntentDecline   = "decline"
	IntentPayBail   = "pay-bail"
	IntentUpgrade   = "upgrade"
	IntentEndTurn   = "end-turn"
	IntentSurrender = "surrender"
)

// Intent is what a participant asks the host to do. Tile is only used by
// the upgrade intent.
type Intent struct {
	Kind     string `json:"kind"`
	PlayerID string `json:"playerId"`
	Tile     int    `json:"tile,omitempty"`
}

// Rules are the bank-sourced amounts of the game. They never change during
// a match.
type Rules struct {
	StartMoney     int
	PassStartBonus int
	BailFee        int
}

func DefaultRules() Rules {
	return Rules{
		StartMoney:     1500,
		PassStartBonus: 200,
		BailFee:        50,
	}
}

// Engine resolves intents against a game state. It performs no I/O; chance
// comes exclusively from the injected Randomizer.
type Engine struct {
	rules Rules
	rnd   Randomizer
}

func NewEngine(rules Rules, rnd Randomizer) *Engine {
	return &Engine{
		rules: rules,
		rnd:   rnd,
	}
}

func (that *Engine) Rules() Rules {
	return that.rules
}

// Apply validates the intent and produces the next state plus the log
// entries the transition appended. On a validation error the input state is
// returned untouched; nothing was mutated.
func (that *Engine) Apply(game *entity.Game, intent Intent) (*entity.Game, []entity.Event, error) {
	if game.IsFinished() {
		return game, nil, apperror.ErrGameFinished
	}

	if !game.IsOngoing() {
		return game, nil, apperror.ErrGameIsNotStarted
	}

	actor := game.PlayerByID(intent.PlayerID)
	if actor == nil {
		return game, nil, apperror.ErrUnknownPlayer
	}

	if actor.Bankrupt {
		return game, nil, apperror.ErrPlayerBankrupt
	}

	// surrender is the one intent any seated player may send out of turn
	if intent.Kind == IntentSurrender {
		next := game.Clone()
		mark := len(next.Events)
		that.surrender(next, next.PlayerByID(intent.PlayerID))
		return next, next.Events[mark:], nil
	}

	current := game.CurrentPlayer()
	if current == nil || current.ID != intent.PlayerID {
		return game, nil, apperror.ErrNotYourTurn
	}

	next := game.Clone()
	player := next.CurrentPlayer()
	mark := len(next.Events)

	var err error

	switch intent.Kind {
	case IntentRoll:
		err = that.resolveRoll(next, player)
	case IntentBuy:
		err = that.buyTile(next, player)
	case IntentDecline:
		err = that.declineTile(next, player)
	case IntentPayBail:
		err = that.payBail(next, player)
	case IntentUpgrade:
		err = that.buildHouse(next, player, intent.Tile)
	case IntentEndTurn:
		err = that.endTurn(next, player)
	default:
		err = apperror.ErrUnknownIntent
	}

	if err != nil {
		return game, nil, err
	}

	return next, next.Events[mark:], nil
}

// ResolveCard applies the pending card effect to the player who drew it.
// The host pipeline calls this once the reveal delay has passed.
func (that *Engine) ResolveCard(game *entity.Game) (*entity.Game, []entity.Event, error) {
	if game.PendingCard == nil {
		return game, nil, apperror.ErrNoPendingCard
	}

	next := game.Clone()
	mark := len(next.Events)

	that.flushPendingCard(next)

	return next, next.Events[mark:], nil
}
