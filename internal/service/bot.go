package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	DecisionBuy     = "buy"
	DecisionDecline = "decline"
)

var ErrNoDecisionNeeded = errors.New("no purchase decision is pending")

// Decision is the decision provider's answer to a purchase question.
type Decision struct {
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
}

// Decider is consulted for automated seats during the purchase-decision
// phase. Implementations may take their time; the host pipeline calls them
// off the intent loop.
type Decider interface {
	Decide(ctx context.Context, game *entity.Game, playerID string) (Decision, error)
}

type balanceDecider struct {
	reserve int
}

// NewBalanceDecider returns a Decider that buys whenever the purchase
// leaves at least reserve on the balance.
func NewBalanceDecider(reserve int) Decider {
	return &balanceDecider{reserve: reserve}
}

func (that *balanceDecider) Decide(_ context.Context, game *entity.Game, playerID string) (Decision, error) {
	player := game.PlayerByID(playerID)
	if player == nil {
		return Decision{}, ErrNoDecisionNeeded
	}

	tile := game.TileByID(player.Position)
	if tile == nil || !tile.IsOwnable() || tile.Owner != "" {
		return Decision{}, ErrNoDecisionNeeded
	}

	if player.Money-tile.Price >= that.reserve {
		return Decision{
			Action:    DecisionBuy,
			Rationale: fmt.Sprintf("%s costs $%d and leaves a comfortable balance", tile.Name, tile.Price),
		}, nil
	}

	return Decision{
		Action:    DecisionDecline,
		Rationale: fmt.Sprintf("buying %s would leave less than $%d", tile.Name, that.reserve),
	}, nil
}
