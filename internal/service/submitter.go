package service

import (
	"context"

	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/replica"
)

// HostSubmitter is the host-side implementation of replica.Submitter: it
// feeds intents straight into the match pipeline, where they are applied
// synchronously.
type HostSubmitter struct {
	gamePlay *GamePlay
	gameID   string
}

var _ replica.Submitter = (*HostSubmitter)(nil)

func NewHostSubmitter(gamePlay *GamePlay, gameID string) *HostSubmitter {
	return &HostSubmitter{
		gamePlay: gamePlay,
		gameID:   gameID,
	}
}

func (that *HostSubmitter) Submit(ctx context.Context, intent monopoly.Intent) error {
	return that.gamePlay.Submit(ctx, that.gameID, intent)
}
