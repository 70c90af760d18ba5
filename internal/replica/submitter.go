package replica

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

// Submitter is the single way a participant hands an intent to the game.
// The host and remote participants are two implementations of the same
// capability, not two kinds of dispatcher.
type Submitter interface {
	Submit(ctx context.Context, intent monopoly.Intent) error
}

// SendFunc forwards a serialized intent towards the host over the relay.
type SendFunc func(ctx context.Context, intent monopoly.Intent) error

// RemoteSubmitter forwards intents to the host and waits for the next
// broadcast to land in the local mirror. It never applies anything itself.
type RemoteSubmitter struct {
	send   SendFunc
	mirror *Mirror
}

func NewRemoteSubmitter(send SendFunc, mirror *Mirror) *RemoteSubmitter {
	return &RemoteSubmitter{
		send:   send,
		mirror: mirror,
	}
}

func (that *RemoteSubmitter) Submit(ctx context.Context, intent monopoly.Intent) error {
	updated := that.mirror.Updated()

	if err := that.send(ctx, intent); err != nil {
		return fmt.Errorf("failed to forward intent: %w", err)
	}

	select {
	case <-updated:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for broadcast: %w", ctx.Err())
	}
}
