package replica

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

// Snapshot is the complete authoritative state as broadcast by the host
// after every accepted mutation. Receivers treat it as the whole truth;
// there are no deltas and no merging.
type Snapshot struct {
	Seq  uint64       `json:"seq"`
	Game *entity.Game `json:"game"`
}

func NewSnapshot(game *entity.Game) Snapshot {
	return Snapshot{
		Seq:  game.Seq,
		Game: game,
	}
}
