package replica

import (
	"sync"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// NoSelection means no tile is selected in the local UI.
const NoSelection = -1

// Mirror is the read-only copy of the game a non-host participant holds.
// It adopts whichever snapshot carries the highest sequence number and
// keeps purely-local UI state (the selected tile) across broadcasts.
type Mirror struct {
	mu sync.RWMutex

	game     *entity.Game
	seq      uint64
	selected int

	updated chan struct{}
}

func NewMirror() *Mirror {
	return &Mirror{
		selected: NoSelection,
		updated:  make(chan struct{}),
	}
}

// ApplySnapshot adopts the snapshot unless it is stale or a duplicate.
// It reports whether the mirror advanced.
func (that *Mirror) ApplySnapshot(snapshot Snapshot) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if snapshot.Game == nil {
		return false
	}

	if that.game != nil && snapshot.Seq <= that.seq {
		return false
	}

	that.game = snapshot.Game
	that.seq = snapshot.Seq

	close(that.updated)
	that.updated = make(chan struct{})

	return true
}

// Game returns the latest adopted state; nil until the first snapshot.
func (that *Mirror) Game() *entity.Game {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.game
}

func (that *Mirror) Seq() uint64 {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.seq
}

// Updated returns a channel closed on the next snapshot adoption.
func (that *Mirror) Updated() <-chan struct{} {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.updated
}

// Select records the locally selected tile. It is never part of snapshots.
func (that *Mirror) Select(tileID int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.selected = tileID
}

func (that *Mirror) Selection() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.selected
}
