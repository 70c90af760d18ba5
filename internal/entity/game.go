package entity

import "fmt"

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const (
	// PhaseRoll - the current player has to roll (or pay bail first).
	PhaseRoll = "roll"
	// PhaseDecide - the current player has to buy or decline the tile
	// they landed on.
	PhaseDecide = "decide"
	// PhaseEnd - nothing left to do but end the turn.
	PhaseEnd = "end"
)

const (
	EventInfo = "info"
	EventWarn = "warn"
)

// Event is one entry of the game log.
type Event struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Game is the authoritative aggregate. It is only ever mutated by the host
// pipeline; everyone else sees it through snapshots.
type Game struct {
	ID      string    `json:"id"`
	Players []*Player `json:"players"`
	Turn    int       `json:"turn"`
	Tiles   []*Tile   `json:"tiles"`
	Dice    [2]int    `json:"dice"`

	Status    string `json:"status"`
	Phase     string `json:"phase,omitempty"`
	ExtraTurn bool   `json:"extra_turn,omitempty"`

	PendingCard    *Card   `json:"pending_card,omitempty"`
	PendingCardFor string  `json:"pending_card_for,omitempty"`
	Winner         string  `json:"winner,omitempty"`
	Events         []Event `json:"events,omitempty"`

	// Seq grows by one with every accepted mutation, so replicas can
	// discard stale snapshots.
	Seq uint64 `json:"seq"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Tiles:  NewBoard(),
		Status: StatusWaiting,
		Phase:  PhaseRoll,
	}
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) CurrentPlayer() *Player {
	if that.Turn < 0 || that.Turn >= len(that.Players) {
		return nil
	}
	return that.Players[that.Turn]
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

func (that *Game) TileByID(id int) *Tile {
	if id < 0 || id >= len(that.Tiles) {
		return nil
	}
	return that.Tiles[id]
}

// ActivePlayers returns every non-bankrupt player.
func (that *Game) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if !player.Bankrupt {
			active = append(active, player)
		}
	}
	return active
}

// OwnsGroup reports whether the player holds every tile of the color group.
func (that *Game) OwnsGroup(player *Player, group string) bool {
	if group == "" {
		return false
	}
	for _, tile := range that.Tiles {
		if tile.Group == group && tile.Owner != player.ID {
			return false
		}
	}
	return true
}

// CountOwnedOfType counts how many tiles of the given type the player holds.
func (that *Game) CountOwnedOfType(player *Player, tileType string) int {
	count := 0
	for _, id := range player.Properties {
		if tile := that.TileByID(id); tile != nil && tile.Type == tileType {
			count++
		}
	}
	return count
}

// LogEvent appends a formatted entry to the game log.
func (that *Game) LogEvent(kind, format string, args ...any) Event {
	event := Event{Kind: kind, Text: fmt.Sprintf(format, args...)}
	that.Events = append(that.Events, event)
	return event
}

// Clone deep-copies the aggregate so transitions can produce a new state
// without touching the one replicas already hold.
func (that *Game) Clone() *Game {
	next := *that

	next.Players = make([]*Player, len(that.Players))
	for i, player := range that.Players {
		copied := *player
		copied.Properties = append([]int(nil), player.Properties...)
		next.Players[i] = &copied
	}

	next.Tiles = make([]*Tile, len(that.Tiles))
	for i, tile := range that.Tiles {
		copied := *tile
		next.Tiles[i] = &copied
	}

	if that.PendingCard != nil {
		card := *that.PendingCard
		next.PendingCard = &card
	}

	next.Events = append([]Event(nil), that.Events...)

	return &next
}
