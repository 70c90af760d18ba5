package entity

const (
	RoomOpen    = "open"
	RoomStarted = "started"
)

const (
	MinSeats = 2
	MaxSeats = 4
)

// Seat is one roster entry of a room. The roster seeds the initial game
// state when the host starts the match.
type Seat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAutomated bool   `json:"isAutomated"`
	IsHost      bool   `json:"isHost"`
}

type Room struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Seats  []Seat `json:"seats"`
}

func (that *Room) IsOpen() bool {
	return that.Status == RoomOpen
}

func (that *Room) IsFull() bool {
	return len(that.Seats) >= MaxSeats
}

func (that *Room) HasSeat(playerID string) bool {
	for _, seat := range that.Seats {
		if seat.ID == playerID {
			return true
		}
	}
	return false
}

func (that *Room) Host() *Seat {
	for i := range that.Seats {
		if that.Seats[i].IsHost {
			return &that.Seats[i]
		}
	}
	return nil
}
