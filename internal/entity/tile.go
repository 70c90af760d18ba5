package entity

const (
	TileStart     = "start"
	TileJail      = "jail"
	TileParking   = "parking"
	TileGoToJail  = "go-to-jail"
	TileChance    = "chance"
	TileCommunity = "community"
	TileTax       = "tax"
	TileProperty  = "property"
	TileStation   = "station"
	TileUtility   = "utility"
)

const (
	// BoardSize is the number of tiles on the ring.
	BoardSize = 40

	// JailPosition is the tile jailed players sit on.
	JailPosition = 10

	// GoToJailPosition sends the player straight to jail.
	GoToJailPosition = 30

	// MaxHouses is the top building tier; 5 is displayed as a hotel.
	MaxHouses = 5
)

// Tile is one cell of the board. The static configuration (name, type,
// price, rent tiers) never changes after NewBoard; Owner and Houses are the
// mutable overlay.
type Tile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Group     string `json:"group,omitempty"`
	Price     int    `json:"price,omitempty"`
	Rents     [6]int `json:"rents,omitempty"`
	HouseCost int    `json:"house_cost,omitempty"`
	Tax       int    `json:"tax,omitempty"`

	Owner  string `json:"owner,omitempty"`
	Houses int    `json:"houses,omitempty"`
}

// IsOwnable reports whether the tile can be bought and charge rent.
func (that *Tile) IsOwnable() bool {
	switch that.Type {
	case TileProperty, TileStation, TileUtility:
		return true
	default:
		return false
	}
}

// IsBuildable reports whether houses can be put on the tile.
func (that *Tile) IsBuildable() bool {
	return that.Type == TileProperty
}
