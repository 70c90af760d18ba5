package entity

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Money    int    `json:"money"`
	Position int    `json:"position"`

	Jailed    bool `json:"jailed"`
	JailTurns int  `json:"jail_turns"`
	Doubles   int  `json:"doubles"`

	Properties []int `json:"properties,omitempty"`
	Bankrupt   bool  `json:"bankrupt"`

	Bot  bool `json:"bot,omitempty"`
	Host bool `json:"host,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Bot
}

// Owns reports whether the player's property set contains the tile.
func (that *Player) Owns(tileID int) bool {
	for _, id := range that.Properties {
		if id == tileID {
			return true
		}
	}
	return false
}

// AddProperty inserts the tile id keeping the set sorted.
func (that *Player) AddProperty(tileID int) {
	if that.Owns(tileID) {
		return
	}
	at := len(that.Properties)
	for i, id := range that.Properties {
		if id > tileID {
			at = i
			break
		}
	}
	that.Properties = append(that.Properties, 0)
	copy(that.Properties[at+1:], that.Properties[at:])
	that.Properties[at] = tileID
}

func (that *Player) RemoveProperty(tileID int) {
	for i, id := range that.Properties {
		if id == tileID {
			that.Properties = append(that.Properties[:i], that.Properties[i+1:]...)
			return
		}
	}
}
