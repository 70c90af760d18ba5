package entity

// NewBoard returns the classic 40-tile ring. Tile IDs equal board positions.
func NewBoard() []*Tile {
	return []*Tile{
		{ID: 0, Name: "Go", Type: TileStart},
		{ID: 1, Name: "Mediterranean Avenue", Type: TileProperty, Group: "brown", Price: 60, Rents: [6]int{2, 10, 30, 90, 160, 250}, HouseCost: 50},
		{ID: 2, Name: "Community Chest", Type: TileCommunity},
		{ID: 3, Name: "Baltic Avenue", Type: TileProperty, Group: "brown", Price: 60, Rents: [6]int{4, 20, 60, 180, 320, 450}, HouseCost: 50},
		{ID: 4, Name: "Income Tax", Type: TileTax, Tax: 200},
		{ID: 5, Name: "Reading Railroad", Type: TileStation, Group: "station", Price: 200, Rents: [6]int{25}},
		{ID: 6, Name: "Oriental Avenue", Type: TileProperty, Group: "lightblue", Price: 100, Rents: [6]int{6, 30, 90, 270, 400, 550}, HouseCost: 50},
		{ID: 7, Name: "Chance", Type: TileChance},
		{ID: 8, Name: "Vermont Avenue", Type: TileProperty, Group: "lightblue", Price: 100, Rents: [6]int{6, 30, 90, 270, 400, 550}, HouseCost: 50},
		{ID: 9, Name: "Connecticut Avenue", Type: TileProperty, Group: "lightblue", Price: 120, Rents: [6]int{8, 40, 100, 300, 450, 600}, HouseCost: 50},
		{ID: 10, Name: "Jail", Type: TileJail},
		{ID: 11, Name: "St. Charles Place", Type: TileProperty, Group: "pink", Price: 140, Rents: [6]int{10, 50, 150, 450, 625, 750}, HouseCost: 100},
		{ID: 12, Name: "Electric Company", Type: TileUtility, Group: "utility", Price: 150},
		{ID: 13, Name: "States Avenue", Type: TileProperty, Group: "pink", Price: 140, Rents: [6]int{10, 50, 150, 450, 625, 750}, HouseCost: 100},
		{ID: 14, Name: "Virginia Avenue", Type: TileProperty, Group: "pink", Price: 160, Rents: [6]int{12, 60, 180, 500, 700, 900}, HouseCost: 100},
		{ID: 15, Name: "Pennsylvania Railroad", Type: TileStation, Group: "station", Price: 200, Rents: [6]int{25}},
		{ID: 16, Name: "St. James Place", Type: TileProperty, Group: "orange", Price: 180, Rents: [6]int{14, 70, 200, 550, 750, 950}, HouseCost: 100},
		{ID: 17, Name: "Community Chest", Type: TileCommunity},
		{ID: 18, Name: "Tennessee Avenue", Type: TileProperty, Group: "orange", Price: 180, Rents: [6]int{14, 70, 200, 550, 750, 950}, HouseCost: 100},
		{ID: 19, Name: "New York Avenue", Type: TileProperty, Group: "orange", Price: 200, Rents: [6]int{16, 80, 220, 600, 800, 1000}, HouseCost: 100},
		{ID: 20, Name: "Free Parking", Type: TileParking},
		{ID: 21, Name: "Kentucky Avenue", Type: TileProperty, Group: "red", Price: 220, Rents: [6]int{18, 90, 250, 700, 875, 1050}, HouseCost: 150},
		{ID: 22, Name: "Chance", Type: TileChance},
		{ID: 23, Name: "Indiana Avenue", Type: TileProperty, Group: "red", Price: 220, Rents: [6]int{18, 90, 250, 700, 875, 1050}, HouseCost: 150},
		{ID: 24, Name: "Illinois Avenue", Type: TileProperty, Group: "red", Price: 240, Rents: [6]int{20, 100, 300, 750, 925, 1100}, HouseCost: 150},
		{ID: 25, Name: "B&O Railroad", Type: TileStation, Group: "station", Price: 200, Rents: [6]int{25}},
		{ID: 26, Name: "Atlantic Avenue", Type: TileProperty, Group: "yellow", Price: 260, Rents: [6]int{22, 110, 330, 800, 975, 1150}, HouseCost: 150},
		{ID: 27, Name: "Ventnor Avenue", Type: TileProperty, Group: "yellow", Price: 260, Rents: [6]int{22, 110, 330, 800, 975, 1150}, HouseCost: 150},
		{ID: 28, Name: "Water Works", Type: TileUtility, Group: "utility", Price: 150},
		{ID: 29, Name: "Marvin Gardens", Type: TileProperty, Group: "yellow", Price: 280, Rents: [6]int{24, 120, 360, 850, 1025, 1200}, HouseCost: 150},
		{ID: 30, Name: "Go To Jail", Type: TileGoToJail},
		{ID: 31, Name: "Pacific Avenue", Type: TileProperty, Group: "green", Price: 300, Rents: [6]int{26, 130, 390, 900, 1100, 1275}, HouseCost: 200},
		{ID: 32, Name: "North Carolina Avenue", Type: TileProperty, Group: "green", Price: 300, Rents: [6]int{26, 130, 390, 900, 1100, 1275}, HouseCost: 200},
		{ID: 33, Name: "Community Chest", Type: TileCommunity},
		{ID: 34, Name: "Pennsylvania Avenue", Type: TileProperty, Group: "green", Price: 320, Rents: [6]int{28, 150, 450, 1000, 1200, 1400}, HouseCost: 200},
		{ID: 35, Name: "Short Line", Type: TileStation, Group: "station", Price: 200, Rents: [6]int{25}},
		{ID: 36, Name: "Chance", Type: TileChance},
		{ID: 37, Name: "Park Place", Type: TileProperty, Group: "darkblue", Price: 350, Rents: [6]int{35, 175, 500, 1100, 1300, 1500}, HouseCost: 200},
		{ID: 38, Name: "Luxury Tax", Type: TileTax, Tax: 100},
		{ID: 39, Name: "Boardwalk", Type: TileProperty, Group: "darkblue", Price: 400, Rents: [6]int{50, 200, 600, 1400, 1700, 2000}, HouseCost: 200},
	}
}
