package entity

const (
	CardMoney     = "money"
	CardMoveTo    = "move-to"
	CardMoveSteps = "move-steps"
	CardGoToJail  = "go-to-jail"
)

// Card is a chance or community chest card. Effect is an explicit
// discriminator; the display text is never inspected by the rules.
type Card struct {
	Effect string `json:"effect"`
	Value  int    `json:"value,omitempty"`
	Text   string `json:"text"`
}

// ChanceDeck is the fixed deck cards are drawn from. A draw never removes
// the card, every draw is independent.
var ChanceDeck = []Card{
	{Effect: CardMoney, Value: 150, Text: "Bank pays you dividend of $150"},
	{Effect: CardMoney, Value: 100, Text: "You inherit $100"},
	{Effect: CardMoney, Value: 50, Text: "From sale of stock you get $50"},
	{Effect: CardMoney, Value: 20, Text: "Income tax refund: collect $20"},
	{Effect: CardMoney, Value: -50, Text: "Doctor's fee: pay $50"},
	{Effect: CardMoney, Value: -100, Text: "Pay hospital fees of $100"},
	{Effect: CardMoney, Value: -150, Text: "Pay school fees of $150"},
	{Effect: CardMoveTo, Value: 0, Text: "Advance to Go"},
	{Effect: CardMoveTo, Value: 24, Text: "Advance to Illinois Avenue"},
	{Effect: CardMoveTo, Value: 11, Text: "Advance to St. Charles Place"},
	{Effect: CardMoveTo, Value: 39, Text: "Take a walk on the Boardwalk"},
	{Effect: CardMoveSteps, Value: -3, Text: "Go back three spaces"},
	{Effect: CardMoveSteps, Value: 3, Text: "Move forward three spaces"},
	{Effect: CardGoToJail, Text: "Go directly to Jail, do not pass Go"},
}
