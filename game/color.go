package game

// Color identifies a train card color. The first nine values tag physical
// cards; Any tags wildcard (grey) routes in board data and never appears on
// a card.
type Color int

const (
	Pink Color = iota
	White
	Blue
	Yellow
	Orange
	Black
	Red
	Green
	Locomotive
	Any
)

// NumCardColors counts the colors a physical card can carry (eight regular
// colors plus the locomotive). Hand counters are indexed by it.
const NumCardColors = 9

var colorNames = [...]string{
	"pink", "white", "blue", "yellow", "orange",
	"black", "red", "green", "locomotive", "any",
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor maps a board-data color token to its Color value.
func ParseColor(s string) (Color, bool) {
	for i, name := range colorNames {
		if name == s {
			return Color(i), true
		}
	}
	return Any, false
}

// RegularColors returns the eight named colors, excluding the locomotive.
func RegularColors() []Color {
	return []Color{Pink, White, Blue, Yellow, Orange, Black, Red, Green}
}

// Card is a single train card.
type Card struct {
	Color Color
}

// Standard wagon deck composition: 12 cards of each regular color plus 14
// locomotives, 110 cards in total.
const (
	cardsPerColor  = 12
	locomotiveCnt  = 14
	StandardDeckSz = 8*cardsPerColor + locomotiveCnt
)

// NewStandardCards returns an unshuffled standard 110-card wagon deck.
func NewStandardCards() []Card {
	cards := make([]Card, 0, StandardDeckSz)
	for _, c := range RegularColors() {
		for i := 0; i < cardsPerColor; i++ {
			cards = append(cards, Card{Color: c})
		}
	}
	for i := 0; i < locomotiveCnt; i++ {
		cards = append(cards, Card{Color: Locomotive})
	}
	return cards
}
