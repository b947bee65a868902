package game

import "math/rand"

// Deck is a draw pile with an attached discard pile. When the draw pile
// empties, the discards are reshuffled into it.
type Deck struct {
	cards    []Card
	discards []Card
}

func NewDeck(cards []Card) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw pops the top card. An exhausted supply (no cards and no discards) is
// a normal condition reported as ok=false, not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		if len(d.discards) == 0 {
			return Card{}, false
		}
		d.cards = d.discards
		d.discards = nil
		d.Shuffle()
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// AddDiscard appends cards to the discard pile without shuffling.
func (d *Deck) AddDiscard(cards ...Card) {
	d.discards = append(d.discards, cards...)
}

// TotalCount sums the draw and discard piles. Cards held in hands or in
// tunnel limbo are not counted.
func (d *Deck) TotalCount() int {
	return len(d.cards) + len(d.discards)
}

// DiscardCount reports the discard pile size alone.
func (d *Deck) DiscardCount() int {
	return len(d.discards)
}

// Copy returns a deck with independent pile slices.
func (d *Deck) Copy() *Deck {
	cardsCopy := make([]Card, len(d.cards))
	copy(cardsCopy, d.cards)
	discardsCopy := make([]Card, len(d.discards))
	copy(discardsCopy, d.discards)
	return &Deck{cards: cardsCopy, discards: discardsCopy}
}
