package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func colored(u, v, color string, length int) RouteRecord {
	return RouteRecord{Stations: []string{u, v}, Tiles: []TileEntry{{Color: color, Amount: length}}}
}

func grey(u, v string, length int) RouteRecord {
	return RouteRecord{Stations: []string{u, v}, Tiles: []TileEntry{{Color: "any", Amount: length}}}
}

func tunnelRec(u, v, color string, length int) RouteRecord {
	rec := colored(u, v, color, length)
	rec.Tunnel = true
	return rec
}

func ferry(u, v string, length, locos int) RouteRecord {
	return RouteRecord{Stations: []string{u, v}, Tiles: []TileEntry{
		{Color: "any", Amount: length - locos},
		{Color: "locomotive", Amount: locos},
	}}
}

func boardFromRecords(t *testing.T, records []RouteRecord, tickets []TicketRecord) *Board {
	t.Helper()
	b, err := NewBoard(records, tickets)
	require.NoError(t, err)
	return b
}

// stateWithDeck builds a bare state: empty hands, no face-up cards, the
// given deck unshuffled (draws come from the end of the slice).
func stateWithDeck(b *Board, players int, deck []Card) *GameState {
	gs := &GameState{
		Board:          b,
		Routes:         append([]Route(nil), b.Routes...),
		WagonDeck:      NewDeck(deck),
		TunnelRoute:    -1,
		Stations:       map[int]int{},
		TurnsRemaining: -1,
	}
	for i := 0; i < players; i++ {
		gs.Players = append(gs.Players, NewPlayer(i))
	}
	return gs
}

func cardsOf(color Color, n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{Color: color}
	}
	return cards
}

func actionTypes(actions []Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}
