package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameStateDeals(t *testing.T) {
	b, err := LoadEurope()
	require.NoError(t, err)

	gs := NewGameState(b, 3)

	require.Len(t, gs.Players, 3)
	for _, p := range gs.Players {
		require.Equal(t, initialDeal, p.Hand.Count())
		require.Equal(t, StartingWagons, p.Wagons)
		require.Equal(t, StartingStations, p.Stations)
	}
	require.Len(t, gs.FaceUp, faceUpSlots)
	require.Equal(t, StandardDeckSz, gs.CardCount())
	require.Equal(t, ModeNormal, gs.Mode)
	require.False(t, gs.Terminal())

	locos := 0
	for _, c := range gs.FaceUp {
		if c.Color == Locomotive {
			locos++
		}
	}
	require.Less(t, locos, 3, "initial face-up cards must pass the locomotive rule")
}

func TestCloneIndependence(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{
		colored("a", "b", "red", 2),
		colored("b", "c", "blue", 3),
	}, []TicketRecord{{Cities: []string{"a", "c"}, Points: 6}})

	gs := stateWithDeck(b, 2, cardsOf(Green, 10))
	gs.Players[0].Hand[Red] = 2
	gs.TicketPile = append([]Ticket(nil), b.Tickets...)
	gs.Stations[0] = 1
	gs.Mode = ModeTunnel
	gs.TunnelRoute = 1
	gs.TunnelLimbo = cardsOf(Blue, 2)

	clone := gs.Clone()
	require.Equal(t, gs.Hash(), clone.Hash())
	require.Same(t, gs.Board, clone.Board, "the static board is shared")

	clone.Players[0].Hand[Red] = 0
	clone.Routes[0].Owner = 1
	clone.WagonDeck.Draw()
	clone.TicketPile = clone.TicketPile[:0]
	clone.Stations[5] = 0
	clone.TunnelLimbo[0] = Card{Color: Red}
	clone.Mode = ModeNormal

	require.Equal(t, 2, gs.Players[0].Hand[Red])
	require.Equal(t, NoOwner, gs.Routes[0].Owner)
	require.Equal(t, 10, gs.WagonDeck.TotalCount())
	require.Len(t, gs.TicketPile, 1)
	require.NotContains(t, gs.Stations, 5)
	require.Equal(t, Blue, gs.TunnelLimbo[0].Color)
	require.Equal(t, ModeTunnel, gs.Mode)
}

func TestFaceUpLocomotiveReset(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, cardsOf(Green, 10))
	gs.FaceUp = []Card{
		{Color: Red}, {Color: Locomotive}, {Color: Locomotive}, {Color: Locomotive}, {Color: Blue},
	}

	gs.checkFaceUpReset()

	require.Len(t, gs.FaceUp, 5)
	for _, c := range gs.FaceUp {
		require.Equal(t, Green, c.Color)
	}
	require.Equal(t, 5, gs.WagonDeck.DiscardCount(), "the original five face-up cards are discarded")
}

func TestFaceUpResetRepeatsUntilClear(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	// The first redraw pulls three locomotives again; the second clears.
	deck := append(cardsOf(Yellow, 5), Card{Color: Locomotive}, Card{Color: Locomotive},
		Card{Color: Locomotive}, Card{Color: Green}, Card{Color: Green})
	gs := stateWithDeck(b, 2, deck)
	gs.FaceUp = []Card{
		{Color: Locomotive}, {Color: Locomotive}, {Color: Locomotive}, {Color: Red}, {Color: Blue},
	}

	gs.checkFaceUpReset()

	locos := 0
	for _, c := range gs.FaceUp {
		if c.Color == Locomotive {
			locos++
		}
	}
	require.Less(t, locos, 3)
	require.Len(t, gs.FaceUp, 5)
}

func TestCardConservationOverRandomPlay(t *testing.T) {
	b, err := LoadEurope()
	require.NoError(t, err)

	rand.Seed(7)
	gs := NewGameState(b, 4)
	require.Equal(t, StandardDeckSz, gs.CardCount())

	perColor := func() [NumCardColors]int {
		var counts [NumCardColors]int
		countCards := func(cards []Card) {
			for _, c := range cards {
				counts[c.Color]++
			}
		}
		for _, p := range gs.Players {
			for c, n := range p.Hand {
				counts[c] += n
			}
		}
		countCards(gs.FaceUp)
		countCards(gs.TunnelLimbo)
		countCards(gs.WagonDeck.cards)
		countCards(gs.WagonDeck.discards)
		return counts
	}
	initial := perColor()

	for step := 0; step < 2000 && !gs.Terminal(); step++ {
		legal := LegalActions(gs, gs.ActivePlayer)
		require.NotEmpty(t, legal)
		Apply(gs, legal[rand.Intn(len(legal))])

		require.Equal(t, StandardDeckSz, gs.CardCount(), "card total must survive every action")
		require.Equal(t, initial, perColor(), "per-color totals must survive every action")
	}
}
