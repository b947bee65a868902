package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClaimColoredRoute(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "orange", 4)}, nil)
	gs := stateWithDeck(b, 2, nil)
	gs.Players[0].Hand[Orange] = 4

	Apply(gs, ClaimRoute{RouteID: 0, Color: Orange})

	p := gs.Players[0]
	require.Equal(t, 0, gs.Routes[0].Owner)
	require.Equal(t, 7, p.Score)
	require.Equal(t, StartingWagons-4, p.Wagons)
	require.Equal(t, 0, p.Hand[Orange])
	require.Equal(t, 4, gs.WagonDeck.DiscardCount())
	require.Equal(t, 1, gs.ActivePlayer)
}

func TestBlindDrawsTakeTwoToEndTheTurn(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, cardsOf(Green, 4))

	Apply(gs, DrawBlind{})
	require.Equal(t, 0, gs.ActivePlayer)
	require.Equal(t, 1, gs.CardsDrawn)

	Apply(gs, DrawBlind{})
	require.Equal(t, 1, gs.ActivePlayer)
	require.Equal(t, 0, gs.CardsDrawn)
	require.Equal(t, 2, gs.Players[0].Hand[Green])
}

func TestFaceUpLocomotiveEndsTurnImmediately(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, cardsOf(Green, 1))
	gs.FaceUp = []Card{{Color: Red}, {Color: Locomotive}, {Color: Blue}, {Color: Yellow}, {Color: Pink}}

	Apply(gs, DrawFaceUp{Slot: 1})

	require.Equal(t, 1, gs.Players[0].Hand[Locomotive])
	require.Equal(t, 1, gs.ActivePlayer)
}

func TestFaceUpRefillPreservesSlotOrder(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, []Card{{Color: White}})
	gs.FaceUp = []Card{{Color: Red}, {Color: Blue}, {Color: Green}, {Color: Yellow}, {Color: Pink}}

	Apply(gs, DrawFaceUp{Slot: 2})

	require.Equal(t, []Card{{Color: Red}, {Color: Blue}, {Color: White}, {Color: Yellow}, {Color: Pink}}, gs.FaceUp)
	require.Equal(t, 1, gs.Players[0].Hand[Green])
}

func TestFaceUpSlotStaysEmptyWhenSupplyExhausted(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, nil)
	gs.FaceUp = []Card{{Color: Red}, {Color: Blue}, {Color: Green}, {Color: Yellow}, {Color: Pink}}

	Apply(gs, DrawFaceUp{Slot: 4})

	require.Len(t, gs.FaceUp, 4)
}

func TestDrawTicketsTakesUpToThree(t *testing.T) {
	tickets := []TicketRecord{
		{Cities: []string{"a", "b"}, Points: 5},
		{Cities: []string{"a", "b"}, Points: 6},
		{Cities: []string{"a", "b"}, Points: 7},
		{Cities: []string{"a", "b"}, Points: 8},
	}
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, tickets)
	gs := stateWithDeck(b, 2, nil)
	gs.TicketPile = append([]Ticket(nil), b.Tickets...)

	Apply(gs, DrawTickets{})
	require.Len(t, gs.Players[0].Tickets, 3)
	require.Len(t, gs.TicketPile, 1)
	require.Equal(t, 1, gs.ActivePlayer)

	Apply(gs, DrawTickets{})
	require.Len(t, gs.Players[1].Tickets, 1, "a short pile delivers what it has")
	require.Empty(t, gs.TicketPile)
}

func TestFerryPaymentCoversLocomotivesFromWildcardsFirst(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{ferry("d", "l", 3, 1)}, nil)
	gs := stateWithDeck(b, 2, nil)
	p := gs.Players[0]
	p.Hand[Blue] = 1
	p.Hand[Locomotive] = 2

	Apply(gs, ClaimRoute{RouteID: 0, Color: Blue})

	require.Equal(t, 0, p.Hand[Blue])
	require.Equal(t, 0, p.Hand[Locomotive])
	require.Equal(t, 0, gs.Routes[0].Owner)
	require.Equal(t, StartingWagons-3, p.Wagons)
	require.Equal(t, 3, gs.WagonDeck.DiscardCount())
}

func TestTunnelClaimEntersResolution(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{tunnelRec("a", "b", "blue", 2)}, nil)
	// Drawn from the end: green, green, blue, so one risk card matches.
	gs := stateWithDeck(b, 2, []Card{{Color: Blue}, {Color: Green}, {Color: Green}})
	p := gs.Players[0]
	p.Hand[Blue] = 3

	Apply(gs, ClaimRoute{RouteID: 0, Color: Blue})

	require.Equal(t, ModeTunnel, gs.Mode)
	require.Equal(t, 0, gs.TunnelRoute)
	require.Equal(t, Blue, gs.TunnelColor)
	require.Equal(t, 1, gs.TunnelPending)
	require.Len(t, gs.TunnelLimbo, 2)
	require.Equal(t, 1, p.Hand[Blue])
	require.Equal(t, 3, gs.WagonDeck.DiscardCount(), "risk cards go straight to the discards")
	require.Equal(t, 0, gs.ActivePlayer, "the turn continues into resolution")
	require.Equal(t, NoOwner, gs.Routes[0].Owner)
	require.Equal(t, StartingWagons, p.Wagons)
}

func TestTunnelPayCompletesTheClaim(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{tunnelRec("a", "b", "blue", 2)}, nil)
	gs := stateWithDeck(b, 2, []Card{{Color: Blue}, {Color: Green}, {Color: Green}})
	p := gs.Players[0]
	p.Hand[Blue] = 3
	p.Hand[Locomotive] = 1

	Apply(gs, ClaimRoute{RouteID: 0, Color: Blue})
	require.Equal(t, 1, gs.TunnelPending)

	Apply(gs, TunnelPay{})

	require.Equal(t, ModeNormal, gs.Mode)
	require.Equal(t, -1, gs.TunnelRoute)
	require.Equal(t, 0, gs.Routes[0].Owner)
	require.Equal(t, 2, p.Score)
	require.Equal(t, StartingWagons-2, p.Wagons)
	require.Equal(t, 0, p.Hand[Blue])
	require.Equal(t, 1, p.Hand[Locomotive], "the extra comes from the named color first")
	require.Equal(t, 6, gs.WagonDeck.DiscardCount(), "three risk cards plus the three-card payment")
	require.Equal(t, 1, gs.ActivePlayer)
}

func TestTunnelForfeitRestoresTheHand(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{tunnelRec("a", "b", "blue", 2)}, nil)
	gs := stateWithDeck(b, 2, []Card{{Color: Locomotive}, {Color: Blue}, {Color: Blue}})
	p := gs.Players[0]
	p.Hand[Blue] = 1
	p.Hand[Locomotive] = 1

	Apply(gs, ClaimRoute{RouteID: 0, Color: Blue})
	require.Equal(t, 3, gs.TunnelPending)

	Apply(gs, TunnelForfeit{})

	require.Equal(t, ModeNormal, gs.Mode)
	require.Equal(t, NoOwner, gs.Routes[0].Owner)
	require.Equal(t, 1, p.Hand[Blue])
	require.Equal(t, 1, p.Hand[Locomotive])
	require.Equal(t, StartingWagons, p.Wagons)
	require.Equal(t, 0, p.Score)
	require.Nil(t, gs.TunnelLimbo)
	require.Equal(t, 1, gs.ActivePlayer)
}

func TestStationCostsGrowWithEachBuild(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2), colored("b", "c", "blue", 2)}, nil)
	gs := stateWithDeck(b, 2, nil)
	p := gs.Players[0]
	p.Hand[Red] = 6

	Apply(gs, BuildStation{City: 0, Color: Red})
	require.Equal(t, 5, p.Hand[Red])
	require.Equal(t, 2, p.Stations)
	require.Equal(t, 0, gs.Stations[0])
	require.Equal(t, 1, gs.WagonDeck.DiscardCount())
	require.Equal(t, 1, gs.ActivePlayer)

	gs.ActivePlayer = 0
	Apply(gs, BuildStation{City: 1, Color: Red})
	require.Equal(t, 3, p.Hand[Red], "the second station costs two cards")

	gs.ActivePlayer = 0
	Apply(gs, BuildStation{City: 2, Color: Red})
	require.Equal(t, 0, p.Hand[Red], "the third station costs three cards")
	require.Equal(t, 0, p.Stations)
}

func TestLastWagonsTriggerExactCountdown(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 3, nil)
	gs.Players[0].Hand[Red] = 2
	gs.Players[0].Wagons = 4

	Apply(gs, ClaimRoute{RouteID: 0, Color: Red})

	require.True(t, gs.FinalTurn)
	require.Equal(t, 3, gs.TurnsRemaining, "every player gets exactly one more turn")
	require.False(t, gs.Terminal())

	Apply(gs, DrawBlind{})
	Apply(gs, DrawBlind{})
	require.Equal(t, 2, gs.TurnsRemaining)

	Apply(gs, DrawBlind{})
	Apply(gs, DrawBlind{})
	Apply(gs, DrawBlind{})
	Apply(gs, DrawBlind{})
	require.Equal(t, 0, gs.TurnsRemaining)
	require.True(t, gs.Terminal())
}

func TestApplyEnforcesItsContract(t *testing.T) {
	b := boardFromRecords(t, []RouteRecord{colored("a", "b", "red", 2)}, nil)
	gs := stateWithDeck(b, 2, cardsOf(Green, 5))

	require.Panics(t, func() { Apply(gs.Clone(), TunnelPay{}) }, "tunnel payment outside tunnel resolution")

	owned := gs.Clone()
	owned.Routes[0].Owner = 1
	owned.Players[0].Hand[Red] = 2
	require.Panics(t, func() { Apply(owned, ClaimRoute{RouteID: 0, Color: Red}) }, "claiming an owned route")

	second := gs.Clone()
	second.FaceUp = []Card{{Color: Locomotive}}
	second.CardsDrawn = 1
	require.Panics(t, func() { Apply(second, DrawFaceUp{Slot: 0}) }, "locomotive as a second draw")

	require.Panics(t, func() { Apply(gs.Clone(), DrawFaceUp{Slot: 9}) }, "slot out of range")
}
