package game

import "fmt"

// Apply resolves one action against the state, mutating it in place.
// Applying an action the generator would not have offered is a contract
// violation and panics; a simulation driver isolates such failures per
// game. Resource exhaustion (empty deck or ticket pile) is handled quietly
// by delivering fewer or no items.
func Apply(gs *GameState, action Action) {
	if gs.Mode == ModeTunnel {
		switch a := action.(type) {
		case TunnelPay:
			applyTunnelPay(gs)
		case TunnelForfeit:
			applyTunnelForfeit(gs)
		default:
			panic(fmt.Sprintf("action %q is not legal while a tunnel claim is pending", a))
		}
		return
	}

	switch a := action.(type) {
	case DrawBlind:
		applyDrawBlind(gs)
	case DrawFaceUp:
		applyDrawFaceUp(gs, a)
	case DrawTickets:
		applyDrawTickets(gs)
	case ClaimRoute:
		applyClaimRoute(gs, a)
	case BuildStation:
		applyBuildStation(gs, a)
	default:
		panic(fmt.Sprintf("action %q is not legal outside tunnel resolution", a))
	}
}

func applyDrawBlind(gs *GameState) {
	player := gs.Active()
	if card, ok := gs.WagonDeck.Draw(); ok {
		player.Hand[card.Color]++
	}
	gs.CardsDrawn++
	if gs.CardsDrawn >= 2 {
		gs.endTurn()
	}
}

func applyDrawFaceUp(gs *GameState, a DrawFaceUp) {
	if a.Slot < 0 || a.Slot >= len(gs.FaceUp) {
		panic(fmt.Sprintf("face-up slot %d out of range", a.Slot))
	}
	player := gs.Active()

	card := gs.FaceUp[a.Slot]
	if card.Color == Locomotive && gs.CardsDrawn > 0 {
		panic("locomotive not allowed as a second face-up draw")
	}
	gs.FaceUp = append(gs.FaceUp[:a.Slot], gs.FaceUp[a.Slot+1:]...)
	player.Hand[card.Color]++

	// Refill the slot; it stays empty only when the supply is exhausted.
	if fresh, ok := gs.WagonDeck.Draw(); ok {
		gs.FaceUp = append(gs.FaceUp, Card{})
		copy(gs.FaceUp[a.Slot+1:], gs.FaceUp[a.Slot:])
		gs.FaceUp[a.Slot] = fresh
	}
	gs.checkFaceUpReset()

	if card.Color == Locomotive {
		// A face-up locomotive is the whole draw allotment.
		gs.endTurn()
		return
	}
	gs.CardsDrawn++
	if gs.CardsDrawn >= 2 {
		gs.endTurn()
	}
}

func applyDrawTickets(gs *GameState) {
	player := gs.Active()
	n := ticketsPerDraw
	if n > len(gs.TicketPile) {
		n = len(gs.TicketPile)
	}
	player.Tickets = append(player.Tickets, gs.TicketPile[len(gs.TicketPile)-n:]...)
	gs.TicketPile = gs.TicketPile[:len(gs.TicketPile)-n]
	gs.endTurn()
}

func applyClaimRoute(gs *GameState, a ClaimRoute) {
	route := &gs.Routes[a.RouteID]
	if route.Owner != NoOwner {
		panic(fmt.Sprintf("route %d is already owned by player %d", route.ID, route.Owner))
	}
	player := gs.Active()
	if player.Wagons < route.Length {
		panic(fmt.Sprintf("player %d has %d wagons, route %d needs %d", player.ID, player.Wagons, route.ID, route.Length))
	}

	payment := payRoute(player, a.Color, route.Length, route.Locomotives)

	if route.Tunnel {
		// The payment sits in limbo until the tunnel resolves. Three risk
		// cards are drawn and discarded; each one matching the resolving
		// color or a locomotive costs one extra card.
		gs.Mode = ModeTunnel
		gs.TunnelRoute = route.ID
		gs.TunnelColor = a.Color
		gs.TunnelLimbo = payment

		extra := 0
		var risk []Card
		for i := 0; i < riskCards; i++ {
			card, ok := gs.WagonDeck.Draw()
			if !ok {
				break
			}
			risk = append(risk, card)
			if card.Color == a.Color || card.Color == Locomotive {
				extra++
			}
		}
		gs.WagonDeck.AddDiscard(risk...)
		gs.TunnelPending = extra
		return // the turn continues into tunnel resolution
	}

	finalizeClaim(gs, player, route, payment)
	gs.endTurn()
}

func applyTunnelPay(gs *GameState) {
	player := gs.Active()
	extra := deductStrict(player, gs.TunnelColor, gs.TunnelPending)

	route := &gs.Routes[gs.TunnelRoute]
	payment := append(gs.TunnelLimbo, extra...)
	finalizeClaim(gs, player, route, payment)

	clearTunnel(gs)
	gs.endTurn()
}

func applyTunnelForfeit(gs *GameState) {
	player := gs.Active()
	for _, card := range gs.TunnelLimbo {
		player.Hand[card.Color]++
	}
	clearTunnel(gs)
	gs.endTurn()
}

func clearTunnel(gs *GameState) {
	gs.Mode = ModeNormal
	gs.TunnelRoute = -1
	gs.TunnelPending = 0
	gs.TunnelLimbo = nil
}

// finalizeClaim writes the owner, spends the wagons, scores the route, and
// discards the payment.
func finalizeClaim(gs *GameState, player *Player, route *Route, payment []Card) {
	route.Owner = player.ID
	player.Wagons -= route.Length
	player.Score += PointsForLength(route.Length)
	gs.WagonDeck.AddDiscard(payment...)
}

func applyBuildStation(gs *GameState, a BuildStation) {
	player := gs.Active()
	if player.Stations <= 0 {
		panic(fmt.Sprintf("player %d has no stations left", player.ID))
	}
	if owner, taken := gs.Stations[a.City]; taken {
		panic(fmt.Sprintf("city %d already holds player %d's station", a.City, owner))
	}
	cost := StartingStations + 1 - player.Stations

	payment := deductStrict(player, a.Color, cost)
	gs.WagonDeck.AddDiscard(payment...)

	player.Stations--
	gs.Stations[a.City] = player.ID
	gs.endTurn()
}

// payRoute assembles a claim payment: the locomotive requirement first from
// wildcards, then the named color, then leftover wildcards for whatever the
// color cannot cover. Panics when the hand falls short, which the generator
// rules out.
func payRoute(player *Player, color Color, length, locosRequired int) []Card {
	payment := make([]Card, 0, length)

	if player.Hand[Locomotive] < locosRequired {
		panic(fmt.Sprintf("player %d cannot cover locomotive requirement %d", player.ID, locosRequired))
	}
	player.Hand[Locomotive] -= locosRequired
	for i := 0; i < locosRequired; i++ {
		payment = append(payment, Card{Color: Locomotive})
	}

	return append(payment, deductStrict(player, color, length-locosRequired)...)
}

// deductStrict removes count cards from the hand, named color first, then
// locomotives. Panics when the hand cannot cover the count.
func deductStrict(player *Player, color Color, count int) []Card {
	removed := make([]Card, 0, count)

	if color != Any && color != Locomotive {
		take := player.Hand[color]
		if take > count {
			take = count
		}
		player.Hand[color] -= take
		count -= take
		for i := 0; i < take; i++ {
			removed = append(removed, Card{Color: color})
		}
	}

	if count > 0 {
		take := player.Hand[Locomotive]
		if take > count {
			take = count
		}
		player.Hand[Locomotive] -= take
		count -= take
		for i := 0; i < take; i++ {
			removed = append(removed, Card{Color: Locomotive})
		}
	}

	if count > 0 {
		panic(fmt.Sprintf("player %d cannot pay the full cost, short %d %s cards", player.ID, count, color))
	}
	return removed
}
