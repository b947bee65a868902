package game

// LegalActions enumerates every action the given player may take. It is a
// pure function of the state: affordability checks never mutate anything.
// A player who is not the active player has no legal actions.
func LegalActions(gs *GameState, playerID int) []Action {
	if playerID != gs.ActivePlayer {
		return nil
	}
	player := gs.Players[playerID]

	// Pending tunnel resolution overrides everything else.
	if gs.Mode == ModeTunnel {
		return tunnelActions(gs, player)
	}

	// A second draw is restricted: blind, or a non-locomotive face-up card.
	if gs.CardsDrawn == 1 {
		moves := []Action{DrawBlind{}}
		for i, card := range gs.FaceUp {
			if card.Color != Locomotive {
				moves = append(moves, DrawFaceUp{Slot: i})
			}
		}
		return moves
	}

	moves := []Action{DrawBlind{}, DrawTickets{}}
	for i := range gs.FaceUp {
		moves = append(moves, DrawFaceUp{Slot: i})
	}
	moves = append(moves, stationActions(gs, player)...)
	moves = append(moves, claimActions(gs, player)...)
	return moves
}

func tunnelActions(gs *GameState, player *Player) []Action {
	moves := []Action{TunnelForfeit{}}
	if canPayTunnel(player, gs.TunnelColor, gs.TunnelPending) {
		moves = append(moves, TunnelPay{})
	}
	return moves
}

// canPayTunnel checks the extra-card payment: the resolving color plus
// locomotives, or locomotives alone when the resolving color is itself the
// locomotive.
func canPayTunnel(player *Player, color Color, pending int) bool {
	if pending == 0 {
		return true
	}
	if color == Locomotive {
		return player.Hand[Locomotive] >= pending
	}
	return player.Hand[color]+player.Hand[Locomotive] >= pending
}

func stationActions(gs *GameState, player *Player) []Action {
	if player.Stations <= 0 {
		return nil
	}
	cost := StartingStations + 1 - player.Stations // 1, 2, then 3 cards

	var moves []Action
	for city := range gs.Board.Cities {
		if _, taken := gs.Stations[city]; taken {
			continue
		}
		for _, c := range RegularColors() {
			if player.Hand[c]+player.Hand[Locomotive] >= cost {
				moves = append(moves, BuildStation{City: city, Color: c})
			}
		}
	}
	return moves
}

func claimActions(gs *GameState, player *Player) []Action {
	var moves []Action
	for _, route := range gs.Routes {
		if route.Owner != NoOwner {
			continue
		}
		// In games below four players only one half of a double route is
		// available; once a sibling is owned the other is withheld.
		if len(gs.Players) < 4 && siblingOwned(gs, route.ID) {
			continue
		}
		if player.Wagons < route.Length {
			continue
		}

		if route.Color != Any {
			if canPayRoute(player, route.Color, route.Length, route.Locomotives) {
				moves = append(moves, ClaimRoute{RouteID: route.ID, Color: route.Color})
			}
			continue
		}
		// Wildcard route: one candidate per color the player can pay with.
		for _, c := range RegularColors() {
			if canPayRoute(player, c, route.Length, route.Locomotives) {
				moves = append(moves, ClaimRoute{RouteID: route.ID, Color: c})
			}
		}
	}
	return moves
}

func siblingOwned(gs *GameState, routeID int) bool {
	for _, sib := range gs.Board.SiblingRoutes(routeID) {
		if gs.Routes[sib].Owner != NoOwner {
			return true
		}
	}
	return false
}

// canPayRoute checks a claim payment: the locomotive requirement comes out
// of wildcards first, then the named color plus leftover wildcards cover
// the remaining length.
func canPayRoute(player *Player, color Color, length, locosRequired int) bool {
	locos := player.Hand[Locomotive]
	if locos < locosRequired {
		return false
	}
	remaining := length - locosRequired
	return player.Hand[color]+(locos-locosRequired) >= remaining
}
