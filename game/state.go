package game

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// Mode is the outer turn-machine mode. Tunnel resolution is a nested
// two-phase machine: while a tunnel claim is pending, only the tunnel
// transitions are legal.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTunnel
)

const (
	faceUpSlots    = 5
	initialDeal    = 4
	endgameWagons  = 2
	ticketsPerDraw = 3
	riskCards      = 3
)

// GameState is the full mutable state of one game. The Board is static and
// shared; everything else is owned by this state and deep-copied by Clone.
type GameState struct {
	Board   *Board
	Players []*Player
	Routes  []Route // per-game copy of Board.Routes, carrying ownership

	WagonDeck  *Deck
	TicketPile []Ticket
	FaceUp     []Card // 5 slots; shrinks only when the supply is exhausted

	ActivePlayer int
	CardsDrawn   int // non-locomotive cards drawn this turn, 0..2

	Mode          Mode
	TunnelRoute   int    // pending route ID, -1 in ModeNormal
	TunnelPending int    // extra cards owed
	TunnelColor   Color  // resolving color fixed by the initial payment
	TunnelLimbo   []Card // initial payment held until pay or forfeit

	Stations map[int]int // city ID -> owning player ID

	FinalTurn      bool
	TurnsRemaining int // meaningful once FinalTurn is set; 0 marks terminal
}

// NewGameState deals a fresh game on the given board: shuffled standard
// wagon deck, four cards per player, five face-up cards (reset rule
// applied), shuffled ticket pile.
func NewGameState(board *Board, numPlayers int) *GameState {
	if numPlayers < 2 {
		panic("need at least two players")
	}

	gs := &GameState{
		Board:          board,
		Routes:         make([]Route, len(board.Routes)),
		TunnelRoute:    -1,
		Stations:       make(map[int]int),
		TurnsRemaining: -1,
	}
	copy(gs.Routes, board.Routes)

	for i := 0; i < numPlayers; i++ {
		gs.Players = append(gs.Players, NewPlayer(i))
	}

	gs.WagonDeck = NewDeck(NewStandardCards())
	gs.WagonDeck.Shuffle()
	for _, p := range gs.Players {
		for i := 0; i < initialDeal; i++ {
			if card, ok := gs.WagonDeck.Draw(); ok {
				p.Hand[card.Color]++
			}
		}
	}
	for i := 0; i < faceUpSlots; i++ {
		if card, ok := gs.WagonDeck.Draw(); ok {
			gs.FaceUp = append(gs.FaceUp, card)
		}
	}
	gs.checkFaceUpReset()

	gs.TicketPile = make([]Ticket, len(board.Tickets))
	copy(gs.TicketPile, board.Tickets)
	rand.Shuffle(len(gs.TicketPile), func(i, j int) {
		gs.TicketPile[i], gs.TicketPile[j] = gs.TicketPile[j], gs.TicketPile[i]
	})

	return gs
}

// Clone returns a deeply independent copy sharing only the static Board.
// Callers fork simulation branches by cloning before mutating.
func (gs *GameState) Clone() *GameState {
	players := make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.Copy()
	}

	routes := make([]Route, len(gs.Routes))
	copy(routes, gs.Routes)

	tickets := make([]Ticket, len(gs.TicketPile))
	copy(tickets, gs.TicketPile)

	faceUp := make([]Card, len(gs.FaceUp))
	copy(faceUp, gs.FaceUp)

	limbo := make([]Card, len(gs.TunnelLimbo))
	copy(limbo, gs.TunnelLimbo)

	stations := make(map[int]int, len(gs.Stations))
	for city, owner := range gs.Stations {
		stations[city] = owner
	}

	return &GameState{
		Board:          gs.Board,
		Players:        players,
		Routes:         routes,
		WagonDeck:      gs.WagonDeck.Copy(),
		TicketPile:     tickets,
		FaceUp:         faceUp,
		ActivePlayer:   gs.ActivePlayer,
		CardsDrawn:     gs.CardsDrawn,
		Mode:           gs.Mode,
		TunnelRoute:    gs.TunnelRoute,
		TunnelPending:  gs.TunnelPending,
		TunnelColor:    gs.TunnelColor,
		TunnelLimbo:    limbo,
		Stations:       stations,
		FinalTurn:      gs.FinalTurn,
		TurnsRemaining: gs.TurnsRemaining,
	}
}

// Terminal reports whether the final-turn countdown has run out. The
// resolver itself never blocks further calls; drivers check this.
func (gs *GameState) Terminal() bool {
	return gs.FinalTurn && gs.TurnsRemaining <= 0
}

// Active returns the player whose turn it is.
func (gs *GameState) Active() *Player {
	return gs.Players[gs.ActivePlayer]
}

// checkFaceUpReset enforces the locomotive rule: whenever three or more of
// the face-up cards are locomotives, all five are discarded and redrawn,
// repeatedly until the condition clears or the supply runs dry.
func (gs *GameState) checkFaceUpReset() {
	for {
		locos := 0
		for _, c := range gs.FaceUp {
			if c.Color == Locomotive {
				locos++
			}
		}
		if locos < 3 {
			return
		}
		gs.WagonDeck.AddDiscard(gs.FaceUp...)
		gs.FaceUp = gs.FaceUp[:0]
		for i := 0; i < faceUpSlots; i++ {
			card, ok := gs.WagonDeck.Draw()
			if !ok {
				break
			}
			gs.FaceUp = append(gs.FaceUp, card)
		}
		if len(gs.FaceUp) < faceUpSlots {
			// Supply exhausted mid-reset, nothing more to redraw.
			return
		}
	}
}

// endTurn resets the draw counter, runs the end-game trigger and countdown,
// and advances the active player circularly. The turn that trips the
// trigger does not consume one of the remaining turns.
func (gs *GameState) endTurn() {
	gs.CardsDrawn = 0

	if !gs.FinalTurn {
		if gs.Active().Wagons <= endgameWagons {
			gs.FinalTurn = true
			gs.TurnsRemaining = len(gs.Players)
		}
	} else {
		gs.TurnsRemaining--
	}

	gs.ActivePlayer = (gs.ActivePlayer + 1) % len(gs.Players)
}

// Hash folds the dynamic state into a 64-bit fingerprint for tree reuse.
func (gs *GameState) Hash() uint64 {
	h := fnv.New64a()
	write := func(v int64) {
		binary.Write(h, binary.LittleEndian, v)
	}

	write(int64(gs.ActivePlayer))
	write(int64(gs.CardsDrawn))
	write(int64(gs.Mode))
	write(int64(gs.TunnelRoute))
	write(int64(gs.TunnelPending))

	for _, p := range gs.Players {
		write(int64(p.Wagons))
		write(int64(p.Stations))
		write(int64(p.Score))
		for _, n := range p.Hand {
			write(int64(n))
		}
	}
	for _, r := range gs.Routes {
		write(int64(r.Owner))
	}
	for _, c := range gs.FaceUp {
		write(int64(c.Color))
	}

	return h.Sum64()
}

// CardCount totals every card in the system: deck, discards, face-up slots,
// hands, and tunnel limbo. It is invariant across any sequence of legal
// actions.
func (gs *GameState) CardCount() int {
	total := gs.WagonDeck.TotalCount() + len(gs.FaceUp) + len(gs.TunnelLimbo)
	for _, p := range gs.Players {
		total += p.Hand.Count()
	}
	return total
}
