package game

// Hand counts a player's cards per color, indexed by Color. The fixed size
// keeps access and cloning cheap.
type Hand [NumCardColors]int

// Count sums the cards across all colors.
func (h Hand) Count() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

const (
	StartingWagons   = 45
	StartingStations = 3
)

// Player is one seat at the table.
type Player struct {
	ID       int
	Wagons   int
	Stations int
	Hand     Hand
	Tickets  []Ticket
	Score    int
}

func NewPlayer(id int) *Player {
	return &Player{
		ID:       id,
		Wagons:   StartingWagons,
		Stations: StartingStations,
	}
}

// Copy returns an independent player. Tickets are immutable values, so a
// fresh slice is enough.
func (p *Player) Copy() *Player {
	tickets := make([]Ticket, len(p.Tickets))
	copy(tickets, p.Tickets)
	return &Player{
		ID:       p.ID,
		Wagons:   p.Wagons,
		Stations: p.Stations,
		Hand:     p.Hand,
		Tickets:  tickets,
		Score:    p.Score,
	}
}
