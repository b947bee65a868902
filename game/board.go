package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/TinyPablo/trains-game-engine/data"
)

// TileEntry is one colored segment group of a route record.
type TileEntry struct {
	Color  string `json:"color"`
	Amount int    `json:"amount"`
}

// RouteRecord is the static board representation of a single route: two
// endpoint city names, a tunnel flag, and the tile groups that make it up.
// The field name "tunel" matches the historical data files.
type RouteRecord struct {
	Stations []string    `json:"stations"`
	Tunnel   bool        `json:"tunel"`
	Tiles    []TileEntry `json:"tiles"`
}

// TicketRecord is the static representation of a destination ticket.
type TicketRecord struct {
	Cities []string `json:"cities"`
	Points int      `json:"points"`
}

// Board holds the static topology shared read-only by every game state
// created from it.
type Board struct {
	Cities  []string       // city name by ID; IDs follow sorted name order
	CityIDs map[string]int // reverse lookup
	Routes  []Route        // template routes, all unowned; IDs follow input order
	Tickets []Ticket
}

// NewBoard consolidates route records into routes: tile amounts sum into the
// length, locomotive tiles become the locomotive requirement, and an
// explicit color overrides the wildcard. Unrecognized color tokens are
// logged and treated as wildcard rather than failing the load.
func NewBoard(records []RouteRecord, tickets []TicketRecord) (*Board, error) {
	nameSet := map[string]struct{}{}
	for _, rec := range records {
		if len(rec.Stations) != 2 {
			return nil, fmt.Errorf("route record needs exactly 2 stations, got %d", len(rec.Stations))
		}
		nameSet[rec.Stations[0]] = struct{}{}
		nameSet[rec.Stations[1]] = struct{}{}
	}

	cities := make([]string, 0, len(nameSet))
	for name := range nameSet {
		cities = append(cities, name)
	}
	sort.Strings(cities)

	cityIDs := make(map[string]int, len(cities))
	for id, name := range cities {
		cityIDs[name] = id
	}

	b := &Board{
		Cities:  cities,
		CityIDs: cityIDs,
	}

	for i, rec := range records {
		length := 0
		locos := 0
		color := Any
		for _, tile := range rec.Tiles {
			length += tile.Amount
			c, ok := ParseColor(tile.Color)
			if !ok {
				log.Warn().Str("color", tile.Color).
					Str("from", rec.Stations[0]).Str("to", rec.Stations[1]).
					Msg("unknown color token in board data, treating as wildcard")
				continue
			}
			switch c {
			case Locomotive:
				locos += tile.Amount
			case Any:
				// Keeps the route grey unless a named color shows up.
			default:
				color = c
			}
		}
		b.Routes = append(b.Routes, Route{
			ID:          i,
			From:        cityIDs[rec.Stations[0]],
			To:          cityIDs[rec.Stations[1]],
			Length:      length,
			Color:       color,
			Locomotives: locos,
			Tunnel:      rec.Tunnel,
			Owner:       NoOwner,
		})
	}

	for i, rec := range tickets {
		if len(rec.Cities) != 2 {
			return nil, fmt.Errorf("ticket record needs exactly 2 cities, got %d", len(rec.Cities))
		}
		from, ok := cityIDs[rec.Cities[0]]
		if !ok {
			return nil, fmt.Errorf("ticket references unknown city %q", rec.Cities[0])
		}
		to, ok := cityIDs[rec.Cities[1]]
		if !ok {
			return nil, fmt.Errorf("ticket references unknown city %q", rec.Cities[1])
		}
		b.Tickets = append(b.Tickets, Ticket{ID: i, From: from, To: to, Points: rec.Points})
	}

	return b, nil
}

// SiblingRoutes returns the IDs of routes sharing this route's endpoints,
// the parallel halves of a double route.
func (b *Board) SiblingRoutes(id int) []int {
	var siblings []int
	r := b.Routes[id]
	for _, other := range b.Routes {
		if other.ID == id {
			continue
		}
		if (other.From == r.From && other.To == r.To) || (other.From == r.To && other.To == r.From) {
			siblings = append(siblings, other.ID)
		}
	}
	return siblings
}

// LoadEurope builds the Europe board from the embedded data files.
func LoadEurope() (*Board, error) {
	var records []RouteRecord
	raw, err := data.FS().ReadFile("europe.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded board data: %w", err)
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse board data: %w", err)
	}

	var tickets []TicketRecord
	raw, err = data.FS().ReadFile("tickets.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded ticket data: %w", err)
	}
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("failed to parse ticket data: %w", err)
	}

	return NewBoard(records, tickets)
}
