package game

import "fmt"

// Indexer maps structured actions onto a flat integer index space for
// vectorized consumers. The space is partitioned into contiguous ranges:
// route claims crossed with the nine card colors, station builds crossed
// with the nine card colors, the blind draw, the ticket draw, the five
// face-up slots, and the two tunnel outcomes. The core itself only ever
// exchanges structured actions; this adapter lives at the boundary.
type Indexer struct {
	routes int
	cities int
}

func NewIndexer(b *Board) Indexer {
	return Indexer{routes: len(b.Routes), cities: len(b.Cities)}
}

// Size is the total number of index slots.
func (ix Indexer) Size() int {
	return ix.routes*NumCardColors + ix.cities*NumCardColors + 1 + 1 + faceUpSlots + 2
}

func (ix Indexer) claimBase() int   { return 0 }
func (ix Indexer) stationBase() int { return ix.routes * NumCardColors }
func (ix Indexer) blindIndex() int  { return ix.stationBase() + ix.cities*NumCardColors }
func (ix Indexer) ticketIndex() int { return ix.blindIndex() + 1 }
func (ix Indexer) faceUpBase() int  { return ix.ticketIndex() + 1 }
func (ix Indexer) payIndex() int    { return ix.faceUpBase() + faceUpSlots }
func (ix Indexer) forfeitIndex() int { return ix.payIndex() + 1 }

// Encode maps an action to its index.
func (ix Indexer) Encode(action Action) (int, error) {
	switch a := action.(type) {
	case ClaimRoute:
		if a.RouteID < 0 || a.RouteID >= ix.routes {
			return 0, fmt.Errorf("route %d out of range", a.RouteID)
		}
		return ix.claimBase() + a.RouteID*NumCardColors + int(a.Color), nil
	case BuildStation:
		if a.City < 0 || a.City >= ix.cities {
			return 0, fmt.Errorf("city %d out of range", a.City)
		}
		return ix.stationBase() + a.City*NumCardColors + int(a.Color), nil
	case DrawBlind:
		return ix.blindIndex(), nil
	case DrawTickets:
		return ix.ticketIndex(), nil
	case DrawFaceUp:
		if a.Slot < 0 || a.Slot >= faceUpSlots {
			return 0, fmt.Errorf("face-up slot %d out of range", a.Slot)
		}
		return ix.faceUpBase() + a.Slot, nil
	case TunnelPay:
		return ix.payIndex(), nil
	case TunnelForfeit:
		return ix.forfeitIndex(), nil
	default:
		return 0, fmt.Errorf("unsupported action %q", action)
	}
}

// Decode maps an index back to its structured action.
func (ix Indexer) Decode(index int) (Action, error) {
	switch {
	case index < 0 || index >= ix.Size():
		return nil, fmt.Errorf("index %d out of range [0,%d)", index, ix.Size())
	case index < ix.stationBase():
		rel := index - ix.claimBase()
		return ClaimRoute{RouteID: rel / NumCardColors, Color: Color(rel % NumCardColors)}, nil
	case index < ix.blindIndex():
		rel := index - ix.stationBase()
		return BuildStation{City: rel / NumCardColors, Color: Color(rel % NumCardColors)}, nil
	case index == ix.blindIndex():
		return DrawBlind{}, nil
	case index == ix.ticketIndex():
		return DrawTickets{}, nil
	case index < ix.payIndex():
		return DrawFaceUp{Slot: index - ix.faceUpBase()}, nil
	case index == ix.payIndex():
		return TunnelPay{}, nil
	default:
		return TunnelForfeit{}, nil
	}
}
