package game

// NoOwner marks a route that no player holds.
const NoOwner = -1

// Route connects two cities. Everything but Owner is fixed at load time;
// Owner is written at most once, when the route is claimed.
type Route struct {
	ID          int
	From        int // city ID
	To          int // city ID
	Length      int
	Color       Color // Any for wildcard (grey) routes
	Locomotives int   // minimum locomotive cards in any payment (ferries)
	Tunnel      bool
	Owner       int // player ID, NoOwner while unclaimed
}

// IsFerry reports whether the route demands locomotives regardless of the
// chosen payment color.
func (r Route) IsFerry() bool {
	return r.Locomotives > 0 && !r.Tunnel
}

// Ticket is a destination card: connect the two cities for the points,
// lose them otherwise.
type Ticket struct {
	ID     int
	From   int // city ID
	To     int // city ID
	Points int
}

// PointsForLength is the fixed route scoring table. Lengths outside the
// table score zero.
func PointsForLength(length int) int {
	switch length {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 4
	case 4:
		return 7
	case 6:
		return 15
	case 8:
		return 21
	default:
		return 0
	}
}
