package game

import "fmt"

// Action is one of the tagged variants below. Each variant carries only the
// fields its resolution needs, so illegal field combinations cannot be
// built. All variants are comparable, which lets drivers check a candidate
// against the generated list with ==.
type Action interface {
	isAction()
	fmt.Stringer
}

// DrawBlind draws the top card of the wagon deck.
type DrawBlind struct{}

// DrawFaceUp takes the face-up card in the given slot.
type DrawFaceUp struct {
	Slot int
}

// DrawTickets draws up to three tickets from the pile; all are kept.
type DrawTickets struct{}

// ClaimRoute pays for and claims a route. Color is the payment color: the
// route's own color for colored routes, the claimant's choice for wildcard
// routes.
type ClaimRoute struct {
	RouteID int
	Color   Color
}

// BuildStation places a station on a city, paying with the given color.
type BuildStation struct {
	City  int
	Color Color
}

// TunnelPay settles a pending tunnel claim by paying the extra cards in the
// resolving color (locomotives substitute).
type TunnelPay struct{}

// TunnelForfeit abandons a pending tunnel claim; the committed cards return
// to the claimant's hand.
type TunnelForfeit struct{}

func (DrawBlind) isAction()     {}
func (DrawFaceUp) isAction()    {}
func (DrawTickets) isAction()   {}
func (ClaimRoute) isAction()    {}
func (BuildStation) isAction()  {}
func (TunnelPay) isAction()     {}
func (TunnelForfeit) isAction() {}

func (DrawBlind) String() string { return "draw blind" }
func (a DrawFaceUp) String() string {
	return fmt.Sprintf("draw face-up slot %d", a.Slot)
}
func (DrawTickets) String() string { return "draw tickets" }
func (a ClaimRoute) String() string {
	return fmt.Sprintf("claim route %d with %s", a.RouteID, a.Color)
}
func (a BuildStation) String() string {
	return fmt.Sprintf("build station at city %d with %s", a.City, a.Color)
}
func (TunnelPay) String() string     { return "tunnel pay" }
func (TunnelForfeit) String() string { return "tunnel forfeit" }
