package game

// Positional evaluation for cutoff rollouts: a score between -1 and 1 for
// how favorable the position looks for one player against the strongest
// opponent.

// Favorability weighs claimed route points, wagons already converted into
// track, and hand size for the given player relative to the best-placed
// opponent.
func Favorability(gs *GameState, playerID int) float64 {
	own := positionValue(gs, playerID)

	bestOther := 0.0
	for _, p := range gs.Players {
		if p.ID == playerID {
			continue
		}
		if v := positionValue(gs, p.ID); v > bestOther {
			bestOther = v
		}
	}

	return normalize(own, bestOther)
}

// Evaluate scores the position for the active player.
func Evaluate(gs *GameState) float64 {
	return Favorability(gs, gs.ActivePlayer)
}

func positionValue(gs *GameState, playerID int) float64 {
	p := gs.Players[playerID]
	value := float64(p.Score)
	value += 0.5 * float64(StartingWagons-p.Wagons) // track laid
	value += 0.1 * float64(p.Hand.Count())          // buying power
	return value
}

// normalize converts two values into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
