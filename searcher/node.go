package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/TinyPablo/trains-game-engine/game"
)

type node struct {
	parent   *node
	action   game.Action // action taken from the parent to reach this node
	actor    int         // player who took it
	children []*node
	rewards  float64
	visits   float64
}

// untried picks a random legal action with no child yet, if any.
func (n *node) untried(legal []game.Action, rng *rand.Rand) (game.Action, bool) {
	var candidates []game.Action
	for _, a := range legal {
		if n.childFor(a) == nil {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

func (n *node) childFor(action game.Action) *node {
	for _, child := range n.children {
		if child.action == action {
			return child
		}
	}
	return nil
}

// selectChild returns the max-UCB child among those legal in the current
// sample, or nil when no child applies.
func (n *node) selectChild(legal []game.Action) *node {
	var best *node
	bestValue := math.Inf(-1)
	for _, child := range n.children {
		if !containsAction(legal, child.action) {
			continue
		}
		value := child.ucb(n.visits)
		if value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

func (n *node) ucb(parentVisits float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploit := n.rewards / n.visits
	explore := exploration * math.Sqrt(math.Log(parentVisits)/n.visits)
	return exploit + explore
}
