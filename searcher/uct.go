// Package searcher implements Monte Carlo tree search over the rules core.
// Branching relies on GameState.Clone: every simulation forks the root
// state and replays the tree path on the fork, so chance events (blind
// draws, tunnel risk cards, reshuffles) are re-sampled per simulation.
package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/TinyPablo/trains-game-engine/game"
)

type Option func(*UCT)

// WithIterations fixes the number of simulations per decision.
func WithIterations(n int) Option {
	return func(u *UCT) {
		if n > 0 {
			u.iterations = n
		}
	}
}

// WithDuration bounds the search by wall time instead of a count.
func WithDuration(d time.Duration) Option {
	return func(u *UCT) {
		if d > 0 {
			u.duration = d
		}
	}
}

// WithCutoff truncates rollouts after the given number of actions and
// scores the frontier with the positional evaluation.
func WithCutoff(depth int) Option {
	return func(u *UCT) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

// WithSeed makes the search reproducible.
func WithSeed(seed uint64) Option {
	return func(u *UCT) {
		u.rng = rand.New(rand.NewSource(seed))
	}
}

const exploration = 1.41421356 // sqrt 2

type UCT struct {
	iterations int
	duration   time.Duration
	cutoff     int
	rng        *rand.Rand
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{
		cutoff: math.MaxInt,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(u)
	}
	if u.iterations <= 0 && u.duration <= 0 {
		panic("must specify search iterations or duration")
	}
	return u
}

// FindAction runs the configured number of simulations from the state and
// returns the most visited root action.
func (u *UCT) FindAction(state *game.GameState, legal []game.Action) game.Action {
	root := &node{}

	if u.iterations > 0 {
		for i := 0; i < u.iterations; i++ {
			u.simulate(root, state)
		}
	} else {
		deadline := time.Now().Add(u.duration)
		for time.Now().Before(deadline) {
			u.simulate(root, state)
		}
	}

	best := legal[0]
	bestVisits := -1.0
	for _, child := range root.children {
		if child.visits > bestVisits && containsAction(legal, child.action) {
			bestVisits = child.visits
			best = child.action
		}
	}
	return best
}

func (u *UCT) simulate(root *node, state *game.GameState) {
	s := state.Clone()
	n := root

	// Selection and expansion. Because chance is re-sampled on every fork,
	// a child's action may be illegal in this sample; such children are
	// skipped for this simulation only.
	for !s.Terminal() {
		legal := game.LegalActions(s, s.ActivePlayer)
		if len(legal) == 0 {
			break
		}

		if a, ok := n.untried(legal, u.rng); ok {
			child := &node{parent: n, action: a, actor: s.ActivePlayer}
			n.children = append(n.children, child)
			game.Apply(s, a)
			n = child
			break
		}

		child := n.selectChild(legal)
		if child == nil {
			break
		}
		game.Apply(s, child.action)
		n = child
	}

	rewards := u.rollout(s)

	for ; n != nil; n = n.parent {
		n.visits++
		if n.parent != nil {
			n.rewards += rewards[n.actor]
		}
	}
}

// rollout plays uniformly random actions until termination or the cutoff
// and returns a 0..1 reward per player.
func (u *UCT) rollout(s *game.GameState) []float64 {
	depth := 0
	for !s.Terminal() && depth < u.cutoff {
		legal := game.LegalActions(s, s.ActivePlayer)
		if len(legal) == 0 {
			break
		}
		game.Apply(s, legal[u.rng.Intn(len(legal))])
		depth++
	}

	rewards := make([]float64, len(s.Players))
	if s.Terminal() {
		game.Score(s)
		best := s.Players[0].Score
		for _, p := range s.Players {
			if p.Score > best {
				best = p.Score
			}
		}
		winners := 0
		for _, p := range s.Players {
			if p.Score == best {
				winners++
			}
		}
		for i, p := range s.Players {
			if p.Score == best {
				rewards[i] = 1 / float64(winners)
			}
		}
		return rewards
	}

	for i := range s.Players {
		rewards[i] = (game.Favorability(s, i) + 1) / 2
	}
	return rewards
}

func containsAction(legal []game.Action, action game.Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}
