package engine

import (
	"math/rand"

	"github.com/TinyPablo/trains-game-engine/game"
)

// RandomAgent plays a uniformly random legal action. It is the baseline
// policy for stress batches and rollouts.
type RandomAgent struct{}

func (RandomAgent) FindAction(_ *game.GameState, legal []game.Action) game.Action {
	return legal[rand.Intn(len(legal))]
}
