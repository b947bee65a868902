// Package engine drives complete games between agents over the core rules.
// It is single-threaded and synchronous: one legal-action query, one agent
// decision, one resolver call per step.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TinyPablo/trains-game-engine/game"
)

// Agent picks one action from the legal set for the active player.
type Agent interface {
	FindAction(gs *game.GameState, legal []game.Action) game.Action
}

// MaxTurns caps runaway games so a stuck policy cannot hang a batch.
const MaxTurns = 5000

// Result summarizes one finished game.
type Result struct {
	ID          uuid.UUID
	Scores      []int
	LongestPath []int
	Winners     []int // player IDs with the top score, usually one
	Turns       int
	Duration    time.Duration
}

// Engine couples one game state with its agents, one agent per seat.
type Engine struct {
	ID     uuid.UUID
	State  *game.GameState
	Agents []Agent
}

func New(state *game.GameState, agents []Agent) *Engine {
	if len(agents) != len(state.Players) {
		panic("number of agents does not match number of players")
	}
	if len(agents) < 2 {
		panic("need at least two agents")
	}
	return &Engine{
		ID:     uuid.New(),
		State:  state,
		Agents: agents,
	}
}

// Run plays the game to termination and scores it. Any contract-violation
// panic from the resolver is converted into an error so one corrupted game
// cannot abort a batch.
func (e *Engine) Run() (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game %s aborted: %v", e.ID, r)
		}
	}()

	start := time.Now()
	turns := 0

	for !e.State.Terminal() && turns < MaxTurns {
		active := e.State.ActivePlayer
		legal := game.LegalActions(e.State, active)
		if len(legal) == 0 {
			return nil, fmt.Errorf("game %s: no legal actions for player %d", e.ID, active)
		}

		action := e.Agents[active].FindAction(e.State, legal)
		if !contains(legal, action) {
			return nil, fmt.Errorf("game %s: agent %d chose illegal action %q", e.ID, active, action)
		}

		game.Apply(e.State, action)

		if e.State.ActivePlayer != active {
			turns++
		}
	}

	if turns >= MaxTurns {
		log.Warn().Str("game", e.ID.String()).Int("turns", turns).Msg("game hit turn cap before terminating")
	}

	longest := game.Score(e.State)

	scores := make([]int, len(e.State.Players))
	for i, p := range e.State.Players {
		scores[i] = p.Score
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	var winners []int
	for i, s := range scores {
		if s == best {
			winners = append(winners, i)
		}
	}

	return &Result{
		ID:          e.ID,
		Scores:      scores,
		LongestPath: longest,
		Winners:     winners,
		Turns:       turns,
		Duration:    time.Since(start),
	}, nil
}

func contains(legal []game.Action, action game.Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}
