// Package experiments runs batches of self-play games for stress testing
// and policy comparison. Each game is isolated: a corrupted game is
// recorded as a failure without aborting the batch.
package experiments

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TinyPablo/trains-game-engine/engine"
	"github.com/TinyPablo/trains-game-engine/game"
	"github.com/TinyPablo/trains-game-engine/searcher"
)

// GameRecord captures the outcome of one game in a batch.
type GameRecord struct {
	Game     int
	ID       string
	Turns    int
	Scores   []int
	Winners  []int
	Duration time.Duration
	Err      string
}

// RunStress plays cfg.Games seeded games and reports the records. The
// per-game seed is cfg.Seed plus the game number, so any failure replays.
func RunStress(cfg Config) ([]GameRecord, error) {
	board, err := game.LoadEurope()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	log.Info().Int("routes", len(board.Routes)).Int("cities", len(board.Cities)).
		Int("games", cfg.Games).Msg("starting stress batch")

	records := make([]GameRecord, 0, cfg.Games)
	failures := 0

	for i := 0; i < cfg.Games; i++ {
		rand.Seed(cfg.Seed + int64(i))

		state := game.NewGameState(board, cfg.Players)
		e := engine.New(state, buildAgents(cfg))

		rec := GameRecord{Game: i, ID: e.ID.String()}
		result, err := e.Run()
		if err != nil {
			failures++
			rec.Err = err.Error()
			log.Error().Err(err).Int("game", i).Msg("game failed")
		} else {
			rec.Turns = result.Turns
			rec.Scores = result.Scores
			rec.Winners = result.Winners
			rec.Duration = result.Duration
		}
		records = append(records, rec)

		if (i+1)%100 == 0 {
			log.Info().Int("completed", i+1).Int("failures", failures).Msg("stress progress")
		}
	}

	log.Info().Int("games", cfg.Games).Int("failures", failures).Msg("completed stress batch")

	if cfg.WriteCSV {
		writer, err := NewWriter(cfg.OutDir)
		if err != nil {
			return records, err
		}
		if err := writer.WriteGameRecords(records); err != nil {
			return records, err
		}
	}
	return records, nil
}

func buildAgents(cfg Config) []engine.Agent {
	agents := make([]engine.Agent, cfg.Players)
	for i := range agents {
		if len(cfg.Agents) == 0 {
			agents[i] = engine.RandomAgent{}
			continue
		}
		agents[i] = buildAgent(cfg.Agents[i])
	}
	return agents
}

func buildAgent(ac AgentConfig) engine.Agent {
	switch ac.Kind {
	case "uct":
		options := []searcher.Option{}
		if ac.Iterations > 0 {
			options = append(options, searcher.WithIterations(ac.Iterations))
		}
		if ac.Duration > 0 {
			options = append(options, searcher.WithDuration(ac.Duration))
		}
		if ac.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(ac.Cutoff))
		}
		return searcher.NewUCT(options...)
	default:
		return engine.RandomAgent{}
	}
}
