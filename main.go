package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TinyPablo/trains-game-engine/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "", "YAML batch config (defaults apply when empty)")
	games := flag.Int("games", 0, "override the number of games")
	players := flag.Int("players", 0, "override the number of players")
	seed := flag.Int64("seed", 0, "override the base seed")
	csvOut := flag.Bool("csv", false, "write game records to CSV")
	flag.Parse()

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *players > 0 {
		cfg.Players = *players
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *csvOut {
		cfg.WriteCSV = true
	}

	if _, err := experiments.RunStress(cfg); err != nil {
		log.Fatal().Err(err).Msg("stress batch failed")
	}
}
