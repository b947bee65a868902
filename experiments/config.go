package experiments

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AgentConfig selects and tunes one seat's policy.
type AgentConfig struct {
	Kind       string        `yaml:"kind"` // "random" or "uct"
	Iterations int           `yaml:"iterations"`
	Duration   time.Duration `yaml:"duration"`
	Cutoff     int           `yaml:"cutoff"`
}

// Config drives a stress batch.
type Config struct {
	Games    int           `yaml:"games"`
	Players  int           `yaml:"players"`
	Seed     int64         `yaml:"seed"`
	Agents   []AgentConfig `yaml:"agents"` // optional; empty means all random
	OutDir   string        `yaml:"out_dir"`
	WriteCSV bool          `yaml:"write_csv"`
}

func DefaultConfig() Config {
	return Config{
		Games:   100,
		Players: 4,
		Seed:    1,
		OutDir:  "experiments/out",
	}
}

// LoadConfig reads a YAML config, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Games <= 0 {
		return cfg, fmt.Errorf("config needs a positive game count, got %d", cfg.Games)
	}
	if cfg.Players < 2 {
		return cfg, fmt.Errorf("config needs at least two players, got %d", cfg.Players)
	}
	if len(cfg.Agents) > 0 && len(cfg.Agents) != cfg.Players {
		return cfg, fmt.Errorf("config has %d agents for %d players", len(cfg.Agents), cfg.Players)
	}
	return cfg, nil
}
