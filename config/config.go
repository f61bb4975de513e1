package config

import (
	"errors"
	"fmt"
	"mintworks/meta"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type PlayerConfig struct {
	Label string `yaml:"label" json:"label"`
	Age   int    `yaml:"age" json:"age"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir" json:"dir"`
	Snapshot string `yaml:"snapshot" json:"snapshot"`
}

type Config struct {
	Seed                    uint64         `yaml:"seed" json:"seed"`
	Games                   int            `yaml:"games" json:"games"`
	StartingTokens          int            `yaml:"starting_tokens" json:"starting_tokens"`
	Packs                   []string       `yaml:"packs" json:"packs"`
	FavorLargeNeighbourhood bool           `yaml:"favor_large_neighbourhood" json:"favor_large_neighbourhood"`
	LogLevel                string         `yaml:"log_level" json:"log_level"`
	Players                 []PlayerConfig `yaml:"players" json:"players"`
	Output                  OutputConfig   `yaml:"output" json:"output"`
}

func Default() Config {
	return Config{
		Seed:                    1,
		Games:                   1,
		StartingTokens:          meta.STARTING_TOKENS,
		Packs:                   []string{"base"},
		FavorLargeNeighbourhood: true,
		LogLevel:                "info",
		Players: []PlayerConfig{
			{Label: "Alice", Age: 30},
			{Label: "Bob", Age: 45},
		},
		Output: OutputConfig{Dir: "experiments"},
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("%w: need at least two players", ErrInvalidConfig)
	}
	seen := map[string]bool{}
	for _, p := range c.Players {
		if p.Label == "" {
			return fmt.Errorf("%w: player without label", ErrInvalidConfig)
		}
		if seen[p.Label] {
			return fmt.Errorf("%w: duplicate player %s", ErrInvalidConfig, p.Label)
		}
		seen[p.Label] = true
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}
	if c.StartingTokens < 0 {
		return fmt.Errorf("%w: starting tokens must not be negative", ErrInvalidConfig)
	}
	if len(c.Packs) == 0 {
		return fmt.Errorf("%w: no content packs", ErrInvalidConfig)
	}
	return nil
}
