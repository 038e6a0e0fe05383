package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/nkapur/auralist/features"
	"github.com/nkapur/auralist/recommend"
)

// envPrefix namespaces the environment overrides: AURALIST_MAX_SONGS,
// AURALIST_MOOD_MATCH_THRESHOLD, and so on.
const envPrefix = "AURALIST_"

// Config carries the CLI defaults a user can persist in a YAML file instead
// of repeating flags. Precedence: flags > environment > file > defaults.
type Config struct {
	MaxSongs           int     `koanf:"max_songs"`
	Shuffle            bool    `koanf:"shuffle"`
	Dynamic            bool    `koanf:"dynamic"`
	MoodMatchThreshold float64 `koanf:"mood_match_threshold"`
	PartialMatchScore  float64 `koanf:"partial_match_score"`
	EnergyColumn       string  `koanf:"energy_column"`
	ValenceColumn      string  `koanf:"valence_column"`
	TempoColumn        string  `koanf:"tempo_column"`
}

func defaultCLIConfig() Config {
	traits := features.DefaultTraitColumns()
	engine := recommend.DefaultConfig()
	return Config{
		MaxSongs:           20,
		Shuffle:            true,
		Dynamic:            true,
		MoodMatchThreshold: engine.MoodMatchThreshold,
		PartialMatchScore:  engine.PartialMatchScore,
		EnergyColumn:       traits.Energy,
		ValenceColumn:      traits.Valence,
		TempoColumn:        traits.Tempo,
	}
}

// LoadConfig loads layered CLI configuration: built-in defaults, then an
// optional YAML file, then AURALIST_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := defaultCLIConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// EngineConfig maps the CLI configuration onto an engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		MoodMatchThreshold: c.MoodMatchThreshold,
		PartialMatchScore:  c.PartialMatchScore,
		TraitColumns: features.TraitColumns{
			Energy:  c.EnergyColumn,
			Valence: c.ValenceColumn,
			Tempo:   c.TempoColumn,
		},
	}
}
