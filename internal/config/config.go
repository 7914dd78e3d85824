// Package config loads the YAML settings shared by the demo and bench binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"collide3d/internal/collision"
	"collide3d/internal/logging"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Layers LayersConfig `yaml:"layers"`
	Arena  ArenaConfig  `yaml:"arena"`
	Debug  DebugConfig  `yaml:"debug"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// LayersConfig lists layer pairs whose colliders never interact. Each entry
// holds two layer expressions as accepted by collision.ParseLayer.
type LayersConfig struct {
	Ignore [][]string `yaml:"ignore"`
}

type ArenaConfig struct {
	Enemies        int     `yaml:"enemies"`
	LevelObjects   int     `yaml:"levelObjects"`
	Radius         float32 `yaml:"radius"`
	Seed           int64   `yaml:"seed"`
	PlayerSpeed    float32 `yaml:"playerSpeed"`
	PlayerHealth   int     `yaml:"playerHealth"`
	EnemyHealth    int     `yaml:"enemyHealth"`
	EnemySpeed     float32 `yaml:"enemySpeed"`
	BulletSpeed    float32 `yaml:"bulletSpeed"`
	BulletLifetime float32 `yaml:"bulletLifetime"`
	BulletDamage   int     `yaml:"bulletDamage"`
}

type DebugConfig struct {
	DrawColliders bool `yaml:"drawColliders"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Layers: LayersConfig{Ignore: [][]string{
			{"player", "bullet"},
			{"bullet", "bullet"},
			{"levelobject", "levelobject"},
		}},
		Arena: ArenaConfig{
			Enemies:        6,
			LevelObjects:   8,
			Radius:         15,
			Seed:           1,
			PlayerSpeed:    6,
			PlayerHealth:   5,
			EnemyHealth:    3,
			EnemySpeed:     2,
			BulletSpeed:    20,
			BulletLifetime: 2,
			BulletDamage:   1,
		},
		Debug: DebugConfig{DrawColliders: true},
	}
}

// Load reads and validates a config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.LayerRules(); err != nil {
		return err
	}
	a := c.Arena
	switch {
	case a.Enemies < 0 || a.LevelObjects < 0:
		return fmt.Errorf("%w: arena counts must not be negative", ErrInvalid)
	case a.Radius <= 0:
		return fmt.Errorf("%w: arena radius must be positive, got %.2f", ErrInvalid, a.Radius)
	case a.PlayerHealth <= 0 || a.EnemyHealth <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalid)
	case a.BulletSpeed <= 0 || a.BulletLifetime <= 0:
		return fmt.Errorf("%w: bullet speed and lifetime must be positive", ErrInvalid)
	}
	return nil
}

// LayerRules builds the ignore table. Replacing the list in YAML replaces
// the defaults entirely; an empty list lets every layer pair interact.
func (c *Config) LayerRules() (*collision.LayerRules, error) {
	rules := collision.NewLayerRules()
	for i, pair := range c.Layers.Ignore {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: layers.ignore[%d] needs two layers, got %d", ErrInvalid, i, len(pair))
		}
		a, err := collision.ParseLayer(pair[0])
		if err != nil {
			return nil, fmt.Errorf("layers.ignore[%d]: %w", i, err)
		}
		b, err := collision.ParseLayer(pair[1])
		if err != nil {
			return nil, fmt.Errorf("layers.ignore[%d]: %w", i, err)
		}
		rules.Ignore(a, b)
	}
	return rules, nil
}

func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, Development: c.Log.Development}
}
