package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the simulation
type Config struct {
	Rows                 int           `json:"rows" yaml:"rows"`
	Columns              int           `json:"columns" yaml:"columns"`
	Vision               int           `json:"vision" yaml:"vision"`
	LionMaxHealth        float64       `json:"lion_max_health" yaml:"lion_max_health"`
	AntelopeMaxHealth    float64       `json:"antelope_max_health" yaml:"antelope_max_health"`
	LionHealthCost       float64       `json:"lion_health_cost" yaml:"lion_health_cost"`
	FeedAmount           float64       `json:"feed_amount" yaml:"feed_amount"`
	RelationshipDuration int           `json:"relationship_duration" yaml:"relationship_duration"`
	TickInterval         time.Duration `json:"tick_interval" yaml:"tick_interval"`
	StrictPairingScan    bool          `json:"strict_pairing_scan" yaml:"strict_pairing_scan"`
	InitialLions         int           `json:"initial_lions" yaml:"initial_lions"`
	InitialAntelopes     int           `json:"initial_antelopes" yaml:"initial_antelopes"`
	Seed                 int64         `json:"seed" yaml:"seed"`
	MaxTicks             int           `json:"max_ticks" yaml:"max_ticks"`
}

// DefaultConfig returns the classic savanna parameters
func DefaultConfig() Config {
	return Config{
		Rows:                 20,
		Columns:              30,
		Vision:               2,
		LionMaxHealth:        100,
		AntelopeMaxHealth:    100,
		LionHealthCost:       0.5,
		FeedAmount:           20,
		RelationshipDuration: 3,
		TickInterval:         time.Second,
		StrictPairingScan:    true, // Stop pairing at the first animal without a partner
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the parameters describe a playable board
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Columns <= 0:
		return errors.Errorf("[Validate] board must be at least 1x1, got %dx%d", c.Columns, c.Rows)
	case c.Vision < 0:
		return errors.Errorf("[Validate] vision must not be negative, got %d", c.Vision)
	case c.LionMaxHealth <= 0 || c.AntelopeMaxHealth <= 0:
		return errors.New("[Validate] max health must be positive")
	case c.LionHealthCost < 0 || c.FeedAmount < 0:
		return errors.New("[Validate] health cost and feed amount must not be negative")
	case c.RelationshipDuration <= 0:
		return errors.Errorf("[Validate] relationship duration must be positive, got %d", c.RelationshipDuration)
	case c.TickInterval < 0:
		return errors.Errorf("[Validate] tick interval must not be negative, got %s", c.TickInterval)
	case c.InitialLions < 0 || c.InitialAntelopes < 0 || c.MaxTicks < 0:
		return errors.New("[Validate] initial population and max ticks must not be negative")
	}
	return nil
}
