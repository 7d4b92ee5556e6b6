package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdempoker-server/internal/util"
	"holdempoker-server/pkg/room"
)

// Config provides configuration for the poker server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		StartingChips   int `yaml:"startingChips" envconfig:"starting_chips"`
		SmallBlind      int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind        int `yaml:"bigBlind" envconfig:"big_blind"`
		MaxSeats        int `yaml:"maxSeats" envconfig:"max_seats"`
		BotDelayMinMs   int `yaml:"botDelayMinMs" envconfig:"bot_delay_min_ms"`
		BotDelayMaxMs   int `yaml:"botDelayMaxMs" envconfig:"bot_delay_max_ms"`
		StreetDelayMs   int `yaml:"streetDelayMs" envconfig:"street_delay_ms"`
		NextHandDelayMs int `yaml:"nextHandDelayMs" envconfig:"next_hand_delay_ms"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an
// error; environment variables and defaults still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// RoomOptions translates the game configuration into room options,
// falling back to the standard table for anything unset.
func (c Config) RoomOptions() room.Options {
	opts := room.DefaultOptions()

	if c.Game.StartingChips > 0 {
		opts.StartingChips = c.Game.StartingChips
	}
	if c.Game.SmallBlind > 0 {
		opts.SmallBlind = c.Game.SmallBlind
	}
	if c.Game.BigBlind > 0 {
		opts.BigBlind = c.Game.BigBlind
	}
	if c.Game.MaxSeats > 0 {
		opts.MaxSeats = c.Game.MaxSeats
	}
	if c.Game.BotDelayMinMs > 0 {
		opts.BotDelayMin = time.Duration(c.Game.BotDelayMinMs) * time.Millisecond
	}
	if c.Game.BotDelayMaxMs > 0 {
		opts.BotDelayMax = time.Duration(c.Game.BotDelayMaxMs) * time.Millisecond
	}
	if c.Game.StreetDelayMs > 0 {
		opts.StreetDelay = time.Duration(c.Game.StreetDelayMs) * time.Millisecond
	}
	if c.Game.NextHandDelayMs > 0 {
		opts.NextHandDelay = time.Duration(c.Game.NextHandDelayMs) * time.Millisecond
	}

	return opts
}
