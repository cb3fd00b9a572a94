// Package config provides YAML-based configuration loading and logger
// construction for the snake front-ends.
package config

import (
	"fmt"
	"unicode/utf8"
)

// Config contains all user-tunable settings.
type Config struct {
	Symbols  Symbols  `yaml:"symbols"`
	Messages Messages `yaml:"messages"`
	Log      Log      `yaml:"log"`
	Storage  Storage  `yaml:"storage"`
}

// Symbols are the single characters used to print the board.
type Symbols struct {
	Floor string `yaml:"floor"`
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// Messages are the fixed lines printed by the console driver.
type Messages struct {
	Intro    string `yaml:"intro"`
	Prompt   string `yaml:"prompt"`
	Win      string `yaml:"win"`
	Lose     string `yaml:"lose"`
	PressKey string `yaml:"press_key"`
}

// Log configures the charmbracelet logger.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Storage configures the game history database.
type Storage struct {
	DB string `yaml:"db"` // Path to the SQLite file, ~ is expanded
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	symbols := map[string]string{
		"floor": c.Symbols.Floor,
		"snake": c.Symbols.Snake,
		"food":  c.Symbols.Food,
	}
	for name, s := range symbols {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("config: symbol %s must be exactly one character, got %q", name, s)
		}
	}
	if c.Symbols.Floor == c.Symbols.Snake || c.Symbols.Floor == c.Symbols.Food || c.Symbols.Snake == c.Symbols.Food {
		return fmt.Errorf("config: symbols must be distinct, got %q %q %q",
			c.Symbols.Floor, c.Symbols.Snake, c.Symbols.Food)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DBPath returns the history database path with a leading ~ expanded.
func (c Config) DBPath() (string, error) {
	return ExpandHome(c.Storage.DB)
}

// Rune returns the first rune of a validated symbol.
func Rune(symbol string) rune {
	r, _ := utf8.DecodeRuneInString(symbol)
	return r
}
