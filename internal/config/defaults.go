package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Symbols: Symbols{
			Floor: "x",
			Snake: "S",
			Food:  "O",
		},
		Messages: Messages{
			Intro:    "Type 'down', 'left', 'right', or 'up' to maneuver the snake at whatever pace you find appropriate.",
			Prompt:   "What's your next move?",
			Win:      "You win!",
			Lose:     "You lose!",
			PressKey: "Press any key to exit.",
		},
		Log: Log{
			Level: "warn",
		},
		Storage: Storage{
			DB: "~/.snake/history.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
