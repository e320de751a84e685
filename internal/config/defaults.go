package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultSettingsYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
