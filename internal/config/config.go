// Package config provides YAML-based settings for the minesweeper binary:
// player name, difficulty, tick rate, database location and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// DifficultyCustom selects the Custom block instead of a preset.
const DifficultyCustom = "custom"

// ErrUnknownPreset is returned for a difficulty name that is neither a
// preset nor "custom".
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Settings is the top-level configuration file.
type Settings struct {
	PlayerName string            `yaml:"player_name"`
	Difficulty string            `yaml:"difficulty"`
	Custom     engine.Difficulty `yaml:"custom"`
	TickRate   int               `yaml:"tick_rate"`
	Seed       int64             `yaml:"seed"`
	DBPath     string            `yaml:"db_path"`
	SSH        SSHSettings       `yaml:"ssh"`
}

// SSHSettings configures the serve command.
type SSHSettings struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // empty means ~/.minesweeper/ssh_host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration. Zero disables it.
func (s SSHSettings) IdleTimeout() time.Duration {
	if s.IdleTimeoutMinutes <= 0 {
		return 0
	}
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// DefaultSettings returns the hardcoded fallback settings.
func DefaultSettings() Settings {
	return Settings{
		PlayerName: "Player",
		Difficulty: "beginner",
		Custom:     engine.Difficulty{Width: 20, Height: 12, MineCount: 45},
		TickRate:   30,
		DBPath:     "~/.minesweeper/scores.db",
		SSH: SSHSettings{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// ResolveDifficulty maps a preset name or "custom" to a validated
// difficulty.
func (s Settings) ResolveDifficulty() (engine.Difficulty, error) {
	if s.Difficulty == DifficultyCustom {
		if err := s.Custom.Validate(); err != nil {
			return engine.Difficulty{}, fmt.Errorf("config: custom difficulty: %w", err)
		}
		return s.Custom, nil
	}
	d, ok := engine.PresetByName(s.Difficulty)
	if !ok {
		return engine.Difficulty{}, fmt.Errorf("config: %w: %q", ErrUnknownPreset, s.Difficulty)
	}
	return d, nil
}

// normalize fills zero values a partial file left out.
func (s *Settings) normalize() {
	def := DefaultSettings()
	if s.Difficulty == "" {
		s.Difficulty = def.Difficulty
	}
	if s.TickRate <= 0 {
		s.TickRate = def.TickRate
	}
	if s.DBPath == "" {
		s.DBPath = def.DBPath
	}
	if s.SSH.Address == "" {
		s.SSH.Address = def.SSH.Address
	}
}
