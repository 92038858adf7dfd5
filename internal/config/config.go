// Package config provides YAML-based configuration loading, validation and
// bot difficulty management for ledpong.
package config

import (
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
)

// Config is the complete ledpong configuration.
type Config struct {
	Track   TrackConfig   `yaml:"track"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Rules   RulesConfig   `yaml:"rules"`
	Strip   StripConfig   `yaml:"strip"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Bots    BotsConfig    `yaml:"bots"`
}

// TrackConfig describes the LED panel the track is drawn on.
type TrackConfig struct {
	Width  int           `yaml:"width"`  // Transverse axis, paddles move along it
	Height int           `yaml:"height"` // Scoring axis
	Layout matrix.Layout `yaml:"layout"` // "row-major" or "serpentine"
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width int `yaml:"width"`
}

// RulesConfig defines match rules.
type RulesConfig struct {
	WinThreshold int `yaml:"win_threshold"`
}

// StripConfig describes the per-player score strips.
type StripConfig struct {
	Length int `yaml:"length"`
}

// TimingConfig defines frame delays. Values are Go durations ("200ms").
type TimingConfig struct {
	Normal           time.Duration `yaml:"normal"`
	Fast             time.Duration `yaml:"fast"`
	GoalPause        time.Duration `yaml:"goal_pause"`
	Celebration      time.Duration `yaml:"celebration"`
	CelebrationFade  time.Duration `yaml:"celebration_fade"`
	CelebrationFrame time.Duration `yaml:"celebration_frame"`
}

// InputConfig holds per-player sensor calibration.
type InputConfig struct {
	Player1 PlayerInput `yaml:"player1"`
	Player2 PlayerInput `yaml:"player2"`
}

// PlayerInput calibrates one paddle's sensor.
type PlayerInput struct {
	Mode     string  `yaml:"mode"` // "tilt" or "buttons"
	Left     float64 `yaml:"left"`
	Right    float64 `yaml:"right"`
	Rest     float64 `yaml:"rest"`
	Latch    bool    `yaml:"latch"`
	DeadBand float64 `yaml:"dead_band"`
}

// Input modes
const (
	InputTilt    = "tilt"
	InputButtons = "buttons"
)

// DisplayConfig defines LED colors and brightness.
type DisplayConfig struct {
	Brightness int      `yaml:"brightness"` // 0-255
	Background core.RGB `yaml:"background"`
	Ball       core.RGB `yaml:"ball"`
	Paddle1    core.RGB `yaml:"paddle1"`
	Paddle2    core.RGB `yaml:"paddle2"`
	Strip1     core.RGB `yaml:"strip1"`
	Strip2     core.RGB `yaml:"strip2"`
}

// BotsConfig selects computer opponents for headless and preview play.
type BotsConfig struct {
	Player1    string           `yaml:"player1"` // Bot ID, empty for a human
	Player2    string           `yaml:"player2"`
	Seed       int64            `yaml:"seed"`
	MinSkill   float64          `yaml:"min_skill"`
	MaxSkill   float64          `yaml:"max_skill"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines how bot skill progresses during a match.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Opponent score or ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset checks a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", ValidationError{Code: "difficulty", Message: "unknown preset " + s}
}

// ApplyPreset modifies the bot difficulty based on a preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Bots.Difficulty.Enabled = false
	} else {
		cfg.Bots.Difficulty.Enabled = true
		cfg.Bots.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
