package config

import "github.com/vovakirdan/ledpong/internal/core"

// DifficultyManager calculates bot skill based on the opponent's score or
// the match length.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	minSkill     float64
	maxSkill     float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(bots BotsConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          bots.Difficulty,
		initialLevel: core.ClampF(bots.Difficulty.InitialLevel, 0.0, 1.0),
		minSkill:     bots.MinSkill,
		maxSkill:     bots.MaxSkill,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Skill maps the current level onto the [MinSkill, MaxSkill] range.
func (d *DifficultyManager) Skill(opponentScore int, tick uint64) float64 {
	level := d.Level(opponentScore, tick)
	return d.minSkill + level*(d.maxSkill-d.minSkill)
}
