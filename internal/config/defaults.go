package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/matrix"
)

//go:embed defaults/ledpong.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the default configuration. It matches the embedded
// defaults/ledpong.yaml and is used when that file cannot be parsed.
func Default() Config {
	tilt := PlayerInput{
		Mode:     InputTilt,
		Left:     -0.3,
		Right:    0.3,
		Rest:     0,
		DeadBand: 0.1,
	}
	return Config{
		Track: TrackConfig{
			Width:  8,
			Height: 16,
			Layout: matrix.Serpentine,
		},
		Paddle: PaddleConfig{Width: 3},
		Rules:  RulesConfig{WinThreshold: 5},
		Strip:  StripConfig{Length: 10},
		Timing: TimingConfig{
			Normal:           200 * time.Millisecond,
			Fast:             120 * time.Millisecond,
			GoalPause:        800 * time.Millisecond,
			Celebration:      3 * time.Second,
			CelebrationFade:  time.Second,
			CelebrationFrame: 40 * time.Millisecond,
		},
		Input: InputConfig{
			Player1: tilt,
			Player2: tilt,
		},
		Display: DisplayConfig{
			Brightness: 160,
			Background: core.Black,
			Ball:       core.White,
			Paddle1:    core.Red,
			Paddle2:    core.Blue,
			Strip1:     core.Red,
			Strip2:     core.Blue,
		},
		Bots: BotsConfig{
			Player2:  "tracker",
			Seed:     1,
			MinSkill: 0.6,
			MaxSkill: 0.95,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.3,
				Progression: ProgressionConfig{
					Type:  "score",
					MaxAt: 4,
				},
			},
		},
	}
}
