package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/platform/tui"
	"github.com/vovakirdan/ledpong/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Preview the LED matrix in the terminal",
	Long: `Play ledpong with the LED matrix drawn in the terminal.

Players without a configured bot are driven from the keyboard.

Controls:
  A/D        - Player 1 left/right
  J/L, ←/→   - Player 2 left/right
  P/Space    - Pause
  R          - Restart
  Ctrl+S     - Save the current frame as text
  Q/Ctrl+C   - Quit

Difficulty options (bot skill):
  easy   - Bots start weak and improve as you score
  normal - Start at 30% skill, progresses to max
  hard   - Start at 70% skill, progresses to max
  fixed  - No progression

Examples:
  ledpong play
  ledpong play --difficulty hard
  ledpong play --config ./my-board.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Bot difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}

	// Each cell is two columns wide; leave room for strips and help.
	needW, needH := cfg.Track.Width*2+4, cfg.Track.Height+8
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	bots, err := cfg.NewBots()
	if err != nil {
		exitf("%v", err)
	}

	// Open match storage
	var recorder engine.MatchRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the game still works
	} else {
		recorder = store
	}

	runErr := tui.Run(tui.Options{
		NewSession: func() (*engine.Session, error) {
			return engine.NewSession(cfg.SessionOptions())
		},
		Bots:     bots,
		Recorder: recorder,
		Title:    title(cfg),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running preview: %v", runErr)
	}
}

// title names the matchup, e.g. "you vs tracker".
func title(cfg config.Config) string {
	name := func(id string) string {
		if id == "" {
			return "you"
		}
		return id
	}
	return fmt.Sprintf("ledpong: %s vs %s", name(cfg.Bots.Player1), name(cfg.Bots.Player2))
}
