package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ledpong/internal/bots"
	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/registry"
	"github.com/vovakirdan/ledpong/internal/render"
	"github.com/vovakirdan/ledpong/internal/storage"
)

var (
	flagSimMatches    int
	flagSimTicks      uint64
	flagSimFrames     bool
	flagSimRealtime   bool
	flagSimNoRecord   bool
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run bot matches headless",
	Long: `Run matches between two bots without a display.

Sides without a configured bot use the tracker. Finished matches are
recorded in the match database unless --no-record is set.

Examples:
  ledpong sim --matches 10
  ledpong sim --ticks 200 --frames
  ledpong sim --realtime --frames --seed 42`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMatches, "matches", 1, "Stop after this many matches (0 = unlimited)")
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 0, "Stop after this many game ticks (0 = unlimited)")
	simCmd.Flags().BoolVar(&flagSimFrames, "frames", false, "Print every frame as text")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Wait each frame's delay")
	simCmd.Flags().BoolVar(&flagSimNoRecord, "no-record", false, "Do not save matches")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Bot difficulty preset: easy, normal, hard, fixed")
}

// textDriver prints frames as text.
type textDriver struct {
	renderer *render.Renderer
}

func (d textDriver) Show(_ context.Context, f render.Frame) error {
	_, err := fmt.Fprintln(os.Stdout, d.renderer.ASCII(f))
	return err
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimMatches == 0 && flagSimTicks == 0 && !flagSimRealtime {
		exitf("an unlimited simulation needs --realtime, --matches or --ticks")
	}

	logger := newLogger("ledpong-sim")
	cfg, err := loadConfig(flagSimDifficulty)
	if err != nil {
		exitf("%v", err)
	}

	sum, err := simulate(cfg, logger)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Steps: %d  Ticks: %d  Matches: %d\n", sum.Steps, sum.Ticks, sum.Matches)
	for _, r := range sum.Results {
		fmt.Printf("  %s  winner P%d  %d-%d  %d ticks  %s\n",
			r.MatchID, r.Winner.Number(), r.Score1, r.Score2, r.Ticks, r.Duration)
	}
}

// simulate runs the bot matches. The match store is closed before it
// returns.
func simulate(cfg config.Config, logger *log.Logger) (engine.Summary, error) {
	if cfg.Bots.Player1 == "" {
		cfg.Bots.Player1 = bots.TrackerID
	}
	if cfg.Bots.Player2 == "" {
		cfg.Bots.Player2 = bots.TrackerID
	}

	session, err := engine.NewSession(cfg.SessionOptions())
	if err != nil {
		return engine.Summary{}, err
	}
	players, err := cfg.NewBots()
	if err != nil {
		return engine.Summary{}, err
	}

	runner := &engine.Runner{
		Session:    session,
		Input:      bots.NewSource(session, players, session.Inputs()),
		Logger:     logger,
		Realtime:   flagSimRealtime,
		MaxTicks:   flagSimTicks,
		MaxMatches: flagSimMatches,
	}
	if flagSimFrames {
		runner.Driver = textDriver{renderer: session.Renderer()}
	}

	if !flagSimNoRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("match database unavailable, not recording", "err", err)
		} else {
			defer store.Close()
			runner.Recorder = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started",
		"player1", botTitle(players[0]), "player2", botTitle(players[1]),
		"width", cfg.Track.Width, "height", cfg.Track.Height)

	sum, err := runner.Run(ctx)
	if err != nil {
		return sum, fmt.Errorf("simulation failed: %w", err)
	}
	return sum, nil
}

func botTitle(b registry.Bot) string {
	if b == nil {
		return "none"
	}
	return b.Title()
}
