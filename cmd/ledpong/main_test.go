package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/storage"
)

// setFlags overrides command flags for one test.
func setFlags(t *testing.T, set func()) {
	t.Helper()
	db, sshAddr, wsAddr, noDemo := flagDBPath, flagSSHAddr, flagWSAddr, flagNoDemo
	matches, ticks, frames, realtime, noRecord := flagSimMatches, flagSimTicks, flagSimFrames, flagSimRealtime, flagSimNoRecord
	t.Cleanup(func() {
		flagDBPath, flagSSHAddr, flagWSAddr, flagNoDemo = db, sshAddr, wsAddr, noDemo
		flagSimMatches, flagSimTicks, flagSimFrames, flagSimRealtime, flagSimNoRecord = matches, ticks, frames, realtime, noRecord
	})
	set()
}

func quietLogger() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestSimulateRecordsAndReturns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")
	setFlags(t, func() {
		flagDBPath = dbPath
		flagSimMatches = 0
		flagSimTicks = 200
		flagSimFrames = false
		flagSimRealtime = false
		flagSimNoRecord = false
	})

	sum, err := simulate(config.Default(), quietLogger())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if sum.Ticks != 200 {
		t.Errorf("Expected 200 ticks, got %d", sum.Ticks)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()
	recorded, err := store.RecentMatches(context.Background(), 100)
	if err != nil {
		t.Fatalf("RecentMatches failed: %v", err)
	}
	if len(recorded) != sum.Matches {
		t.Errorf("Expected %d recorded matches, got %d", sum.Matches, len(recorded))
	}
}

func TestSimulateUnknownBotReturnsError(t *testing.T) {
	setFlags(t, func() {
		flagDBPath = filepath.Join(t.TempDir(), "matches.db")
		flagSimTicks = 10
	})

	cfg := config.Default()
	cfg.Bots.Player1 = "no-such-bot"
	if _, err := simulate(cfg, quietLogger()); err == nil {
		t.Error("Expected error for unknown bot")
	}
}

func TestServeDemoErrorReturns(t *testing.T) {
	setFlags(t, func() {
		flagDBPath = filepath.Join(t.TempDir(), "matches.db")
		flagSSHAddr = ""
		flagWSAddr = "127.0.0.1:0"
		flagNoDemo = false
	})

	cfg := config.Default()
	cfg.Bots.Player1 = "no-such-bot"
	err := serve(cfg, quietLogger())
	if err == nil || !strings.Contains(err.Error(), "creating demo game") {
		t.Errorf("Expected demo game error, got %v", err)
	}
}
