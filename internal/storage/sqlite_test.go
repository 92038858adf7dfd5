package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testResult(winner core.Player, s1, s2 int, finished time.Time) engine.MatchResult {
	return engine.MatchResult{
		MatchID:     uuid.New(),
		Winner:      winner,
		Score1:      s1,
		Score2:      s2,
		Ticks:       120,
		Goals:       s1 + s2,
		WallBounces: 14,
		Blocks:      9,
		Duration:    1500 * time.Millisecond,
		FinishedAt:  finished,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndGetMatch(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	r := testResult(core.Player2, 3, 5, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err := store.SaveMatch(ctx, r); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	m, err := store.MatchByID(ctx, r.MatchID.String())
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m.Winner != core.Player2 {
		t.Errorf("Expected winner P2, got %v", m.Winner)
	}
	if m.Score1 != 3 || m.Score2 != 5 {
		t.Errorf("Expected score 3-5, got %d-%d", m.Score1, m.Score2)
	}
	if m.Ticks != 120 || m.Goals != 8 || m.WallBounces != 14 || m.Blocks != 9 {
		t.Errorf("Unexpected counters: %+v", m)
	}
	if m.Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", m.Duration)
	}
	if !m.CreatedAt.Equal(r.FinishedAt) {
		t.Errorf("Expected created_at %v, got %v", r.FinishedAt, m.CreatedAt)
	}

	// Duplicate match IDs are rejected
	if err := store.SaveMatch(ctx, r); err == nil {
		t.Error("Expected error saving duplicate match")
	}
}

func TestMatchByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.MatchByID(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		r := testResult(core.Player1, 5, i, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, r.MatchID.String())
		if err := store.SaveMatch(ctx, r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches(ctx, 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	// Newest first
	for i, m := range matches {
		if m.MatchID != ids[4-i] {
			t.Errorf("match %d: expected %s, got %s", i, ids[4-i], m.MatchID)
		}
	}

	all, err := store.RecentMatches(ctx, 0)
	if err != nil {
		t.Fatalf("RecentMatches(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 matches, got %d", len(all))
	}
}

func TestWinCountsAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	wins, err := store.WinCounts(ctx)
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}
	if wins != [2]int{0, 0} {
		t.Errorf("Expected no wins, got %v", wins)
	}

	now := time.Now()
	for _, r := range []engine.MatchResult{
		testResult(core.Player1, 5, 2, now),
		testResult(core.Player1, 5, 4, now),
		testResult(core.Player2, 1, 5, now),
	} {
		if err := store.SaveMatch(ctx, r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	wins, err = store.WinCounts(ctx)
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}
	if wins != [2]int{2, 1} {
		t.Errorf("Expected wins [2 1], got %v", wins)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Matches != 3 || stats.Goals != 22 || stats.WallBounces != 42 || stats.Blocks != 27 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgTicks != 120 {
		t.Errorf("Expected avg ticks 120, got %v", stats.AvgTicks)
	}

	if err := store.ClearMatches(ctx); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	if matches, _ := store.RecentMatches(ctx, 10); len(matches) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(matches))
	}
}

func TestRunnerRecordsIntoStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	opts := engine.DefaultOptions()
	opts.Rules.WinThreshold = 1
	opts.Celebration = 0
	session, err := engine.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	r := &engine.Runner{
		Session:    session,
		Input:      leftInput{},
		Recorder:   store,
		MaxMatches: 1,
		MaxTicks:   10000,
	}
	sum, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sum.Matches != 1 {
		t.Fatalf("Expected 1 match, got %d", sum.Matches)
	}

	m, err := store.MatchByID(ctx, sum.Results[0].MatchID.String())
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m.Goals != 1 {
		t.Errorf("Expected 1 goal, got %d", m.Goals)
	}
}
