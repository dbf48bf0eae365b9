package game

import (
	"path/filepath"
	"testing"
)

// TestSubmitStrictImprovement: only strictly better scores replace the best
func TestSubmitStrictImprovement(t *testing.T) {
	scores := OpenHighScores(filepath.Join(t.TempDir(), "hs.db"))
	defer scores.Close()

	if !scores.Submit(ModeClassic, 100) {
		t.Error("First nonzero score should be a new best")
	}
	if scores.Submit(ModeClassic, 100) {
		t.Error("Equal score is not an improvement")
	}
	if scores.Submit(ModeClassic, 40) {
		t.Error("Lower score is not an improvement")
	}
	if !scores.Submit(ModeClassic, 101) {
		t.Error("Higher score should replace the best")
	}
	if got := scores.Best(ModeClassic); got != 101 {
		t.Errorf("Expected best 101, got %d", got)
	}
}

// TestHighScoresPerMode: the three modes keep independent bests
func TestHighScoresPerMode(t *testing.T) {
	scores := OpenHighScores(filepath.Join(t.TempDir(), "hs.db"))
	defer scores.Close()

	scores.Submit(ModeClassic, 30)
	scores.Submit(ModeTimeAttack, 70)
	scores.Submit(ModeSurvival, 50)

	all := scores.All()
	want := map[string]int{"classic": 30, "time_attack": 70, "survival": 50}
	for key, v := range want {
		if all[key] != v {
			t.Errorf("%s: expected %d, got %d", key, v, all[key])
		}
	}
}

// TestHighScoresPersistAcrossReopen: bests survive closing and reopening the table
func TestHighScoresPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.db")

	scores := OpenHighScores(path)
	scores.Submit(ModeSurvival, 80)
	scores.Close()

	reopened := OpenHighScores(path)
	defer reopened.Close()

	if got := reopened.Best(ModeSurvival); got != 80 {
		t.Errorf("Expected persisted best 80, got %d", got)
	}
	if reopened.Submit(ModeSurvival, 60) {
		t.Error("60 should not beat the persisted 80")
	}
}

// TestHighScoresDegradeGracefully: an unusable path still yields a working table
func TestHighScoresDegradeGracefully(t *testing.T) {
	scores := OpenHighScores(filepath.Join(t.TempDir(), "nope", "\x00", "hs.db"))
	defer scores.Close()

	if got := scores.Best(ModeClassic); got != 0 {
		t.Errorf("Fresh table should report 0, got %d", got)
	}
	if !scores.Submit(ModeClassic, 25) {
		t.Error("In-memory submit should still track bests")
	}
	if got := scores.Best(ModeClassic); got != 25 {
		t.Errorf("Expected in-memory best 25, got %d", got)
	}
}
