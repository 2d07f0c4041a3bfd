package storage

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/games/runner"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

func TestProfileNewPlayer(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("fresh")

	high, err := p.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	coins, err := p.LoadTotalCoins()
	if err != nil {
		t.Fatalf("LoadTotalCoins() failed: %v", err)
	}
	if high != 0 || coins != 0 {
		t.Errorf("Expected empty profile, got high=%d coins=%d", high, coins)
	}
}

func TestProfileSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("ana")

	if err := p.SaveHighScore(420); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := p.AddCoins(70); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	if err := p.AddCoins(7); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	// Saving one field keeps the other
	if err := p.SaveHighScore(500); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	rec, err := store.ProfileRecord("ana")
	if err != nil {
		t.Fatalf("ProfileRecord() failed: %v", err)
	}
	if rec.HighScore != 500 || rec.TotalCoins != 77 {
		t.Errorf("Unexpected profile: %+v", rec)
	}

	// Profiles are per player
	if high, _ := store.Profile("bob").LoadHighScore(); high != 0 {
		t.Errorf("bob should not see ana's high score, got %d", high)
	}
}

func TestProfileSharedByTwoSessions(t *testing.T) {
	store := openTestStore(t)
	a := store.Profile("ana")
	b := store.Profile("ana")

	// Both sessions start from the same empty profile
	for _, p := range []*Profile{a, b} {
		if high, err := p.LoadHighScore(); err != nil || high != 0 {
			t.Fatalf("LoadHighScore() = %d, %v", high, err)
		}
	}

	// Session A ends first with the better run
	if err := a.SaveHighScore(500); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := a.AddCoins(10); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	// Session B still believes the best is 0
	if err := b.SaveHighScore(200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := b.AddCoins(7); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}

	rec, err := store.ProfileRecord("ana")
	if err != nil {
		t.Fatalf("ProfileRecord() failed: %v", err)
	}
	if rec.HighScore != 500 {
		t.Errorf("Expected high score 500 to survive, got %d", rec.HighScore)
	}
	if rec.TotalCoins != 17 {
		t.Errorf("Expected coins of both sessions (17), got %d", rec.TotalCoins)
	}
}

func TestTopProfiles(t *testing.T) {
	store := openTestStore(t)
	store.Profile("ana").SaveHighScore(100)
	store.Profile("bob").SaveHighScore(300)
	store.Profile("cid").SaveHighScore(200)

	top, err := store.TopProfiles(2)
	if err != nil {
		t.Fatalf("TopProfiles() failed: %v", err)
	}
	if len(top) != 2 || top[0].Player != "bob" || top[1].Player != "cid" {
		t.Errorf("Unexpected ranking: %+v", top)
	}
}

func TestProfilePersistsRunHighScore(t *testing.T) {
	store := openTestStore(t)
	profile := store.Profile("ana")
	profile.SaveHighScore(100)

	ch, err := registry.Get("cuza")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultRunnerConfig()
	e := runner.NewEngine(cfg, rand.New(rand.NewSource(1)), runner.Hooks{Profile: profile, Deaths: profile})
	w := e.NewWorld(ch)
	if w.Stats.HighScore != 100 {
		t.Fatalf("Expected high score loaded from store, got %d", w.Stats.HighScore)
	}

	// Run until an unsteered player is hit
	for i := 0; i < 100000 && w.Playing(); i++ {
		e.Step(w, runner.Intents{})
	}
	if w.Playing() {
		t.Fatal("Expected the run to end")
	}

	rec, err := store.ProfileRecord("ana")
	if err != nil {
		t.Fatal(err)
	}
	want := max(100, w.Stats.Score)
	if rec.HighScore != want {
		t.Errorf("Expected stored high score %d, got %d", want, rec.HighScore)
	}
	if rec.TotalCoins != w.Stats.Coins {
		t.Errorf("Expected total coins %d, got %d", w.Stats.Coins, rec.TotalCoins)
	}

	deaths, err := store.RecentDeaths("ana", 5)
	if err != nil {
		t.Fatalf("RecentDeaths() failed: %v", err)
	}
	if len(deaths) != 1 {
		t.Fatalf("Expected one death report, got %d", len(deaths))
	}
	if deaths[0].Character != "cuza" || deaths[0].Lane != 1 {
		t.Errorf("Unexpected death report: %+v", deaths[0])
	}
}
