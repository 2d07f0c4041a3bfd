package storage

import (
	"testing"

	"github.com/vovakirdan/neatza-runners/internal/games/runner"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

func TestSaveAndReadDeaths(t *testing.T) {
	store := openTestStore(t)

	killer, _ := registry.Get("bucalae")
	other, _ := registry.Get("ristei")
	report := runner.DeathReport{
		Frame:     321,
		Score:     88,
		Distance:  880,
		Character: "dani",
		Killer:    runner.Obstacle{Character: killer, Lane: 2, X: 300, Y: 530, Width: 42, Height: 42},
		Player:    runner.Player{X: 299.5, Y: 540, TargetLane: 2, Lane: 2, Sliding: true},
		Obstacles: []runner.Obstacle{
			{Character: killer, Lane: 2, X: 300, Y: 530, Width: 42, Height: 42},
			{Character: other, Lane: 0, X: 100, Y: 120, Width: 45, Height: 45},
		},
	}

	if _, err := store.SaveDeath("ana", report); err != nil {
		t.Fatalf("SaveDeath() failed: %v", err)
	}
	if _, err := store.SaveDeath("bob", report); err != nil {
		t.Fatalf("SaveDeath() failed: %v", err)
	}

	deaths, err := store.RecentDeaths("ana", 10)
	if err != nil {
		t.Fatalf("RecentDeaths() failed: %v", err)
	}
	if len(deaths) != 1 {
		t.Fatalf("Expected 1 death for ana, got %d", len(deaths))
	}

	d := deaths[0]
	if d.Killer != "bucalae" || d.Lane != 2 || d.Score != 88 || d.Frame != 321 {
		t.Errorf("Unexpected death: %+v", d)
	}
	if !d.Sliding || d.Jumping {
		t.Errorf("Player state not stored: jumping=%v sliding=%v", d.Jumping, d.Sliding)
	}
	if len(d.Obstacles) != 2 || d.Obstacles[1].Character != "ristei" || d.Obstacles[1].Y != 120 {
		t.Errorf("Obstacles not stored: %+v", d.Obstacles)
	}

	all, err := store.RecentDeaths("", 10)
	if err != nil {
		t.Fatalf("RecentDeaths() failed: %v", err)
	}
	if len(all) != 2 || all[0].Player != "bob" {
		t.Errorf("Expected newest first across players, got %+v", all)
	}
}
