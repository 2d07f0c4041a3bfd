package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neatza-runners/internal/games/runner"
)

// ProfileRecord is the persisted cross-run state of a player.
type ProfileRecord struct {
	Player     string
	HighScore  int
	TotalCoins int
	UpdatedAt  time.Time
}

// Profile is a player's view of the store. It implements runner.Profile and
// runner.DeathSink so a run can persist without knowing about SQLite.
type Profile struct {
	store  *Store
	player string
}

// Profile returns the profile of the given player.
func (s *Store) Profile(player string) *Profile {
	return &Profile{store: s, player: player}
}

// Player returns the profile name.
func (p *Profile) Player() string {
	return p.player
}

// LoadHighScore returns the player's high score, 0 for a new player.
func (p *Profile) LoadHighScore() (int, error) {
	rec, err := p.store.ProfileRecord(p.player)
	if err != nil {
		return 0, err
	}
	return rec.HighScore, nil
}

// SaveHighScore raises the stored high score to score. A lower score
// leaves the row unchanged, so concurrent sessions never lose a best.
func (p *Profile) SaveHighScore(score int) error {
	_, err := p.store.db.Exec(
		`INSERT INTO profiles (player, high_score) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET high_score = MAX(profiles.high_score, excluded.high_score), updated_at = CURRENT_TIMESTAMP`,
		p.player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// LoadTotalCoins returns the player's coin total, 0 for a new player.
func (p *Profile) LoadTotalCoins() (int, error) {
	rec, err := p.store.ProfileRecord(p.player)
	if err != nil {
		return 0, err
	}
	return rec.TotalCoins, nil
}

// AddCoins adds the coins of one run to the stored total.
func (p *Profile) AddCoins(delta int) error {
	_, err := p.store.db.Exec(
		`INSERT INTO profiles (player, total_coins) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET total_coins = profiles.total_coins + excluded.total_coins, updated_at = CURRENT_TIMESTAMP`,
		p.player, delta,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save total coins: %w", err)
	}
	return nil
}

// ReportDeath persists a death report under the profile's player.
// Failures are dropped, a report is diagnostic only.
func (p *Profile) ReportDeath(r runner.DeathReport) {
	//nolint:errcheck // Best-effort save, game continues regardless
	p.store.SaveDeath(p.player, r)
}

// ProfileRecord returns the stored profile of a player.
// Unknown players get an empty record.
func (s *Store) ProfileRecord(player string) (ProfileRecord, error) {
	rec := ProfileRecord{Player: player}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT high_score, total_coins, updated_at FROM profiles WHERE player = ?",
		player,
	).Scan(&rec.HighScore, &rec.TotalCoins, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	rec.UpdatedAt = parseTime(updatedAt)
	return rec, nil
}

// TopProfiles returns the players with the best high scores.
func (s *Store) TopProfiles(limit int) ([]ProfileRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT player, high_score, total_coins, updated_at
		 FROM profiles
		 ORDER BY high_score DESC, player ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var records []ProfileRecord
	for rows.Next() {
		var rec ProfileRecord
		var updatedAt any
		if err := rows.Scan(&rec.Player, &rec.HighScore, &rec.TotalCoins, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.UpdatedAt = parseTime(updatedAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Ensure Profile implements the runner hooks
var (
	_ runner.Profile   = (*Profile)(nil)
	_ runner.DeathSink = (*Profile)(nil)
)
