package storage

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/neatza-runners/internal/games/runner"
)

// ObstacleRecord is the stored form of an obstacle in a death report.
type ObstacleRecord struct {
	Character string  `msgpack:"c"`
	Lane      int     `msgpack:"l"`
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Width     float64 `msgpack:"w"`
	Height    float64 `msgpack:"h"`
}

// DeathEntry is a stored death report.
type DeathEntry struct {
	ID        int64
	Player    string
	Character string
	Killer    string
	Lane      int
	Score     int
	Frame     int
	PlayerX   float64
	PlayerY   float64
	Jumping   bool
	Sliding   bool
	Obstacles []ObstacleRecord
	CreatedAt time.Time
}

// SaveDeath records a death report for the given player.
// The on-screen obstacles are stored as a msgpack blob.
func (s *Store) SaveDeath(player string, r runner.DeathReport) (int64, error) {
	obstacles := make([]ObstacleRecord, len(r.Obstacles))
	for i, o := range r.Obstacles {
		obstacles[i] = ObstacleRecord{
			Character: o.Character.ID,
			Lane:      o.Lane,
			X:         o.X,
			Y:         o.Y,
			Width:     o.Width,
			Height:    o.Height,
		}
	}
	blob, err := msgpack.Marshal(obstacles)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode obstacles: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO deaths
		 (player, character, killer, lane, score, frame, player_x, player_y, jumping, sliding, obstacles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player,
		r.Character,
		r.Killer.Character.ID,
		r.Killer.Lane,
		r.Score,
		r.Frame,
		r.Player.X,
		r.Player.Y,
		r.Player.Jumping,
		r.Player.Sliding,
		blob,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save death: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentDeaths retrieves the most recent death reports of a player,
// or of everybody when player is empty.
func (s *Store) RecentDeaths(player string, limit int) ([]DeathEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.Query(
		`SELECT id, player, character, killer, lane, score, frame,
		        player_x, player_y, jumping, sliding, obstacles, created_at
		 FROM deaths
		 WHERE ? = '' OR player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deaths: %w", err)
	}
	defer rows.Close()

	var entries []DeathEntry
	for rows.Next() {
		var e DeathEntry
		var blob []byte
		var createdAt any

		if err := rows.Scan(
			&e.ID,
			&e.Player,
			&e.Character,
			&e.Killer,
			&e.Lane,
			&e.Score,
			&e.Frame,
			&e.PlayerX,
			&e.PlayerY,
			&e.Jumping,
			&e.Sliding,
			&blob,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if len(blob) > 0 {
			if err := msgpack.Unmarshal(blob, &e.Obstacles); err != nil {
				return nil, fmt.Errorf("storage: cannot decode obstacles: %w", err)
			}
		}
		e.CreatedAt = parseTime(createdAt)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
