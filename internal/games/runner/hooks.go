package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Profile persists cross-run values. Implementations may fail; the
// simulation logs the error and keeps playing. Several sessions may
// share one profile, so SaveHighScore never lowers the stored value
// and coins are saved as the delta of a single run.
type Profile interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadTotalCoins() (int, error)
	AddCoins(delta int) error
}

// DeathSink receives a report for every run that ends in a collision.
type DeathSink interface {
	ReportDeath(r DeathReport)
}

// Hooks are the collaborators of an Engine. Nil fields are allowed.
type Hooks struct {
	Profile Profile
	Deaths  DeathSink
	Logger  *log.Logger
}

func (h Hooks) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.New(io.Discard)
}

// DeathReport describes the tick a run ended in.
type DeathReport struct {
	Frame     int
	Score     int
	Distance  float64
	Character string     // Player character ID
	Killer    Obstacle   // Obstacle that hit the player
	Player    Player     // Player state at impact
	Obstacles []Obstacle // Every obstacle on screen, killer included
}

// MemoryProfile keeps profile values in memory.
type MemoryProfile struct {
	HighScore  int
	TotalCoins int
	Saves      int   // Number of successful saves
	Err        error // Returned by every call when set
}

// LoadHighScore returns the stored high score.
func (m *MemoryProfile) LoadHighScore() (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.HighScore, nil
}

// SaveHighScore raises the stored high score to score.
func (m *MemoryProfile) SaveHighScore(score int) error {
	if m.Err != nil {
		return m.Err
	}
	if score > m.HighScore {
		m.HighScore = score
	}
	m.Saves++
	return nil
}

// LoadTotalCoins returns the stored coin total.
func (m *MemoryProfile) LoadTotalCoins() (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.TotalCoins, nil
}

// AddCoins adds the coins of one run to the stored total.
func (m *MemoryProfile) AddCoins(delta int) error {
	if m.Err != nil {
		return m.Err
	}
	m.TotalCoins += delta
	m.Saves++
	return nil
}

// LogSink writes death reports to a structured logger.
type LogSink struct {
	Logger *log.Logger
}

// ReportDeath logs the killer and player state, then one line per obstacle.
func (s LogSink) ReportDeath(r DeathReport) {
	if s.Logger == nil {
		return
	}
	p := r.Player
	s.Logger.Info("run ended",
		"character", r.Character,
		"killer", r.Killer.Character.ID,
		"lane", r.Killer.Lane,
		"obstacle", fmtBox(r.Killer.X, r.Killer.Y, r.Killer.Width, r.Killer.Height),
		"player", fmtBox(p.X, p.Y, p.Width, p.Height),
		"target_lane", p.TargetLane,
		"player_lane", p.Lane,
		"jumping", p.Jumping,
		"sliding", p.Sliding,
		"invincible", p.Invincible,
		"score", r.Score,
		"frame", r.Frame,
	)
	for i, o := range r.Obstacles {
		s.Logger.Debug("on screen",
			"index", i,
			"obstacle", o.Character.ID,
			"lane", o.Lane,
			"box", fmtBox(o.X, o.Y, o.Width, o.Height),
		)
	}
}

// MultiSink fans a report out to several sinks.
type MultiSink []DeathSink

// ReportDeath forwards the report to every non-nil sink.
func (m MultiSink) ReportDeath(r DeathReport) {
	for _, s := range m {
		if s != nil {
			s.ReportDeath(r)
		}
	}
}

func fmtBox(x, y, w, h float64) string {
	return fmt.Sprintf("x=%.1f y=%.1f w=%.0f h=%.0f", x, y, w, h)
}
