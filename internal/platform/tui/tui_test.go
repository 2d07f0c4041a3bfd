package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/registry"
	"github.com/vovakirdan/neatza-runners/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stubGame ends its run after a fixed number of steps.
type stubGame struct {
	ch      registry.Character
	steps   int
	endAt   int
	resets  int
	restart int
	state   core.GameState
}

func (g *stubGame) ID() string                    { return "stub" }
func (g *stubGame) Title() string                 { return "Stub" }
func (g *stubGame) Character() registry.Character { return g.ch }
func (g *stubGame) Render(dst *core.Screen)       { dst.Clear() }
func (g *stubGame) State() core.GameState         { return g.state }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.restart++
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score = g.steps * 10
	g.state.Coins = g.steps
	g.state.Distance = g.steps * 100
	if g.steps >= g.endAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.Player = "ana"
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyMapperGameKeys(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide, false},
		{runes("s"), core.ActionSlide, false},
		{runes("p"), core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestKeyMapperMenuKeys(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	ch, _ := registry.Get("cuza")
	game := &stubGame{ch: ch, endAt: 3}

	m := NewModel(game, store, testRuntime())
	m.Init()
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}

	if !m.State().GameOver {
		t.Fatal("Expected the run to be over")
	}
	runs, err := store.TopRuns("ana", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Score != 30 || runs[0].Coins != 3 || runs[0].Distance != 300 || runs[0].Character != "cuza" {
		t.Errorf("Unexpected run: %+v", runs[0])
	}
}

func TestModelEnterRestartsAfterGameOver(t *testing.T) {
	store := openStore(t)
	ch, _ := registry.Get("dani")
	game := &stubGame{ch: ch, endAt: 2}

	m := NewModel(game, store, testRuntime())
	m.Init()
	for i := 0; i < 3; i++ {
		m = step(t, m, TickMsg{})
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg{})
	if game.restart != 1 {
		t.Fatalf("Expected one restart, got %d", game.restart)
	}
	if m.State().GameOver {
		t.Error("Expected a fresh run after restart")
	}

	// The second run is saved too
	for i := 0; i < 3; i++ {
		m = step(t, m, TickMsg{})
	}
	runs, _ := store.TopRuns("ana", 10)
	if len(runs) != 2 {
		t.Errorf("Expected two saved runs, got %d", len(runs))
	}
}

func TestModelBackToMenu(t *testing.T) {
	ch, _ := registry.Get("dani")
	game := &stubGame{ch: ch, endAt: 1}

	m := NewModel(game, nil, testRuntime())
	m.embedded = true
	m.Init()

	// Back is ignored while running
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Back must not leave a running game")
	}

	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})
	m = step(t, m, runes("r"))
	if !m.BackToMenu() {
		t.Error("Expected R after game over to return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	ch, _ := registry.Get("dani")
	m := NewModel(&stubGame{ch: ch, endAt: 100}, nil, testRuntime())
	m = step(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Error("Expected q to quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(testRuntime(), "ristei")
	chars := registry.List()
	if chars[m.cursor].ID != "ristei" {
		t.Fatalf("Expected cursor on the last character, got %s", chars[m.cursor].ID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().ID != chars[(indexOf(chars, "ristei")+1)%len(chars)].ID {
		t.Errorf("Unexpected selection: %v", m.Selected())
	}
}

func TestMenuWrapsAround(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != len(registry.List())-1 {
		t.Errorf("Expected cursor to wrap to the last character, got %d", m.cursor)
	}
}

func indexOf(chars []registry.Character, id string) int {
	for i, ch := range chars {
		if ch.ID == id {
			return i
		}
	}
	return -1
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	store.Profile("ana").SaveHighScore(1234)

	m := NewSessionModel(store, config.DefaultRunnerConfig(), testRuntime(), log.New(io.Discard))
	if m.Screen() != "menu" {
		t.Fatalf("Expected to start on the menu, got %s", m.Screen())
	}
	if m.menu.highScore != 1234 {
		t.Errorf("Expected menu to show the stored high score, got %d", m.menu.highScore)
	}

	// Scoreboard and back
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Screen() != "scores" {
		t.Fatalf("Expected scoreboard, got %s", m.Screen())
	}
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Fatalf("Expected menu after back, got %s", m.Screen())
	}

	// Start a run
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "game" {
		t.Fatalf("Expected game, got %s", m.Screen())
	}
	m.game.Init()
	for i := 0; i < 10; i++ {
		m = sessionStep(t, m, TickMsg{})
	}
	if m.game.State().GameOver {
		t.Fatal("Run ended too early")
	}

	// Pause then back to the menu
	m = sessionStep(t, m, runes("p"))
	m = sessionStep(t, m, TickMsg{})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Fatalf("Expected menu after leaving a paused run, got %s", m.Screen())
	}

	m = sessionStep(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Error("Expected the session to quit")
	}
}

func TestSessionStartWith(t *testing.T) {
	ch, _ := registry.Get("bucatar")
	m := NewSessionModel(nil, config.DefaultRunnerConfig(), testRuntime(), nil).StartWith(ch)
	if m.Screen() != "game" {
		t.Fatalf("Expected to start in game, got %s", m.Screen())
	}
	if m.game.game.Character().ID != "bucatar" {
		t.Errorf("Unexpected character %s", m.game.game.Character().ID)
	}
}

func TestScoreboardBoards(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunEntry{Player: "ana", Character: "dani", Score: 40})
	store.SaveRun(storage.RunEntry{Player: "bob", Character: "cuza", Score: 90})
	store.Profile("ana").SaveHighScore(40)

	m := NewScoreboardModel(store, "ana", 100, 30)
	if m.Board() != BoardRuns || len(m.Rows()) != 2 {
		t.Fatalf("Expected 2 runs on the first board, got %d", len(m.Rows()))
	}
	if m.Rows()[0][1] != "bob" || m.Rows()[0][2] != "Cuza" {
		t.Errorf("Unexpected top row: %v", m.Rows()[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != BoardPlayers || len(m.Rows()) != 1 {
		t.Errorf("Expected one player, got %d rows on %s", len(m.Rows()), m.Board().Title())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Board() != BoardDeaths || len(m.Rows()) != 0 {
		t.Errorf("Expected no deaths, got %d", len(m.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Board() != BoardPlayers {
		t.Errorf("Expected shift+tab to go back, got %s", m.Board().Title())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ana", 60, 20)
	if len(m.Rows()) != 0 {
		t.Errorf("Expected no rows without a store")
	}
	if m.View() == "" {
		t.Error("Expected an empty-state view")
	}
}
