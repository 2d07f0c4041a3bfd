package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/games/runner"
	"github.com/vovakirdan/neatza-runners/internal/registry"
	"github.com/vovakirdan/neatza-runners/internal/storage"
)

// NewGame builds a run for the player with persistence wired in.
// Without a store the run keeps its high score in memory only.
func NewGame(cfg config.RunnerConfig, ch registry.Character, store *storage.Store, player string, logger *log.Logger) *runner.Game {
	hooks := runner.Hooks{Logger: logger}
	sinks := runner.MultiSink{runner.LogSink{Logger: logger}}
	if store != nil {
		profile := store.Profile(player)
		hooks.Profile = profile
		sinks = append(sinks, profile)
	} else {
		hooks.Profile = &runner.MemoryProfile{}
	}
	hooks.Deaths = sinks
	return runner.New(cfg, ch, hooks)
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player:
// character select -> run -> character select, with the scoreboard on Tab.
// It is used for local play and for every SSH session.
type SessionModel struct {
	store     *storage.Store
	runnerCfg config.RunnerConfig
	config    core.RuntimeConfig
	logger    *log.Logger
	last      string // Last chosen character ID
	screen    screen
	menu      MenuModel
	game      *Model
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a session that starts on the character select.
func NewSessionModel(store *storage.Store, runnerCfg config.RunnerConfig, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m := SessionModel{
		store:     store,
		runnerCfg: runnerCfg,
		config:    cfg,
		logger:    logger,
	}
	m.menu = m.newMenu()
	return m
}

// StartWith makes the session skip the character select for its first run.
func (m SessionModel) StartWith(ch registry.Character) SessionModel {
	m.last = ch.ID
	m.startGame(ch)
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.config, m.last)
	menu.embedded = true
	if m.store != nil {
		if rec, err := m.store.ProfileRecord(m.config.Player); err == nil {
			menu = menu.WithProfile(rec.HighScore, rec.TotalCoins)
		} else {
			m.logger.Warn("could not load profile", "player", m.config.Player, "error", err)
		}
	}
	return menu
}

func (m *SessionModel) startGame(ch registry.Character) {
	game := NewGame(m.runnerCfg, ch, m.store, m.config.Player, m.logger)
	model := NewModel(game, m.store, m.config)
	model.embedded = true
	m.game = &model
	m.screen = screenGame
	m.logger.Debug("run started", "player", m.config.Player, "character", ch.ID, "seed", m.config.Seed)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates on the character select.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		ch := *m.menu.Selected()
		m.last = ch.ID
		m.config.Seed++ // Every run from the menu gets a fresh seed
		m.startGame(ch)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a run is on screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// IsQuitting returns true if the player left the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Screen reports which screen is shown: "menu", "game" or "scores".
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// RunSession runs a local session until the player quits.
func RunSession(model SessionModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
