package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/registry"
)

// MenuModel is the character select screen shown before every run.
type MenuModel struct {
	characters     []registry.Character
	cursor         int
	width          int
	height         int
	highScore      int
	totalCoins     int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	embedded       bool // Owned by a session; never quits the program itself
	quitting       bool
	selected       *registry.Character // Set when user picks a character
	openScoreboard bool                // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a character select with the cursor on the
// previously chosen character, if any.
func NewMenuModel(cfg core.RuntimeConfig, last string) MenuModel {
	chars := registry.List()
	cursor := 0
	for i, ch := range chars {
		if ch.ID == last {
			cursor = i
		}
	}

	return MenuModel{
		characters: chars,
		cursor:     cursor,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// WithProfile shows the player's stored progress on the screen.
func (m MenuModel) WithProfile(highScore, totalCoins int) MenuModel {
	m.highScore = highScore
	m.totalCoins = totalCoins
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, m.exit()

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.characters)) % len(m.characters)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.characters)

	case MenuActionSelect:
		if len(m.characters) > 0 {
			selected := m.characters[m.cursor]
			m.selected = &selected
			return m, m.exit() // Exit menu to start the run
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.exit()
	}

	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerBlock(titleStyle.Render("N E A T Z A   R U N N E R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your runner", m.width))
	b.WriteString("\n\n")

	for i, ch := range m.characters {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Hex))
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true)
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, ch.FullName, ch.Trait)
		b.WriteString(centerBlock(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if len(m.characters) > 0 {
		ch := m.characters[m.cursor]
		b.WriteString("\n")
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ch.Hex)).
			Padding(0, 2).
			Render(fmt.Sprintf("%s\nSpecial: %s\n%s", ch.FullName, ch.Special, ch.SpecialDesc))
		b.WriteString(centerBlock(card, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d  |  Coins: %d", m.highScore, m.totalCoins), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Choose  |  Enter: Run  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen character, or nil if none selected.
func (m MenuModel) Selected() *registry.Character {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers styled or multi-line text as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
