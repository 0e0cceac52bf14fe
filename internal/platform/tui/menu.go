package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickwords/internal/config"
	"github.com/vovakirdan/brickwords/internal/core"
	"github.com/vovakirdan/brickwords/internal/registry"
	"github.com/vovakirdan/brickwords/internal/storage"
)

// difficulties is the cycle shown in the menu. The empty preset keeps the
// fall interval from the config file.
var difficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// difficultyLabel returns the menu label for a preset.
func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "Config"
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// menuKeyMap is only used to render the help line; input goes through
// KeyMapper.MapKeyToMenuAction.
type menuKeyMap struct {
	Navigate   key.Binding
	Difficulty key.Binding
	Select     key.Binding
	Scores     key.Binding
	Quit       key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Difficulty, k.Select, k.Scores, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Navigate:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "mode")),
		Difficulty: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "difficulty")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Scores:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	keys           menuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The store is optional and only
// used to show each mode's high score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil {
				item.HighScore = hs
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      defaultMenuKeyMap(),
		help:      help.New(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K W O R D S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("spell words with falling letters"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-26s best %d", item.Title, item.HighScore)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-26s best %d", item.Title, item.HighScore))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", difficultyLabel(m.Difficulty()))
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the preset currently shown in the menu.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
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

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: preset, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
