package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

// Menu layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the ruleset sidebar
	sidebarWidth       = 24 // Width of ruleset sidebar
)

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Quit    key.Binding
	ShowAll key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Select, k.ShowAll, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev level"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next level"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next ruleset"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev ruleset"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	rulesets    []registry.GameInfo
	ruleCursor  int
	levels      []levels.Level
	loadErr     error
	table       table.Model
	help        help.Model
	keys        MenuKeyMap
	config      core.RuntimeConfig
	width       int
	height      int
	quitting    bool
	chosen      bool
	showSidebar bool
}

// NewMenuModel creates a level picker over the built-in levels and the
// levels found in levelsDir.
func NewMenuModel(levelsDir string, cfg core.RuntimeConfig) MenuModel {
	lvls, err := levels.All(levelsDir)

	m := MenuModel{
		rulesets:    registry.List(),
		levels:      lvls,
		loadErr:     err,
		help:        help.New(),
		keys:        DefaultMenuKeyMap(),
		config:      cfg,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showSidebar: cfg.ScreenW >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 18},
		{Title: "BPM", Width: 5},
		{Title: "Length", Width: 8},
		{Title: "Spikes", Width: 7},
		{Title: "Difficulty", Width: 10},
		{Title: "Source", Width: 12},
	}

	tableWidth := m.width - 6
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 72; extra > 0 {
		columns[0].Width += min(extra, 14)
		columns[5].Width += max(extra-14, 0)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#00ffff")).
		Background(lipgloss.Color("#280a50")).
		Bold(true)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with one row per level.
func (m *MenuModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		bpm := "-"
		if l.BPM > 0 {
			bpm = fmt.Sprintf("%.0f", l.BPM)
		}
		rows[i] = table.Row{
			l.Name,
			bpm,
			fmt.Sprintf("%.0f", l.Length()),
			fmt.Sprintf("%d", len(l.Spikes)),
			l.Meta("difficulty"),
			l.Source(),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 && len(m.rulesets) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if len(m.rulesets) > 0 {
				m.ruleCursor = (m.ruleCursor + 1) % len(m.rulesets)
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.rulesets) > 0 {
				m.ruleCursor = (m.ruleCursor - 1 + len(m.rulesets)) % len(m.rulesets)
			}
			return m, nil

		case key.Matches(msg, m.keys.ShowAll):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff00c8"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("N E O N   P U L S E", m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderTable()))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar renders the ruleset list.
func (m MenuModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Ruleset\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, r := range m.rulesets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.ruleCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("#00ffff"))
		}
		sb.WriteString(style.Render(cursor + r.Title))
		sb.WriteString("\n")
	}
	return sidebarStyle.Render(sb.String())
}

// renderTabs renders the rulesets as a single line for narrow terminals.
func (m MenuModel) renderTabs() string {
	if len(m.rulesets) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s >", m.rulesets[m.ruleCursor].Title)
}

// renderTable renders the level table or an empty message.
func (m MenuModel) renderTable() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.levels) == 0 {
		msg := "No levels found."
		if m.loadErr != nil {
			msg = m.loadErr.Error()
		}
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return tableStyle.Render(emptyStyle.Render(msg))
	}
	return tableStyle.Render(m.table.View())
}

// Selection returns the chosen ruleset and level, ok is false if the user quit.
func (m MenuModel) Selection() (gameID, levelID string, ok bool) {
	if !m.chosen {
		return "", "", false
	}
	return m.rulesets[m.ruleCursor].ID, m.levels[m.table.Cursor()].ID, true
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
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID  string
	LevelID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(levelsDir string, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(levelsDir, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	gameID, levelID, chosen := m.Selection()
	if !chosen {
		result.Quit = true
		return result, nil
	}
	result.GameID = gameID
	result.LevelID = levelID
	return result, nil
}
