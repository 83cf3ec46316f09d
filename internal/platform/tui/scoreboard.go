package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dn2sim/internal/storage"
)

const (
	sidebarMinWidth = 80
	sidebarWidth    = 20
	maxScores       = 100
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LevelTab is one entry of the scoreboard level list.
type LevelTab struct {
	ID   string
	Name string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// The first tab lists runs across all levels.
type ScoreboardModel struct {
	tabs        []LevelTab
	cursor      int
	store       *storage.Store
	scores      []storage.ScoreEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, levels []LevelTab, width, height int) ScoreboardModel {
	tabs := append([]LevelTab{{ID: "", Name: "All levels"}}, levels...)

	m := ScoreboardModel{
		tabs:        tabs,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= sidebarMinWidth,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Level", Width: 8},
		{Title: "Score", Width: 8},
		{Title: "Frames", Width: 8},
		{Title: "Date", Width: 13},
	}

	h := m.height - 8
	if h < 3 {
		h = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	st.Selected = st.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(st)

	return t
}

func (m *ScoreboardModel) loadScores() {
	m.scores, m.loadErr = nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(m.tabs[m.cursor].ID, maxScores)
	}
	m.table.SetRows(ScoreRows(m.scores))
	m.table.GotoTop()
}

// ScoreRows formats score entries as table rows, ranked in order.
func ScoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.LevelID,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Frames),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.tabs) - 1
			}
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= sidebarMinWidth
		m.table = m.createTable()
		m.table.SetRows(ScoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	tab := m.tabs[m.cursor]
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Width(sidebarWidth).Render(m.levelList()), "  ", boxStyle.Render(m.scoreTable()))
	} else {
		body = centerText("< "+tab.Name+" >", m.width) + "\n\n" + boxStyle.Render(m.scoreTable())
	}

	return strings.Join([]string{
		highlightStyle.Render(centerText("HIGH SCORES - "+tab.Name, m.width)),
		"",
		body,
		dimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) levelList() string {
	lines := []string{"Levels", strings.Repeat("-", sidebarWidth-4)}
	for i, t := range m.tabs {
		name := truncate(t.Name, sidebarWidth-6)
		if i == m.cursor {
			lines = append(lines, highlightStyle.Render("> "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) scoreTable() string {
	empty := dimStyle.Italic(true).Padding(2, 4)
	if m.loadErr != nil {
		return empty.Render("Could not read scores:\n" + m.loadErr.Error())
	}
	if len(m.scores) == 0 {
		return empty.Render("No runs recorded yet.\nUse `dn2sim run` or `dn2sim view`.")
	}
	return m.table.View()
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, levels []LevelTab, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, levels, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
