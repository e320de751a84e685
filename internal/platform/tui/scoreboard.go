package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

const recentLimit = 50

// Scoreboard views.
const (
	viewLedger = iota
	viewRecent
	viewCount
)

var viewTitles = [viewCount]string{"Expert High Scores", "Recent Games"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
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
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the Expert ledger, recent games and per-difficulty
// stats.
type ScoreboardModel struct {
	opts    GameOptions
	view    int
	ledger  []highscore.Entry
	recent  []storage.Result
	stats   []*storage.Stats
	loadErr error

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads its data.
func NewScoreboardModel(opts GameOptions, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		opts:   opts,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads everything the views show.
func (m *ScoreboardModel) load() {
	m.loadErr = nil

	switch l := m.opts.Ledger.(type) {
	case *highscore.Ledger:
		m.ledger = l.Entries()
	default:
		m.ledger = highscore.DefaultLedger().Entries()
	}

	if m.opts.Store == nil {
		return
	}
	entries, err := m.opts.Store.Board(highscore.ExpertBoard).Entries()
	if err != nil {
		m.loadErr = err
		return
	}
	m.ledger = entries

	if m.recent, err = m.opts.Store.RecentResults(recentLimit); err != nil {
		m.loadErr = err
		return
	}

	m.stats = m.stats[:0]
	for _, p := range engine.Presets() {
		st, err := m.opts.Store.Stats(p.Name)
		if err != nil {
			m.loadErr = err
			return
		}
		m.stats = append(m.stats, st)
	}
}

// createTable creates a table with the columns of the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewLedger:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: highscore.MaxNameLength},
			{Title: "Score", Width: 10},
			{Title: "Time", Width: 9},
			{Title: "Clicks", Width: 7},
		}
	case viewRecent:
		columns = []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Board", Width: 13},
			{Title: "Player", Width: highscore.MaxNameLength},
			{Title: "Result", Width: 7},
			{Title: "Time", Width: 9},
			{Title: "Score", Width: 10},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 5)), // header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewLedger:
		rows = make([]table.Row, len(m.ledger))
		for i, e := range m.ledger {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				e.Name,
				fmt.Sprintf("%d", e.Score),
				fmt.Sprintf("%.1fs", e.Time),
				fmt.Sprintf("%d", e.Clicks),
			}
		}
	case viewRecent:
		rows = make([]table.Row, len(m.recent))
		for i, r := range m.recent {
			result := "lost"
			if r.Won {
				result = "won"
			}
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Difficulty,
				r.Player,
				result,
				fmt.Sprintf("%.1fs", r.Time),
				fmt.Sprintf("%d", r.Score),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchView(delta int) {
	m.view = (m.view + delta + viewCount) % viewCount
	m.table = m.createTable()
	m.updateTableRows()
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

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.switchView(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(viewTitles[m.view])), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, viewCount)
	for i, t := range viewTitles {
		if i == m.view {
			tabs[i] = menuSelectedStyle.Padding(0, 1).Render(t)
		} else {
			tabs[i] = menuDimStyle.Render(" " + t + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(menuDimStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanation when it is empty.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.view == viewRecent && m.opts.Store == nil:
		return emptyStyle.Render("No database, games are not recorded.")
	case m.view == viewRecent && len(m.recent) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// statsLine summarises wins per preset.
func (m ScoreboardModel) statsLine() string {
	parts := make([]string, 0, len(m.stats))
	for _, st := range m.stats {
		if st.Games == 0 {
			continue
		}
		part := fmt.Sprintf("%s %d/%d won", st.Difficulty, st.Wins, st.Games)
		if st.Wins > 0 {
			part += fmt.Sprintf(", best %.1fs", st.BestTime)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "  |  ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
