package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/qsnake/internal/storage"
)

// maxScoreboardRows caps how many episodes the scoreboard loads.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the episode scoreboard.
type ScoreboardModel struct {
	stats    *storage.TrainingStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
}

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// NewScoreboardModel creates a scoreboard over the given episodes.
func NewScoreboardModel(entries []storage.EpisodeEntry, stats *storage.TrainingStats, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Steps", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Epsilon", Width: 8},
		{Title: "States", Width: 7},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Steps),
			strconv.Itoa(e.SnakeLen),
			fmt.Sprintf("%.3f", e.Epsilon),
			strconv.Itoa(e.States),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 6 // Title, stats line, help line, margins
	if tableHeight < 3 {
		tableHeight = 3
	}
	if tableHeight > len(rows)+1 {
		tableHeight = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return ScoreboardModel{
		stats: stats,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("qsnake - Top Episodes")

	statsLine := ""
	if m.stats != nil && m.stats.Episodes > 0 {
		statsLine = fmt.Sprintf(" Episodes: %d  Best: %d  Avg score: %.1f  Avg steps: %.1f",
			m.stats.Episodes, m.stats.HighScore, m.stats.AvgScore, m.stats.AvgSteps)
	}

	return title + "\n" + statsLine + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunScoreboard loads the top episodes and shows the interactive table.
func RunScoreboard(store *storage.Store, height int) error {
	entries, err := store.TopEpisodes(maxScoreboardRows)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	model := NewScoreboardModel(entries, stats, height)
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
