package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/tui-breakout/internal/storage"
)

// maxScores is how many entries the scoreboard loads.
const maxScores = 100

// scoreboardKeyMap defines the key bindings for the scoreboard view.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultScoreboardKeyMap() scoreboardKeyMap {
	return scoreboardKeyMap{
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

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	scoreboardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// scoreboardModel is the Bubble Tea model for browsing recorded scores.
type scoreboardModel struct {
	profile string
	table   table.Model
	keys    scoreboardKeyMap
	best    int
}

func newScoreboardModel(store *storage.Store, profile string) (scoreboardModel, error) {
	entries, err := store.TopScores(profile, maxScores)
	if err != nil {
		return scoreboardModel{}, err
	}

	best, err := store.HighScore(profile)
	if err != nil {
		return scoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return scoreboardModel{
		profile: profile,
		table:   t,
		keys:    defaultScoreboardKeyMap(),
		best:    best,
	}, nil
}

func (m scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m scoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m scoreboardModel) View() string {
	title := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores — %s", m.profile))
	footer := scoreboardHelpStyle.Render(fmt.Sprintf("best: %d   up/k down/j scroll, q quit", m.best))
	return title + "\n\n" + m.table.View() + "\n" + footer + "\n"
}

// RunScores starts an interactive scoreboard for the given profile.
func RunScores(store *storage.Store, profile string) error {
	model, err := newScoreboardModel(store, profile)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
