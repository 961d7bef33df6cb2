package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxScores is the number of runs the scoreboard loads.
const maxScores = 20

// Scoreboard shows the session leaderboard as a scrollable table.
type Scoreboard struct {
	store *storage.Store
	runs  []storage.Run
	table table.Model
	err   error
}

// NewScoreboard creates a scoreboard over store. A nil store shows an empty board.
func NewScoreboard(store *storage.Store, height int) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Ended", Width: 10},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 5)), // Leave room for title, help and margins
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

	return Scoreboard{store: store, table: t}
}

// Refresh reloads the runs from the store.
func (b *Scoreboard) Refresh() {
	b.runs, b.err = nil, nil
	if b.store != nil {
		b.runs, b.err = b.store.TopRuns(maxScores)
	}

	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Runs returns the runs currently displayed.
func (b Scoreboard) Runs() []storage.Run {
	return b.runs
}

// Update passes scrolling keys to the table.
func (b Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View renders the scoreboard.
func (b Scoreboard) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case b.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render("Could not load scores: " + b.err.Error())
	case len(b.runs) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No runs finished yet.\nScores last until the server stops.")
	default:
		content = b.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("HIGH SCORES"),
		boxStyle.Render(content),
	)
}
