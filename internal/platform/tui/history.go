package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/storage"
)

// maxHistory is how many past games the history table loads.
const maxHistory = 50

// historyView lists recent finished games in a scrollable table.
type historyView struct {
	results []storage.Result
	record  storage.Record
	table   table.Model
	width   int
	height  int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table sized to the current window.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Result", Width: 7},
		{Title: "Cause", Width: 11},
		{Title: "Turns", Width: 6},
		{Title: "Via", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, h.height-8)), // Leave room for title, record, help
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

// load refreshes the table from the store. A nil store shows an empty table.
func (h *historyView) load(store ResultStore) error {
	h.results = nil
	h.record = storage.Record{}
	defer h.updateTableRows()

	if store == nil {
		return nil
	}

	results, err := store.RecentResults(maxHistory)
	if err != nil {
		return err
	}
	rec, err := store.Record()
	if err != nil {
		return err
	}
	h.results = results
	h.record = rec
	return nil
}

// updateTableRows updates the table with the loaded results.
func (h *historyView) updateTableRows() {
	rows := make([]table.Row, len(h.results))
	for i, r := range h.results {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Outcome,
			strings.ReplaceAll(r.Cause, "_", " "),
			fmt.Sprintf("%d", r.Turns),
			r.Frontend,
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

func (h historyView) update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h historyView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HISTORY"), h.width))
	b.WriteString("\n")

	summary := fmt.Sprintf("Played %d  Won %d  Lost %d", h.record.Played, h.record.Won, h.record.Lost)
	if !h.record.LastPlayed.IsZero() {
		summary += "  Last " + h.record.LastPlayed.Format("Jan 02 15:04")
	}
	b.WriteString(centerText(summary, h.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(h.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		content = emptyStyle.Render("No games recorded yet.")
	} else {
		content = h.table.View()
	}

	for _, line := range strings.Split(tableStyle.Render(content), "\n") {
		b.WriteString(centerText(line, h.width))
		b.WriteString("\n")
	}
	return b.String()
}
