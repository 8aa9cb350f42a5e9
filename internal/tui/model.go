// Package tui is an interactive browser over a parsed work log.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"worklog/internal/report"
	"worklog/internal/session"
)

type Model struct {
	Log    *session.Log
	Report *report.Report
	Days   []report.Day
	AsOf   time.Time

	SelectedIndex int
	ShowSummary   bool
	EntryScroll   int

	// entries grouped per day, in file order
	dayEntries map[time.Time][]session.Entry
}

func NewModel(log *session.Log, rep *report.Report, asOf time.Time) *Model {
	byDay := make(map[time.Time][]session.Entry)
	for _, e := range log.Entries {
		byDay[e.Date] = append(byDay[e.Date], e)
	}
	return &Model{
		Log:        log,
		Report:     rep,
		Days:       rep.Days(),
		AsOf:       asOf,
		dayEntries: byDay,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowSummary {
		return m.summaryView()
	}
	if len(m.Days) == 0 {
		return m.emptyStateView()
	}
	return m.mainView()
}

// SelectedDay returns the highlighted day, or nil when the log is empty.
func (m *Model) SelectedDay() *report.Day {
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Days) {
		return &m.Days[m.SelectedIndex]
	}
	return nil
}

// SelectedEntries returns the sessions recorded on the highlighted day.
func (m *Model) SelectedEntries() []session.Entry {
	d := m.SelectedDay()
	if d == nil {
		return nil
	}
	return m.dayEntries[d.Date]
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowSummary {
		return m.handleSummaryInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.SelectedIndex > 0 {
			m.SelectedIndex--
			m.EntryScroll = 0
		}
	case "down", "j":
		if m.SelectedIndex < len(m.Days)-1 {
			m.SelectedIndex++
			m.EntryScroll = 0
		}
	case "pgup":
		if m.EntryScroll > 0 {
			m.EntryScroll--
		}
	case "pgdown":
		maxScroll := len(m.SelectedEntries()) - 1
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.EntryScroll < maxScroll {
			m.EntryScroll++
		}
	case "s":
		m.ShowSummary = true
	}
	return m, nil
}

func (m *Model) handleSummaryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "s":
		m.ShowSummary = false
	}
	return m, nil
}
