package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"worklog/internal/report"
	"worklog/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	dayItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dayItemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m *Model) emptyStateView() string {
	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		titleStyle.Render("Work Log")+"\n\n"+
			inactiveStyle.Render("The log has no entries."),
	)
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(80).Render("Work Log"))
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.dayListView(),
		"  ",
		m.dayDetailView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Navigate: Up/Down | Summary: s | Quit: q"))

	return sb.String()
}

func (m *Model) dayListView() string {
	var sb strings.Builder

	sb.WriteString("Days\n\n")

	for i, d := range m.Days {
		line := fmt.Sprintf("%s  %s", d.Date.Format("Mon 02 Jan"), report.FormatHM(d.Total))
		if i == m.SelectedIndex {
			sb.WriteString(dayItemSelectedStyle.Render(line))
		} else {
			sb.WriteString(dayItemStyle.Render(inactiveStyle.Render(line)))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Width(25).Height(15).Render(sb.String())
}

func (m *Model) dayDetailView() string {
	d := m.SelectedDay()
	if d == nil {
		return boxStyle.Width(45).Height(15).Render("Select a day")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Date: %s\n\n", d.Date.Format("Monday, 02 Jan 2006")))
	sb.WriteString(durationStyle.Render(report.FormatHM(d.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render("Sessions"))
	sb.WriteString("\n")

	entries := m.SelectedEntries()
	start := m.EntryScroll
	if start > len(entries) {
		start = len(entries)
	}
	shown := entries[start:]
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, e := range shown {
		sb.WriteString(m.formatEntry(e))
		sb.WriteString("\n")
	}

	return boxStyle.Width(45).Height(15).Render(sb.String())
}

func (m *Model) formatEntry(e session.Entry) string {
	span := timeStyle.Render(fmt.Sprintf("%s-%s",
		session.FormatClock(e.Start), session.FormatClock(e.End)))
	dur := report.FormatHM(e.Duration())
	notes := ""
	if len(e.Notes) > 0 {
		notes = " " + noteStyle.Render("["+strings.Join(e.Notes, "; ")+"]")
	}
	return fmt.Sprintf("  %s  %s%s", span, dur, notes)
}

func (m *Model) summaryView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(80).Render("Summary"))
	sb.WriteString("\n\n")

	sb.WriteString(report.RenderSummary(m.Report.Summarize(m.AsOf)))
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Weeks"))
	sb.WriteString("\n")
	sb.WriteString(m.weeklyLines())
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Payperiods"))
	sb.WriteString("\n")
	sb.WriteString(m.periodLines())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Back: s/Esc | Quit: q"))

	return boxStyle.Width(60).Render(sb.String())
}

func (m *Model) weeklyLines() string {
	keys := make([]report.WeekKey, 0, len(m.Report.Weekly))
	for k := range m.Report.Weekly {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Week < keys[j].Week
	})

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			timeStyle.Render(fmt.Sprintf("%d-W%02d", k.Year, k.Week)),
			report.FormatHours(m.Report.Weekly[k]),
		))
	}
	return sb.String()
}

func (m *Model) periodLines() string {
	starts := make([]time.Time, 0, len(m.Report.Periods))
	for s := range m.Report.Periods {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	var sb strings.Builder
	for _, s := range starts {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			timeStyle.Render(s.Format("02 Jan 2006")),
			report.FormatHours(m.Report.Periods[s]),
		))
	}
	return sb.String()
}
