package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
)

// FormatHours renders a duration as fractional hours, e.g. "3.50".
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Hours())
}

// FormatHM renders a duration as "HH:MM".
func FormatHM(d time.Duration) string {
	mins := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// RenderSummary renders the headline report as styled lines.
func RenderSummary(s Summary) string {
	var sb strings.Builder
	writeBucket(&sb, "today", s.Today)
	writeBucket(&sb, "this week", s.ThisWeek)
	writeBucket(&sb, "last week", s.LastWeek)
	writeBucket(&sb, "this payperiod", s.ThisPeriod)
	writeBucket(&sb, "last payperiod", s.LastPeriod)
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("total hours:"),
		totalStyle.Render(FormatHours(s.Total)),
	))
	return sb.String()
}

func writeBucket(sb *strings.Builder, name string, b Bucket) {
	if !b.Recorded {
		sb.WriteString(emptyStyle.Render("no hours " + name))
		sb.WriteString("\n")
		return
	}
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("hours "+name+":"),
		valueStyle.Render(FormatHours(b.Total)),
	))
}

// RenderDaily renders one "YYYY/MM/DD: HH:MM" line per recorded day.
func RenderDaily(days []Day) string {
	var sb strings.Builder
	for _, d := range days {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			dateStyle.Render(d.Date.Format("2006/01/02")),
			FormatHM(d.Total),
		))
	}
	return sb.String()
}
