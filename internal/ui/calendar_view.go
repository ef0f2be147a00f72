package ui

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/day"
)

const cellWidth = 4

func (m tuiModel) calendarView() string {
	a := m.app
	cal := a.Calendar
	th := m.theme
	gridWidth := 7 * cellWidth

	var b strings.Builder

	title := fmt.Sprintf("%s %d", cal.CurrentMonth, cal.CurrentYear)
	badge := ""
	if cal.Submode == calendar.Space {
		badge = th.AccentStyle().Bold(true).Render("SPACE")
	}
	b.WriteString(th.HeaderStyle().Render(title))
	if badge != "" {
		b.WriteString(th.base().Render(strings.Repeat(" ", max(gridWidth-len(title)-5, 1))))
		b.WriteString(badge)
	}
	b.WriteString("\n\n")

	headers := m.app.Options().WeekStart
	for _, h := range calendar.WeekdayHeaders(headers) {
		b.WriteString(th.MutedStyle().Render(fmt.Sprintf(" %2s ", h)))
	}
	b.WriteString("\n")

	today := a.Today()
	for _, week := range calendar.Grid(cal.CurrentYear, cal.CurrentMonth, headers) {
		for _, d := range week {
			if d.IsZero() {
				b.WriteString(th.base().Render(strings.Repeat(" ", cellWidth)))
				continue
			}
			style := th.DayStyle(d == cal.SelectedDate, d == today, a.Index.Has(d))
			b.WriteString(th.base().Render(" "))
			b.WriteString(style.Render(fmt.Sprintf("%2d", d.Day)))
			b.WriteString(th.base().Render(" "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.HeaderStyle().Render(longDate(cal.SelectedDate)))
	b.WriteString("\n")
	if a.Index.Has(cal.SelectedDate) {
		b.WriteString(th.AccentStyle().Render("● entry"))
	} else {
		b.WriteString(th.MutedStyle().Render("no entry"))
	}
	b.WriteString("\n")

	switch n := a.Index.CountInMonth(cal.CurrentYear, cal.CurrentMonth); n {
	case 0:
	case 1:
		b.WriteString(th.MutedStyle().Render("1 entry this month"))
		b.WriteString("\n")
	default:
		b.WriteString(th.MutedStyle().Render(fmt.Sprintf("%d entries this month", n)))
		b.WriteString("\n")
	}

	if n := a.Index.Streak(today); n > 0 {
		b.WriteString(th.AccentStyle().Render(fmt.Sprintf("%d day streak", n)))
		b.WriteString("\n")
	}

	if a.ConfirmDelete {
		b.WriteString("\n")
		b.WriteString(th.DangerStyle().Bold(true).Render(
			fmt.Sprintf("Delete entry for %s? [y/N]", cal.SelectedDate)))
	}
	return b.String()
}

func longDate(d day.Date) string {
	return d.Time().Format("Monday, January 2 2006")
}
