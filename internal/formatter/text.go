package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/desertthunder/encore/internal/models"
)

// FormatMinutes renders a minute count as "45m", "1h" or "1h 5m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours, mins := minutes/60, minutes%60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatClock renders elapsed time as m:ss for the practice timer.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// DaysUntil describes how far date is from now: "Past", "Today", "Tomorrow" or "N days".
// Partial days round up.
func DaysUntil(date, now time.Time) string {
	days := int(math.Ceil(date.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Past"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// StatsText renders the profile overview.
func StatsText(s models.ProfileStats) string {
	var b strings.Builder

	b.WriteString("Repertoire\n")
	fmt.Fprintf(&b, "  Songs:              %d\n", s.TotalSongs)
	fmt.Fprintf(&b, "  Performance-ready:  %d\n", s.ReadyCount)
	b.WriteString("Auditions\n")
	fmt.Fprintf(&b, "  Upcoming:           %d\n", s.UpcomingAuditions)
	fmt.Fprintf(&b, "  Booked:             %d\n", s.BookedCount)
	b.WriteString("Practice\n")
	fmt.Fprintf(&b, "  Sessions:           %d\n", s.TotalSessions)
	fmt.Fprintf(&b, "  Total time:         %s\n", FormatMinutes(s.TotalMinutes))
	fmt.Fprintf(&b, "  This week:          %d/%d (%.0f%%)\n", s.ThisWeek, s.WeeklyGoal, s.WeeklyRatio*100)
	fmt.Fprintf(&b, "  Streak:             %d %s\n", s.Streak, plural(s.Streak, "day", "days"))
	fmt.Fprintf(&b, "Favorite shows:       %d\n", s.FavoriteCount)

	return b.String()
}

// CalendarText renders a month grid (Sunday first) followed by each day's events.
//
// Days with events are marked "*", today is marked "<".
func CalendarText(m models.CalendarMonth, now time.Time) string {
	loc := m.Location
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	daysIn := first.AddDate(0, 1, -1).Day()

	fmt.Fprintf(&b, "%s %d\n", m.Month, m.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	today := -1
	if y, mo, d := now.In(loc).Date(); y == m.Year && mo == m.Month {
		today = d
	}

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))
	for day := 1; day <= daysIn; day++ {
		mark := " "
		switch {
		case day == today:
			mark = "<"
		case len(m.Days[day]) > 0:
			mark = "*"
		}
		fmt.Fprintf(&b, "%3d%s", day, mark)
		col++
		if col == 7 && day != daysIn {
			b.WriteString("\n")
			col = 0
		}
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%d %s · %d practice %s\n",
		m.AuditionCount, plural(m.AuditionCount, "audition", "auditions"),
		m.PracticeCount, plural(m.PracticeCount, "session", "sessions"))

	for _, day := range m.EventDays() {
		fmt.Fprintf(&b, "\n%s\n", time.Date(m.Year, m.Month, day, 0, 0, 0, 0, loc).Format("Mon Jan 2"))
		for _, ev := range m.Days[day] {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", ev.Kind, ev.Title, ev.Subtitle)
		}
	}

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
