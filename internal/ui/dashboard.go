package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/healthtrack/internal/model"
	"github.com/Makepad-fr/healthtrack/internal/tracker"
)

const (
	AppName = "HealthTracker Pro"

	// StatMedicationsDue is the quick stat whose value follows the checklist.
	StatMedicationsDue = "Medications Due"
)

// Greeting picks the salutation from the hour of now.
func Greeting(p model.Profile, now time.Time) string {
	first := "there"
	if f := strings.Fields(p.Name); len(f) > 0 {
		first = f[0]
	}
	part := "evening"
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		part = "morning"
	case h >= 12 && h < 18:
		part = "afternoon"
	}
	return fmt.Sprintf("Good %s, %s!", part, first)
}

func Header(p model.Profile, width int) string {
	left := current.Accent.Render("♥") + " " + current.Title.Render(AppName)
	bell := "🔔 " + current.Error.Render(strconv.Itoa(p.Notifications))
	right := bell + "  " + current.Selected.Render(" "+p.Initials+" ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// DeriveStats replaces the medications-due value with the live count.
func DeriveStats(stats []model.QuickStat, c tracker.Counts) []model.QuickStat {
	out := make([]model.QuickStat, len(stats))
	copy(out, stats)
	for i := range out {
		if out[i].Title == StatMedicationsDue {
			out[i].Value = strconv.Itoa(c.Due())
		}
	}
	return out
}

func StatTiles(stats []model.QuickStat) string {
	tiles := make([]string, 0, len(stats))
	for _, s := range stats {
		lines := []string{
			current.Muted.Render(s.Title),
			current.Title.Render(s.Value),
			current.Muted.Render(s.Subtitle),
		}
		tiles = append(tiles, Panel("", lines, 26))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func ReminderLines(rs []model.Reminder) []string {
	if len(rs) == 0 {
		return []string{current.Muted.Render("(none)")}
	}
	var out []string
	for i, r := range rs {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, fmt.Sprintf("%s %s  %s", ReminderIcon(r.Kind), current.Title.Render(r.Title), PriorityBadge(r.Priority)))
		for _, extra := range []string{r.Doctor, r.Description} {
			if extra != "" {
				out = append(out, "  "+extra)
			}
		}
		out = append(out, "  "+current.Muted.Render("◷ "+r.Time))
		if r.Location != "" {
			out = append(out, "  "+current.Muted.Render("⌂ "+r.Location))
		}
	}
	return out
}

// MedicationLine is the one-line checklist form of an entry.
func MedicationLine(m model.Medication) string {
	s := tracker.Classify(m)
	name := m.Label()
	if s == model.Taken {
		name = current.Done.Render(name)
	}
	return fmt.Sprintf("%s %s %s  %s  %s", StatusSymbol(s), ColorDot(m.Color), name,
		current.Muted.Render(m.Time), StatusBadge(s))
}

func MedicationLines(meds []model.Medication) []string {
	if len(meds) == 0 {
		return []string{current.Muted.Render("no medications")}
	}
	out := make([]string, 0, len(meds)*2)
	for _, m := range meds {
		out = append(out, fmt.Sprintf("%s %s", current.Muted.Render(fmt.Sprintf("%2d.", m.ID)), MedicationLine(m)))
		if m.Notes != "" {
			out = append(out, "    "+current.Muted.Render(m.Notes))
		}
		if tracker.Classify(m) == model.Overdue {
			out = append(out, "    "+current.Error.Render("This medication is overdue"))
		}
	}
	return out
}

// CountsLines is the footer under the checklist.
func CountsLines(c tracker.Counts) []string {
	return []string{
		ProgressBar(c.Taken, c.Total(), 24),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			current.Success.Render("Taken"), c.Taken,
			current.Pending.Render("Pending"), c.Pending,
			current.Error.Render("Overdue"), c.Overdue),
	}
}

func ActivityLines(acts []model.Activity, now time.Time) []string {
	if len(acts) == 0 {
		return []string{current.Muted.Render("no recent activity")}
	}
	out := make([]string, 0, len(acts))
	for _, a := range acts {
		out = append(out, fmt.Sprintf("%s %s %s", ActivityIcon(a.Kind), a.Description,
			current.Muted.Render("· "+model.Ago(a.At, now))))
	}
	return out
}

func QuickActionLines() []string {
	out := make([]string, 0, len(model.QuickActions))
	for _, a := range model.QuickActions {
		out = append(out, current.Accent.Render("›")+" "+a.String())
	}
	return out
}

// RenderDashboard draws the whole page once, for non-interactive output.
func RenderDashboard(d model.Dashboard, now time.Time) string {
	c := tracker.Aggregate(d.Medications)

	meds := append(MedicationLines(d.Medications), "")
	meds = append(meds, CountsLines(c)...)

	left := lipgloss.JoinVertical(lipgloss.Left,
		Panel("Upcoming Reminders", ReminderLines(d.Reminders), 60),
		Panel("Today's Medications", meds, 60),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		Panel("Recent Activity", ActivityLines(d.Activity, now), 50),
		Panel("Quick Actions", QuickActionLines(), 50),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		Header(d.Profile, 110),
		"",
		current.Title.Render(Greeting(d.Profile, now)),
		current.Muted.Render("Here's your health overview for today"),
		"",
		StatTiles(DeriveStats(d.Stats, c)),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
	)
}
