package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/healthtrack/internal/model"
)

var titleCase = cases.Title(language.English)

// Label title-cases the String form of an enumeration value.
func Label(v fmt.Stringer) string { return titleCase.String(v.String()) }

func StatusBadge(s model.Status) string {
	st := statusStyle(s)
	return st.Render("[" + Label(s) + "]")
}

func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.Taken:
		return current.Success
	case model.Overdue:
		return current.Error
	case model.Pending:
		return current.Pending
	}
	return current.Muted
}

// StatusSymbol is the checklist box for a status.
func StatusSymbol(s model.Status) string {
	switch s {
	case model.Taken:
		return current.Success.Render(current.BoxChecked)
	case model.Overdue:
		return current.Error.Render(current.BoxUnchecked)
	case model.Pending:
		return current.Muted.Render(current.BoxUnchecked)
	}
	return current.BoxUnchecked
}

func ColorDot(c model.Color) string {
	var fg lipgloss.Color
	switch c {
	case model.Blue:
		fg = "12"
	case model.Green:
		fg = "10"
	case model.Yellow:
		fg = "11"
	case model.Red:
		fg = "9"
	}
	if current.Name == "mono" {
		return current.Dot
	}
	return lipgloss.NewStyle().Foreground(fg).Render(current.Dot)
}

func PriorityBadge(p model.Priority) string {
	var st lipgloss.Style
	switch p {
	case model.High:
		st = current.Error
	case model.Medium:
		st = current.Pending
	case model.Low:
		st = current.Success
	default:
		st = current.Muted
	}
	return st.Render(Label(p))
}

func ReminderIcon(k model.ReminderKind) string {
	switch k {
	case model.Appointment:
		return "◆"
	case model.MedicationDose:
		return "℞"
	case model.FollowUp:
		return "☎"
	case model.Therapy:
		return "✚"
	}
	return "◷"
}

func ActivityIcon(k model.ActivityKind) string {
	var icon string
	var st lipgloss.Style
	switch k {
	case model.MedicationTaken:
		icon, st = "℞", current.Success
	case model.AppointmentDone:
		icon, st = "◆", current.Accent
	case model.Measurement:
		icon, st = "♥", current.Error
	case model.ReminderSet:
		icon, st = "◷", current.Pending
	default:
		icon, st = "•", current.Muted
	}
	return st.Render(icon)
}
