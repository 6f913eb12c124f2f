package model

import "fmt"

// QuickStat is one tile of the summary row.
type QuickStat struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
}

// Profile identifies whose dashboard this is.
type Profile struct {
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	Notifications int    `json:"notifications"`
}

// QuickAction is a shortcut button. None of them are wired to behavior.
type QuickAction uint8

const (
	ScheduleAppointment QuickAction = iota
	AddMedication
	LogHealthMetric
	ContactDoctor
)

var QuickActions = []QuickAction{ScheduleAppointment, AddMedication, LogHealthMetric, ContactDoctor}

func (a QuickAction) String() string {
	switch a {
	case ScheduleAppointment:
		return "Schedule Appointment"
	case AddMedication:
		return "Add Medication"
	case LogHealthMetric:
		return "Log Health Metric"
	case ContactDoctor:
		return "Contact Doctor"
	}
	return fmt.Sprintf("quickaction(%d)", uint8(a))
}

// Dashboard is everything the page renders.
type Dashboard struct {
	Profile     Profile      `json:"profile"`
	Stats       []QuickStat  `json:"stats"`
	Medications []Medication `json:"medications"`
	Reminders   []Reminder   `json:"reminders"`
	Activity    []Activity   `json:"activity"`
}
