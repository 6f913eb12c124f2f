package model

import "fmt"

// Reminder is an upcoming appointment, dose or follow-up shown on the dashboard.
type Reminder struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Doctor      string       `json:"doctor,omitempty"`
	Description string       `json:"description,omitempty"`
	Time        string       `json:"time"`
	Location    string       `json:"location,omitempty"`
	Kind        ReminderKind `json:"type"`
	Priority    Priority     `json:"priority"`
}

type ReminderKind uint8

const (
	Appointment ReminderKind = iota
	MedicationDose
	FollowUp
	Therapy
)

var ReminderKinds = []ReminderKind{Appointment, MedicationDose, FollowUp, Therapy}

func (k ReminderKind) String() string {
	switch k {
	case Appointment:
		return "appointment"
	case MedicationDose:
		return "medication"
	case FollowUp:
		return "followup"
	case Therapy:
		return "therapy"
	}
	return fmt.Sprintf("reminderkind(%d)", uint8(k))
}

func (k ReminderKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ReminderKind) UnmarshalText(b []byte) error {
	v, err := parseEnum("reminder type", string(b), ReminderKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type Priority uint8

const (
	High Priority = iota
	Medium
	Low
)

var Priorities = []Priority{High, Medium, Low}

func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	}
	return fmt.Sprintf("priority(%d)", uint8(p))
}

func (p Priority) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := parseEnum("priority", string(b), Priorities)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
