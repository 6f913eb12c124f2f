package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Kind        ActivityKind `json:"type"`
	Description string       `json:"description"`
	At          time.Time    `json:"at"`
}

type ActivityKind uint8

const (
	MedicationTaken ActivityKind = iota
	AppointmentDone
	Measurement
	ReminderSet
)

var ActivityKinds = []ActivityKind{MedicationTaken, AppointmentDone, Measurement, ReminderSet}

func (k ActivityKind) String() string {
	switch k {
	case MedicationTaken:
		return "medication"
	case AppointmentDone:
		return "appointment"
	case Measurement:
		return "measurement"
	case ReminderSet:
		return "reminder"
	}
	return fmt.Sprintf("activitykind(%d)", uint8(k))
}

func (k ActivityKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ActivityKind) UnmarshalText(b []byte) error {
	v, err := parseEnum("activity type", string(b), ActivityKinds)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Ago renders the distance between at and now the way the feed shows it.
func Ago(at, now time.Time) string {
	d := now.Sub(at)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	}
	return plural(int(d/(24*time.Hour)), "day") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
