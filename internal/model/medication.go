package model

import (
	"fmt"
	"strings"
)

// Medication is one scheduled medication instance for the day.
// Only Taken and Overdue change after creation.
type Medication struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Dosage  string `json:"dosage"`
	Time    string `json:"time"`
	Notes   string `json:"notes,omitempty"`
	Color   Color  `json:"color"`
	Taken   bool   `json:"taken"`
	Overdue bool   `json:"overdue"`
}

// Label is the "<name> <dosage>" string used in lists and the activity feed.
func (m Medication) Label() string {
	return strings.TrimSpace(m.Name + " " + m.Dosage)
}

// Status is the display state of a medication.
type Status uint8

const (
	Pending Status = iota
	Overdue
	Taken
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Overdue:
		return "overdue"
	case Taken:
		return "taken"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Color tags a medication for display grouping.
type Color uint8

const (
	Blue Color = iota
	Green
	Yellow
	Red
)

// Colors lists every Color in declaration order.
var Colors = []Color{Blue, Green, Yellow, Red}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := parseEnum("color", string(b), Colors)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// parseEnum matches s case-insensitively against the String form of each value.
func parseEnum[T fmt.Stringer](kind, s string, values []T) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range values {
		if v.String() == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}
