// Package tracker holds the medication status rules and the state container
// the dashboard views read from.
package tracker

import "github.com/Makepad-fr/healthtrack/internal/model"

// Counts is the per-status tally shown under the checklist.
type Counts struct {
	Taken   int
	Pending int
	Overdue int
}

func (c Counts) Total() int { return c.Taken + c.Pending + c.Overdue }

// Due is what is still left to take today.
func (c Counts) Due() int { return c.Pending + c.Overdue }

// Classify maps an entry to its display status. Taken wins over Overdue.
func Classify(m model.Medication) model.Status {
	switch {
	case m.Taken:
		return model.Taken
	case m.Overdue:
		return model.Overdue
	default:
		return model.Pending
	}
}

// MarkTaken returns a copy of meds where the entry with the given id is taken
// and no longer overdue. An unknown id leaves the copy equal to meds.
func MarkTaken(meds []model.Medication, id int) []model.Medication {
	out := make([]model.Medication, len(meds))
	copy(out, meds)
	for i := range out {
		if out[i].ID == id {
			out[i].Taken = true
			out[i].Overdue = false
		}
	}
	return out
}

func Aggregate(meds []model.Medication) Counts {
	var c Counts
	for _, m := range meds {
		switch Classify(m) {
		case model.Taken:
			c.Taken++
		case model.Overdue:
			c.Overdue++
		case model.Pending:
			c.Pending++
		}
	}
	return c
}

func find(meds []model.Medication, id int) (model.Medication, bool) {
	for _, m := range meds {
		if m.ID == id {
			return m, true
		}
	}
	return model.Medication{}, false
}
