package tracker

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/healthtrack/internal/model"
)

// State is the mutable part of the dashboard.
type State struct {
	Medications []model.Medication
	Activity    []model.Activity
}

// Action is a user request against the medication list.
type Action interface {
	TargetID() int
	name() string
}

// MarkTakenAction records a dose.
type MarkTakenAction struct{ ID int }

// SkipAction and RescheduleAction are offered by the UI but change nothing.
type SkipAction struct{ ID int }

type RescheduleAction struct{ ID int }

func (a MarkTakenAction) TargetID() int  { return a.ID }
func (a SkipAction) TargetID() int       { return a.ID }
func (a RescheduleAction) TargetID() int { return a.ID }

func (MarkTakenAction) name() string  { return "mark_taken" }
func (SkipAction) name() string       { return "skip" }
func (RescheduleAction) name() string { return "reschedule" }

// Reduce computes the next state. s is never modified.
func Reduce(s State, a Action, now time.Time) State {
	switch a := a.(type) {
	case MarkTakenAction:
		before, ok := find(s.Medications, a.ID)
		if !ok || before.Taken {
			return s
		}
		next := State{Medications: MarkTaken(s.Medications, a.ID)}
		next.Activity = make([]model.Activity, 0, len(s.Activity)+1)
		next.Activity = append(next.Activity, model.Activity{
			ID:          uuid.New(),
			Kind:        model.MedicationTaken,
			Description: "Took " + before.Label(),
			At:          now,
		})
		next.Activity = append(next.Activity, s.Activity...)
		return next
	case SkipAction, RescheduleAction:
		return s
	}
	return s
}

// Store owns the dashboard state for one session. It is not safe for
// concurrent use; the TUI event loop is its only caller.
type Store struct {
	state State
	now   func() time.Time
	log   *slog.Logger
}

type StoreOption func(*Store)

// WithClock overrides time.Now for activity timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		state: initial,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) State() State { return s.state }

func (s *Store) Counts() Counts { return Aggregate(s.state.Medications) }

// Dispatch applies a and reports whether the medication list changed.
func (s *Store) Dispatch(a Action) bool {
	prev := s.state
	s.state = Reduce(prev, a, s.now())
	changed := len(s.state.Activity) != len(prev.Activity)
	s.log.Debug("dispatch", "action", a.name(), "id", a.TargetID(), "changed", changed)
	if changed {
		c := s.Counts()
		s.log.Info("medication marked taken", "id", a.TargetID(),
			"taken", c.Taken, "pending", c.Pending, "overdue", c.Overdue)
	}
	return changed
}
