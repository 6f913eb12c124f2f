package tracker

import (
	"reflect"
	"testing"
	"time"

	"github.com/Makepad-fr/healthtrack/internal/model"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestReduceMarkTakenAddsActivity(t *testing.T) {
	s := State{Medications: sampleMeds()}
	next := Reduce(s, MarkTakenAction{ID: 4}, fixedNow)

	if Classify(next.Medications[3]) != model.Taken {
		t.Fatalf("entry 4 status = %s, want taken", Classify(next.Medications[3]))
	}
	if len(next.Activity) != 1 {
		t.Fatalf("activity len = %d, want 1", len(next.Activity))
	}
	a := next.Activity[0]
	if a.Description != "Took Vitamin D3 1000 IU" {
		t.Errorf("description = %q", a.Description)
	}
	if a.Kind != model.MedicationTaken || !a.At.Equal(fixedNow) {
		t.Errorf("activity = %+v", a)
	}
	if len(s.Activity) != 0 || s.Medications[3].Taken {
		t.Errorf("input state was modified")
	}
}

func TestReduceNoOps(t *testing.T) {
	s := State{Medications: sampleMeds()}
	actions := []Action{
		SkipAction{ID: 2},
		RescheduleAction{ID: 2},
		MarkTakenAction{ID: 99},
		// already taken: no second activity entry
		MarkTakenAction{ID: 1},
	}
	for _, a := range actions {
		next := Reduce(s, a, fixedNow)
		if !reflect.DeepEqual(next, s) {
			t.Errorf("%T changed state: %+v", a, next)
		}
	}
}

func TestStoreDispatch(t *testing.T) {
	st := NewStore(State{Medications: sampleMeds()}, WithClock(func() time.Time { return fixedNow }))

	if st.Dispatch(SkipAction{ID: 2}) {
		t.Error("skip reported a change")
	}
	if !st.Dispatch(MarkTakenAction{ID: 2}) {
		t.Error("mark taken reported no change")
	}
	if st.Dispatch(MarkTakenAction{ID: 2}) {
		t.Error("second mark taken reported a change")
	}
	if got, want := st.Counts(), (Counts{Taken: 2, Pending: 1, Overdue: 1}); got != want {
		t.Errorf("Counts = %+v, want %+v", got, want)
	}
	if n := len(st.State().Activity); n != 1 {
		t.Errorf("activity len = %d, want 1", n)
	}
}
