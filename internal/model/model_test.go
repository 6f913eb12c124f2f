package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAgo(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{2 * time.Hour, "2 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		if got := Ago(now.Add(-tt.d), now); got != tt.want {
			t.Errorf("Ago(-%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestMedicationJSON(t *testing.T) {
	var m Medication
	err := json.Unmarshal([]byte(`{"id":2,"name":"Metformin","dosage":"500mg","color":" Green "}`), &m)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Color != Green || m.Label() != "Metformin 500mg" {
		t.Errorf("medication = %+v", m)
	}

	b, err := json.Marshal(Medication{ID: 1, Name: "A", Color: Yellow})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"color":"yellow"`) {
		t.Errorf("json = %s", b)
	}
}

func TestUnknownEnumValues(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("teal")); err == nil || !strings.Contains(err.Error(), `unknown color "teal"`) {
		t.Errorf("color error = %v", err)
	}
	var k ReminderKind
	if err := k.UnmarshalText([]byte("surgery")); err == nil {
		t.Error("expected error for unknown reminder type")
	}
	var a ActivityKind
	if err := a.UnmarshalText([]byte("measurement")); err != nil || a != Measurement {
		t.Errorf("activity kind = %v, %v", a, err)
	}
}

func TestStringFallbacks(t *testing.T) {
	if got := Status(9).String(); got != "status(9)" {
		t.Errorf("Status(9) = %q", got)
	}
	if got := ContactDoctor.String(); got != "Contact Doctor" {
		t.Errorf("ContactDoctor = %q", got)
	}
}
