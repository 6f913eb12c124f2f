// Package seed provides the sample data a dashboard session starts from.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/healthtrack/internal/model"
)

// Default returns the built-in sample dashboard. Activity times are relative to now.
func Default(now time.Time) model.Dashboard {
	return model.Dashboard{
		Profile: model.Profile{Name: "John P.", Initials: "JP", Notifications: 3},
		Stats: []model.QuickStat{
			{Title: "Next Appointment", Value: "2 days", Subtitle: "Dr. Smith - Cardiology"},
			{Title: "Medications Due", Value: "3", Subtitle: "Today"},
			{Title: "Overdue Tasks", Value: "1", Subtitle: "Blood pressure check"},
			{Title: "Health Score", Value: "85%", Subtitle: "+5% from last week"},
		},
		Medications: []model.Medication{
			{ID: 1, Name: "Lisinopril", Dosage: "10mg", Time: "8:00 AM", Notes: "With breakfast", Color: model.Blue, Taken: true},
			{ID: 2, Name: "Metformin", Dosage: "500mg", Time: "12:00 PM", Notes: "With lunch", Color: model.Green},
			{ID: 3, Name: "Lisinopril", Dosage: "10mg", Time: "8:00 PM", Notes: "With dinner", Color: model.Blue},
			{ID: 4, Name: "Vitamin D3", Dosage: "1000 IU", Time: "9:00 AM", Notes: "Daily supplement", Color: model.Yellow, Overdue: true},
		},
		Reminders: []model.Reminder{
			{ID: 1, Title: "Cardiology Appointment", Doctor: "Dr. Sarah Smith", Time: "Today, 2:00 PM",
				Location: "Memorial Hospital - Room 301", Kind: model.Appointment, Priority: model.High},
			{ID: 2, Title: "Blood Pressure Medication", Description: "Lisinopril 10mg", Time: "Today, 8:00 PM",
				Kind: model.MedicationDose, Priority: model.Medium},
			{ID: 3, Title: "Lab Results Follow-up", Doctor: "Dr. Michael Johnson", Time: "Tomorrow, 10:30 AM",
				Location: "Call required", Kind: model.FollowUp, Priority: model.Medium},
			{ID: 4, Title: "Physical Therapy Session", Description: "Knee rehabilitation", Time: "Dec 28, 3:00 PM",
				Location: "Wellness Center", Kind: model.Therapy, Priority: model.Low},
		},
		Activity: []model.Activity{
			activity(model.MedicationTaken, "Took Lisinopril 10mg", now.Add(-2*time.Hour)),
			activity(model.AppointmentDone, "Completed appointment with Dr. Smith", now.Add(-24*time.Hour)),
			activity(model.Measurement, "Logged blood pressure: 120/80", now.Add(-48*time.Hour)),
			activity(model.MedicationTaken, "Took Metformin 500mg", now.Add(-48*time.Hour)),
			activity(model.ReminderSet, "Set reminder for lab appointment", now.Add(-72*time.Hour)),
		},
	}
}

func activity(kind model.ActivityKind, desc string, at time.Time) model.Activity {
	return model.Activity{ID: uuid.New(), Kind: kind, Description: desc, At: at}
}
