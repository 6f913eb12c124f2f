package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Makepad-fr/healthtrack/internal/model"
)

// JSON seed file. Read once at start and never written back: a session's
// changes die with the process.

type fileActivity struct {
	Kind        model.ActivityKind `json:"type"`
	Description string             `json:"description"`
	Ago         string             `json:"ago"` // Go duration, e.g. "2h"
}

type file struct {
	Profile     model.Profile      `json:"profile"`
	Stats       []model.QuickStat  `json:"stats"`
	Medications []model.Medication `json:"medications"`
	Reminders   []model.Reminder   `json:"reminders"`
	Activity    []fileActivity     `json:"activity"`
}

// ErrInvalid wraps every validation failure of a seed file.
var ErrInvalid = errors.New("invalid seed")

func LoadFile(path string, now time.Time) (model.Dashboard, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("read seed: %w", err)
	}
	var f file
	if err := json.Unmarshal(b, &f); err != nil {
		return model.Dashboard{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := validate(f); err != nil {
		return model.Dashboard{}, err
	}

	d := model.Dashboard{
		Profile:     f.Profile,
		Stats:       f.Stats,
		Medications: f.Medications,
		Reminders:   f.Reminders,
	}
	for i, a := range f.Activity {
		ago, err := time.ParseDuration(a.Ago)
		if err != nil {
			return model.Dashboard{}, fmt.Errorf("%w: activity %d: %v", ErrInvalid, i+1, err)
		}
		d.Activity = append(d.Activity, activity(a.Kind, a.Description, now.Add(-ago)))
	}
	return d, nil
}

// Load picks the seed file when a path is given, the built-in data otherwise.
func Load(path string, now time.Time) (model.Dashboard, error) {
	if strings.TrimSpace(path) == "" {
		return Default(now), nil
	}
	return LoadFile(path, now)
}

func validate(f file) error {
	seen := make(map[int]bool, len(f.Medications))
	for _, m := range f.Medications {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: medication %d has no name", ErrInvalid, m.ID)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: duplicate medication id %d", ErrInvalid, m.ID)
		}
		seen[m.ID] = true
		if m.Taken && m.Overdue {
			return fmt.Errorf("%w: medication %d is both taken and overdue", ErrInvalid, m.ID)
		}
	}
	return nil
}
