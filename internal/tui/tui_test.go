package tui

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/healthtrack/internal/model"
	"github.com/Makepad-fr/healthtrack/internal/seed"
	"github.com/Makepad-fr/healthtrack/internal/tracker"
)

var morning = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) modelTUI {
	t.Helper()
	m := newModel(seed.Default(morning), Options{
		Now:    func() time.Time { return morning },
		Logger: slog.New(slog.DiscardHandler),
	})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m modelTUI, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(modelTUI)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func statusOf(t *testing.T, m modelTUI, id int) model.Status {
	t.Helper()
	for _, med := range m.store.State().Medications {
		if med.ID == id {
			return tracker.Classify(med)
		}
	}
	t.Fatalf("no medication %d", id)
	return 0
}

func TestMarkSelectedTaken(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, down, down, down, runes("t"))

	if got := statusOf(t, m, 4); got != model.Taken {
		t.Fatalf("medication 4 = %s, want taken", got)
	}
	if got, want := m.store.Counts(), (tracker.Counts{Taken: 2, Pending: 2}); got != want {
		t.Errorf("counts = %+v, want %+v", got, want)
	}
	it, ok := m.list.Items()[3].(listItem)
	if !ok || !it.med.Taken {
		t.Errorf("list item not refreshed: %+v", m.list.Items()[3])
	}
	if !strings.Contains(m.list.Title, "✔ 2") {
		t.Errorf("title = %q", m.list.Title)
	}
	if got := m.store.State().Activity[0].Description; got != "Took Vitamin D3 1000 IU" {
		t.Errorf("latest activity = %q", got)
	}
}

func TestSpaceMarksTaken(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, down, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := statusOf(t, m, 2); got != model.Taken {
		t.Errorf("medication 2 = %s, want taken", got)
	}
}

func TestMarkByID(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("m"))
	if !m.prompting {
		t.Fatal("expected prompt to open")
	}
	m = send(t, m, runes("3"), enter)
	if m.prompting {
		t.Error("expected prompt to close")
	}
	if got := statusOf(t, m, 3); got != model.Taken {
		t.Errorf("medication 3 = %s, want taken", got)
	}
}

func TestMarkByIDIgnoresUnknownInput(t *testing.T) {
	for _, input := range []string{"99", "abc", ""} {
		m := newTestModel(t)
		before := m.store.Counts()
		msgs := []tea.Msg{runes("m")}
		if input != "" {
			msgs = append(msgs, runes(input))
		}
		m = send(t, m, append(msgs, enter)...)
		if m.prompting {
			t.Errorf("%q: prompt still open", input)
		}
		if got := m.store.Counts(); got != before {
			t.Errorf("%q: counts changed to %+v", input, got)
		}
		if n := len(m.store.State().Activity); n != 5 {
			t.Errorf("%q: activity len = %d, want 5", input, n)
		}
	}
}

func TestPromptEscCancels(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("m"), runes("2"), esc)
	if m.prompting || statusOf(t, m, 2) != model.Pending {
		t.Errorf("esc should cancel without marking")
	}
}

func TestSkipAndRescheduleAreNoOps(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, down, down, down)
	before := m.store.State()

	for _, k := range []string{"s", "r"} {
		next, cmd := m.Update(runes(k))
		m = next.(modelTUI)
		if cmd == nil {
			t.Errorf("%s: expected a status message command", k)
		}
	}
	if got := statusOf(t, m, 4); got != model.Overdue {
		t.Errorf("medication 4 = %s, want overdue", got)
	}
	if len(m.store.State().Activity) != len(before.Activity) {
		t.Error("activity changed")
	}
}

func TestFilteringSwallowsKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("/"), runes("t"))
	if got, want := m.store.Counts(), (tracker.Counts{Taken: 1, Pending: 2, Overdue: 1}); got != want {
		t.Errorf("counts = %+v, want %+v", got, want)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Good morning, John!", "Today's Medications", "Upcoming Reminders", "Recent Activity", "Vitamin D3 1000 IU"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
