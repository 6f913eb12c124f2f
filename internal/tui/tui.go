// Package tui is the interactive dashboard.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/healthtrack/internal/model"
	"github.com/Makepad-fr/healthtrack/internal/tracker"
	"github.com/Makepad-fr/healthtrack/internal/ui"
)

// Options tune the session.
type Options struct {
	Now    func() time.Time
	Logger *slog.Logger
}

// listItem adapts a Medication to bubbles/list.Item
type listItem struct {
	med model.Medication
}

func (i listItem) Title() string       { return i.med.Label() }
func (i listItem) Description() string { return i.med.Notes }
func (i listItem) FilterValue() string { return i.med.Label() }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.MedicationLine(it.med))
}

type keyMap struct {
	Take, Skip, Reschedule, ByID, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Take:       key.NewBinding(key.WithKeys("t", " "), key.WithHelp("t/space", "mark taken")),
		Skip:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Reschedule: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reschedule")),
		ByID:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark by id")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Take, k.Skip, k.Reschedule, k.ByID}
}

type modelTUI struct {
	store *tracker.Store
	dash  model.Dashboard // profile, stats and reminders; never mutated
	now   func() time.Time

	list list.Model
	keys keyMap

	// mark-by-id prompt
	prompting bool
	ti        textinput.Model

	width, height int
}

func newModel(d model.Dashboard, opt Options) modelTUI {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	store := tracker.NewStore(
		tracker.State{Medications: d.Medications, Activity: d.Activity},
		tracker.WithClock(opt.Now),
		tracker.WithLogger(opt.Logger),
	)

	l := list.New(toItems(d.Medications), itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("medication", "medications")

	keys := newKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = "medication id"
	ti.CharLimit = 9

	m := modelTUI{
		store: store,
		dash:  d,
		now:   opt.Now,
		list:  l,
		keys:  keys,
		ti:    ti,
	}
	m.list.Title = m.listTitle()
	return m
}

// Run starts the dashboard and blocks until the user quits.
func Run(d model.Dashboard, opt Options) error {
	p := tea.NewProgram(newModel(d, opt), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func toItems(meds []model.Medication) []list.Item {
	li := make([]list.Item, 0, len(meds))
	for _, m := range meds {
		li = append(li, listItem{med: m})
	}
	return li
}

// Header title with live counts
func (m modelTUI) listTitle() string {
	c := m.store.Counts()
	return fmt.Sprintf("Today's Medications   %s %d  %s %d  %s %d",
		ui.Current().SymDone, c.Taken,
		ui.Current().SymPending, c.Pending,
		ui.Current().SymOverdue, c.Overdue,
	)
}

// dispatch applies a and re-derives the list from the store.
func (m modelTUI) dispatch(a tracker.Action) (modelTUI, tea.Cmd) {
	if !m.store.Dispatch(a) {
		return m, nil
	}
	m.list.Title = m.listTitle()
	return m, m.list.SetItems(toItems(m.store.State().Medications))
}

func (m modelTUI) selectedID() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.med.ID, true
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(m.listWidth(), m.listHeight())
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Take):
		if id, ok := m.selectedID(); ok {
			return m.dispatch(tracker.MarkTakenAction{ID: id})
		}
		return m, nil
	case key.Matches(km, m.keys.Skip):
		return m.unwired(func(id int) tracker.Action { return tracker.SkipAction{ID: id} }, "Skip")
	case key.Matches(km, m.keys.Reschedule):
		return m.unwired(func(id int) tracker.Action { return tracker.RescheduleAction{ID: id} }, "Reschedule")
	case key.Matches(km, m.keys.ByID):
		m.prompting = true
		m.ti.SetValue("")
		return m, m.ti.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// unwired forwards skip/reschedule to the store, which ignores them.
func (m modelTUI) unwired(action func(id int) tracker.Action, label string) (tea.Model, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	m, _ = m.dispatch(action(id))
	return m, m.list.NewStatusMessage(ui.Current().Muted.Render(label + " is not available yet"))
}

func (m modelTUI) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			raw := strings.TrimSpace(m.ti.Value())
			m = m.closePrompt()
			// Unknown or malformed ids are ignored, like any other no-op mark.
			if id, err := strconv.Atoi(raw); err == nil {
				return m.dispatch(tracker.MarkTakenAction{ID: id})
			}
			return m, nil
		case "esc":
			return m.closePrompt(), nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) closePrompt() modelTUI {
	m.prompting = false
	m.ti.SetValue("")
	m.ti.Blur()
	return m
}

func (m modelTUI) View() string {
	t := ui.Current()
	now := m.now()
	st := m.store.State()
	c := m.store.Counts()

	content := m.list.View()
	if m.prompting {
		content += "\n" + ui.Panel("Mark as taken", []string{m.ti.View()}, 0)
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		ui.Panel("", []string{content}, m.listWidth()+4),
		ui.Panel("", ui.CountsLines(c), m.listWidth()+4),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		ui.Panel("Upcoming Reminders", ui.ReminderLines(m.dash.Reminders), m.sideWidth()),
		ui.Panel("Recent Activity", ui.ActivityLines(st.Activity, now), m.sideWidth()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		ui.Header(m.dash.Profile, m.totalWidth()),
		t.Title.Render(ui.Greeting(m.dash.Profile, now)),
		ui.StatTiles(ui.DeriveStats(m.dash.Stats, c)),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
	)
}

// helpers for View

func (m modelTUI) totalWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m modelTUI) listWidth() int {
	w := m.totalWidth()*3/5 - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m modelTUI) sideWidth() int {
	w := m.totalWidth() - m.listWidth() - 4
	if w < 30 {
		w = 30
	}
	return w
}

// header, greeting, stat tiles and the counts panel take roughly this many rows
const chromeRows = 14

func (m modelTUI) listHeight() int {
	h := m.height - chromeRows
	if h < 6 {
		h = 6
	}
	return h
}
