package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Makepad-fr/healthtrack/internal/exitcode"
	"github.com/Makepad-fr/healthtrack/internal/model"
	"github.com/Makepad-fr/healthtrack/internal/seed"
	"github.com/Makepad-fr/healthtrack/internal/tracker"
	"github.com/Makepad-fr/healthtrack/internal/tui"
	"github.com/Makepad-fr/healthtrack/internal/ui"
)

const Version = "0.1.0"

// Options tune output behavior from root flags.
type Options struct {
	SeedPath string // empty uses the built-in sample data

	Stdout, Stderr io.Writer
	Now            func() time.Time

	// Interactive runs the dashboard; defaults to tui.Run.
	Interactive func(model.Dashboard, tui.Options) error
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Interactive == nil {
		o.Interactive = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		args = []string{"dash"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return exitcode.Success

	case "version":
		fmt.Fprintln(opt.Stdout, "healthtrack "+Version)
		return exitcode.Success

	case "dash":
		return doDash(opt)

	case "show":
		return doShow(opt)

	case "meds":
		return doMeds(opt)

	case "take":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: healthtrack take <id>...")
			return exitcode.Usage
		}
		ids := make([]int, 0, len(a))
		for _, s := range a {
			n, err := strconv.Atoi(s)
			if err != nil {
				ui.Fail(opt.Stderr, "take: not a number: "+s)
				return exitcode.Usage
			}
			ids = append(ids, n)
		}
		return doTake(ids, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return exitcode.Usage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `healthtrack - today's medications, reminders and activity

Usage:
  healthtrack [flags] <subcommand> [args]

Subcommands:
  dash               Interactive dashboard (default)
  show               Print the dashboard once
  meds               Print today's medication checklist
  take <id>...       Mark medications as taken for this run and print the checklist
  version            Print the version

Flags:
  -theme classic|neon|mono
  -seed <file.json>  Start from a JSON seed instead of the sample data
  -no-color          Disable colors

Examples:
  healthtrack
  healthtrack -theme mono show
  healthtrack take 2 4
`)
}

// -------------- subcommand impls ----------------

func load(opt Options) (model.Dashboard, bool) {
	d, err := seed.Load(opt.SeedPath, opt.Now())
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return model.Dashboard{}, false
	}
	return d, true
}

func doDash(opt Options) int {
	d, ok := load(opt)
	if !ok {
		return exitcode.Failure
	}
	if err := opt.Interactive(d, tui.Options{Now: opt.Now}); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return exitcode.Failure
	}
	return exitcode.Success
}

func doShow(opt Options) int {
	d, ok := load(opt)
	if !ok {
		return exitcode.Failure
	}
	fmt.Fprintln(opt.Stdout, ui.RenderDashboard(d, opt.Now()))
	return exitcode.Success
}

func doMeds(opt Options) int {
	d, ok := load(opt)
	if !ok {
		return exitcode.Failure
	}
	printChecklist(opt.Stdout, d.Medications)
	return exitcode.Success
}

// doTake applies the marks to a fresh session. Unknown ids change nothing.
func doTake(ids []int, opt Options) int {
	d, ok := load(opt)
	if !ok {
		return exitcode.Failure
	}
	store := tracker.NewStore(tracker.State{Medications: d.Medications, Activity: d.Activity},
		tracker.WithClock(opt.Now))
	for _, id := range ids {
		store.Dispatch(tracker.MarkTakenAction{ID: id})
	}
	printChecklist(opt.Stdout, store.State().Medications)
	return exitcode.Success
}

// -------------- rendering helpers --------------

func printChecklist(w io.Writer, meds []model.Medication) {
	c := tracker.Aggregate(meds)
	lines := ui.MedicationLines(meds)
	lines = append(lines, "")
	lines = append(lines, ui.CountsLines(c)...)
	lines = append(lines, "")
	lines = append(lines, ui.Current().Muted.Render("Tip: mark a dose with `healthtrack take "+firstOpen(meds)+"`"))
	fmt.Fprintln(w, ui.Panel("Today's Medications", lines, 0))
}

func firstOpen(meds []model.Medication) string {
	for _, m := range meds {
		if !m.Taken {
			return strconv.Itoa(m.ID)
		}
	}
	return "<id>"
}

