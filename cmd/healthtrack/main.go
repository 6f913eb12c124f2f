package main

import (
	"flag"
	"os"

	"github.com/Makepad-fr/healthtrack/internal/cli"
	"github.com/Makepad-fr/healthtrack/internal/config"
	"github.com/Makepad-fr/healthtrack/internal/exitcode"
	"github.com/Makepad-fr/healthtrack/internal/logging"
	"github.com/Makepad-fr/healthtrack/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return exitcode.Failure
	}

	// Root flags (apply to every subcommand) override the environment.
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	flag.StringVar(&cfg.SeedPath, "seed", cfg.SeedPath, "JSON seed file to start from")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return exitcode.Usage
	}

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.DisableColor()
	}

	log, closer, err := logging.Setup(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		ui.Fail(os.Stderr, "logging: "+err.Error())
		return exitcode.Failure
	}
	defer closer.Close()

	log.Info("starting", "theme", cfg.Theme, "seed", cfg.SeedPath, "args", flag.Args())
	return cli.Run(flag.Args(), cli.Options{SeedPath: cfg.SeedPath})
}
