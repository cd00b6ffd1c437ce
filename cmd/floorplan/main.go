package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/audio"
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/editor"
	"github.com/lixenwraith/floorplan/terminal"
)

var (
	configFlag     = flag.String("config", "floorplan.toml", "Path to TOML config")
	planFlag       = flag.String("plan", "", "Plan JSON to load at start and save with ctrl+s")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/floorplan.log")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective config and exit")
	muteFlag       = flag.Bool("mute", false, "Disable feedback tones")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dumpConfigFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ed := editor.New(cfg)
	defer ed.Close()

	if *planFlag != "" {
		if err := loadPlan(ed, *planFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load plan: %v\n", err)
			os.Exit(1)
		}
	}

	if cfg.Audio.Enabled && !*muteFlag {
		fb := audio.NewFeedback()
		if err := fb.Initialize(); err != nil {
			// Non-fatal, editor runs silent
			log.Printf("[MAIN] audio unavailable: %v", err)
		} else {
			fb.Attach(ed.Bus)
			defer fb.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	app := terminal.NewApp(screen, ed, *planFlag)

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		terminal.HandleCrash(recover())
	}()

	app.Run()
	app.Close()
}

// loadPlan imports path; a missing file starts an empty plan that ctrl+s will create
func loadPlan(ed *editor.Editor, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	return ed.ReadJSON(f)
}
