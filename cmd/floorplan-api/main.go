package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/floorplan/api"
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/editor"
)

// ============================================================
// Floorplan API Service
// ============================================================

var (
	configFlag = flag.String("config", "floorplan.toml", "Path to TOML config")
	planFlag   = flag.String("plan", "", "Plan JSON to load at start")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ed := editor.New(cfg)
	defer ed.Close()

	if *planFlag != "" {
		f, err := os.Open(*planFlag)
		if err != nil {
			log.Fatalf("Failed to open plan: %v", err)
		}
		err = ed.ReadJSON(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}
	}

	srv := api.New(ed, cfg.API)

	// ============================================================
	// Graceful Shutdown
	// ============================================================

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Printf("[API] shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Printf("[API] shutdown: %v", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
