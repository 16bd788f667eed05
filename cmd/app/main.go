package main

import (
	"flag"
	"log"
	"os"

	"SarosAnalytics/internal/di"
	"SarosAnalytics/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config; built-in defaults apply when the file is absent
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s addr=%s", cfg.Environment, cfg.Addr())

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal); bind failure exits non-zero
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
