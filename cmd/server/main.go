// cmd/server/main.go
package main

import (
	"log"
	"log/slog"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/sozercan/prompt-generator/internal/config"
	"github.com/sozercan/prompt-generator/internal/engine"
	"github.com/sozercan/prompt-generator/internal/logging"
	"github.com/sozercan/prompt-generator/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("failed to configure logging: %v", err)
	}

	srv := server.New(*cfg, engine.New())
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
