package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/likert-collect/catalog"
	"github.com/danielhkuo/likert-collect/cliparse"
	"github.com/danielhkuo/likert-collect/db"
	"github.com/danielhkuo/likert-collect/middleware"
	"github.com/danielhkuo/likert-collect/models"
	"github.com/danielhkuo/likert-collect/router"
	"github.com/danielhkuo/likert-collect/sink"
)

func main() {
	var err error

	// Load .env if present (dev convenience; real deployments set env vars)
	if err = godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the embedded item catalog
	cat, err := catalog.Load()
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "items", cat.Len(), "dimensions", len(cat.Dimensions()))

	// Build the sink
	var snk sink.Sink
	switch cfg.SinkType {
	case models.SinkCSV:
		snk = sink.NewCSV(cfg.SinkPath)
		slog.Info("using CSV sink", "path", cfg.SinkPath)
	default:
		driver := "sqlite"
		if cfg.DatabaseType == "postgres" {
			driver = "postgres"
		}
		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		snk = sink.NewDB(dbConn)
		slog.Info("using database sink", "driver", driver)
	}

	// Create router
	mux := router.NewRouter(cat, snk, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
