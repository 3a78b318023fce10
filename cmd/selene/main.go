package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/selene-app/selene/internal/api"
	"github.com/selene-app/selene/internal/config"
	"github.com/selene-app/selene/internal/cycle"
	"github.com/selene-app/selene/internal/store"
)

func main() {
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	engine := cycle.NewEngine(cfg.Policy, func() time.Time { return time.Now().In(location) })

	source, watchPath, err := openSource(cfg)
	if err != nil {
		log.Fatalf("observation source init failed: %v", err)
	}

	loader := store.NewLoader(engine, source, cfg.MonthsBack, cfg.MonthsForward, nil)
	if err := loader.Reload(context.Background()); err != nil {
		log.Fatalf("initial observation load failed: %v", err)
	}

	watcher, err := store.WatchPath(watchPath, func() {
		reloadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := loader.Reload(reloadCtx); err != nil {
			log.Printf("snapshot reload failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("observation watch disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	handler := api.NewHandler(engine, loader, location)

	app := fiber.New(fiber.Config{
		AppName:               "Selene",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Selene listening on http://0.0.0.0:%s (source: %s, tz: %s)", cfg.Port, cfg.Source, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openSource(cfg config.Config) (cycle.ObservationSource, string, error) {
	switch strings.ToLower(cfg.Source) {
	case config.SourceSQLite:
		database, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, "", err
		}
		return store.NewSQLiteSource(database), cfg.DBPath, nil
	default:
		source := store.NewNotesSource(cfg.NotesDir)
		return source, source.Dir(), nil
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
