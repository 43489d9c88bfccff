package main

import (
	"log"
	"os"

	"github.com/PratikDhanave/feature-request-check/internal/check"
	"github.com/PratikDhanave/feature-request-check/internal/codec"
	"github.com/PratikDhanave/feature-request-check/internal/config"
	"github.com/PratikDhanave/feature-request-check/internal/fixtures"
	"github.com/PratikDhanave/feature-request-check/internal/httpserver"
	"github.com/PratikDhanave/feature-request-check/internal/logging"
	"github.com/PratikDhanave/feature-request-check/internal/resource"
	"github.com/PratikDhanave/feature-request-check/internal/store"
)

// main boots the service: config → resources → checker → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)

	// Lookup order: RESOURCE_DIR, then Postgres, then the bundled fixtures.
	var loaders []resource.Loader
	if cfg.ResourceDir != "" {
		loaders = append(loaders, resource.Dir(cfg.ResourceDir))
	}

	var db *store.PostgresStore
	if cfg.DBURL != "" {
		db, err = store.NewPostgresStore(cfg.DBURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		if err := db.EnsureSchema(); err != nil {
			log.Fatal(err)
		}
		loaders = append(loaders, db)
	}
	loaders = append(loaders, resource.FS(fixtures.FS))

	chk := check.New(resource.Chain(loaders...), codec.NewJSON(), logger)

	router := httpserver.NewRouter(cfg, chk, db, logger)

	logger.Info("server started", "addr", cfg.HTTPAddr, "database", db != nil)
	log.Fatal(router.Run(cfg.HTTPAddr))
}
