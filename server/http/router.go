package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"cotador/internal/catalog"
	"cotador/internal/config"
	"cotador/internal/middleware"
	"cotador/internal/pipeline"
	"cotador/server/http/handlers"
)

func NewRouter(cfg config.Config, store *catalog.Store, importer *catalog.ImportService, processor *pipeline.BatchProcessor, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)
	r.Post("/quote", handlers.Quote(store, processor, logger))
	r.Post("/catalog/import", handlers.ImportCatalog(importer, cfg.MaxUploadMB, logger))
	r.Post("/catalog/reset", handlers.ResetCatalog(importer, logger))

	return r
}
